package status

import "context"

// System defines the operations exposed by the status domain.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Check, error)
	List(ctx context.Context) ([]Check, error)
}
