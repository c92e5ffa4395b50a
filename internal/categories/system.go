package categories

import (
	"context"

	"github.com/google/uuid"
)

// System defines the operations exposed by the categories domain.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Category, error)
	Find(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
