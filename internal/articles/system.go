package articles

import (
	"context"

	"github.com/google/uuid"
	"github.com/pressbox-io/pressbox/pkg/pagination"
)

// System defines the operations exposed by the articles domain.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Article, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Find(ctx context.Context, id uuid.UUID) (*Article, error)
	List(ctx context.Context, req pagination.PageRequest, filters Filters) (*pagination.PageResult[Article], error)
	TrackShare(ctx context.Context, id uuid.UUID) error
}
