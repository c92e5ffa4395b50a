package categories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pressbox-io/pressbox/pkg/query"
	"github.com/pressbox-io/pressbox/pkg/repository"
)

type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewRepository(db *sql.DB, logger *slog.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger.With("system", "categories"),
	}
}

func (r *Repository) Create(ctx context.Context, cmd CreateCommand) (*Category, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	category := Category{
		ID:          uuid.New(),
		Name:        name,
		Slug:        Slugify(name),
		Description: strings.TrimSpace(cmd.Description),
		CreatedAt:   time.Now().UTC(),
	}

	// The unique index on slug backstops concurrent creates with the same
	// name; the violation surfaces as ErrDuplicate.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, slug, description, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.Slug, category.Description, category.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", repository.MapError(err, ErrNotFound, ErrDuplicate))
	}

	r.logger.Info("category created", "id", category.ID, "slug", category.Slug)
	return &category, nil
}

func (r *Repository) Find(ctx context.Context, id uuid.UUID) (*Category, error) {
	sql, args := query.
		NewBuilder(projection()).
		BuildSingle("id", id)

	category, err := repository.QueryOne(ctx, r.db, sql, args, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", repository.MapError(err, ErrNotFound, ErrDuplicate))
	}

	return &category, nil
}

func (r *Repository) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	sql, args := query.
		NewBuilder(projection()).
		BuildSingle("slug", slug)

	category, err := repository.QueryOne(ctx, r.db, sql, args, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", repository.MapError(err, ErrNotFound, ErrDuplicate))
	}

	return &category, nil
}

func (r *Repository) List(ctx context.Context) ([]Category, error) {
	sql, args := query.
		NewBuilder(projection(), query.SortField{Field: "name"}).
		BuildList()

	categories, err := repository.QueryMany(ctx, r.db, sql, args, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(ctx, r.db,
		"DELETE FROM categories WHERE id = $1", id,
	)
	if err != nil {
		return fmt.Errorf("delete category: %w", repository.MapError(err, ErrNotFound, ErrDuplicate))
	}

	r.logger.Info("category deleted", "id", id)
	return nil
}
