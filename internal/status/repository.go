package status

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
		logger: logger.With("system", "status"),
	}
}

func (r *Repository) Create(ctx context.Context, cmd CreateCommand) (*Check, error) {
	clientName := strings.TrimSpace(cmd.ClientName)
	if clientName == "" {
		return nil, ErrInvalidClientName
	}

	check := Check{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO status_checks (id, client_name, created_at)
		 VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("create status check: %w", err)
	}

	return &check, nil
}

func (r *Repository) List(ctx context.Context) ([]Check, error) {
	sql, args := query.
		NewBuilder(projection(), query.SortField{Field: "timestamp", Descending: true}).
		BuildList()

	checks, err := repository.QueryMany(ctx, r.db, sql, args, scanCheck)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}

	return checks, nil
}
