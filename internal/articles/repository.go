package articles

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pressbox-io/pressbox/pkg/pagination"
	"github.com/pressbox-io/pressbox/pkg/query"
	"github.com/pressbox-io/pressbox/pkg/repository"
)

type Repository struct {
	db         *sql.DB
	summarizer Summarizer
	logger     *slog.Logger
}

func NewRepository(db *sql.DB, summarizer Summarizer, logger *slog.Logger) *Repository {
	return &Repository{
		db:         db,
		summarizer: summarizer,
		logger:     logger.With("system", "articles"),
	}
}

func (r *Repository) Create(ctx context.Context, cmd CreateCommand) (*Article, error) {
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	now := time.Now().UTC()
	article := Article{
		ID:        uuid.New(),
		Title:     title,
		Content:   cmd.Content,
		Summary:   r.summarizer.Summarize(ctx, cmd.Content),
		Category:  cmd.Category,
		Author:    cmd.Author,
		ImageURL:  cmd.ImageURL,
		ImageData: cmd.ImageData,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if article.Author == "" {
		article.Author = "Admin"
	}
	if cmd.Published != nil {
		article.Published = *cmd.Published
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO articles (
			id, title, content, summary, category, author,
			image_url, image_data, views, shares, published,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, 0, $9, $10, $11)`,
		article.ID, article.Title, article.Content, article.Summary,
		article.Category, article.Author, article.ImageURL, article.ImageData,
		article.Published, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	r.logger.Info("article created", "id", article.ID, "title", article.Title)
	return &article, nil
}

// Update follows a read-merge-write cycle with last-write-wins semantics.
// The summary is regenerated before the write so no row lock or pooled
// connection is held across the model call.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Article, error) {
	sql, args := query.NewBuilder(projection()).BuildSingle("id", id)
	current, err := repository.QueryOne(ctx, r.db, sql, args, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", repository.MapError(err, ErrNotFound, nil))
	}

	contentChanged, err := applyUpdate(&current, cmd)
	if err != nil {
		return nil, err
	}

	if contentChanged {
		current.Summary = r.summarizer.Summarize(ctx, current.Content)
	}
	current.UpdatedAt = time.Now().UTC()

	err = repository.ExecExpectOne(ctx, r.db,
		`UPDATE articles SET
			title = $1, content = $2, summary = $3, category = $4,
			author = $5, image_url = $6, image_data = $7, published = $8,
			updated_at = $9
		 WHERE id = $10`,
		current.Title, current.Content, current.Summary, current.Category,
		current.Author, current.ImageURL, current.ImageData, current.Published,
		current.UpdatedAt, current.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", repository.MapError(err, ErrNotFound, nil))
	}

	r.logger.Info("article updated", "id", id)
	return &current, nil
}

// applyUpdate merges non-nil command fields into the article and reports
// whether the content changed.
func applyUpdate(article *Article, cmd UpdateCommand) (bool, error) {
	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" {
			return false, ErrInvalidTitle
		}
		article.Title = title
	}

	contentChanged := false
	if cmd.Content != nil {
		article.Content = *cmd.Content
		contentChanged = true
	}
	if cmd.Category != nil {
		article.Category = *cmd.Category
	}
	if cmd.Author != nil {
		article.Author = *cmd.Author
	}
	if cmd.ImageURL != nil {
		article.ImageURL = *cmd.ImageURL
	}
	if cmd.ImageData != nil {
		article.ImageData = *cmd.ImageData
	}
	if cmd.Published != nil {
		article.Published = *cmd.Published
	}

	return contentChanged, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(ctx, r.db,
		"DELETE FROM articles WHERE id = $1", id,
	)
	if err != nil {
		return fmt.Errorf("delete article: %w", repository.MapError(err, ErrNotFound, nil))
	}

	r.logger.Info("article deleted", "id", id)
	return nil
}

// Find retrieves an article and atomically increments its view counter.
func (r *Repository) Find(ctx context.Context, id uuid.UUID) (*Article, error) {
	article, err := repository.QueryOne(ctx, r.db,
		`UPDATE articles SET views = views + 1 WHERE id = $1
		 RETURNING id, title, content, summary, category, author,
			image_url, image_data, views, shares, published,
			created_at, updated_at`,
		[]any{id}, scanArticle,
	)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", repository.MapError(err, ErrNotFound, nil))
	}

	return &article, nil
}

func (r *Repository) List(ctx context.Context, req pagination.PageRequest, filters Filters) (*pagination.PageResult[Article], error) {
	builder := query.
		NewBuilder(projection(), query.SortField{Field: "createdAt", Descending: true}).
		WhereEquals("category", normalizeFilter(filters.Category)).
		WhereSearch(req.Search, "title", "content")

	if filters.Published != nil {
		builder.WhereEquals("published", *filters.Published)
	}
	if len(req.Sort) > 0 {
		builder.OrderByFields(req.Sort)
	}

	countSQL, countArgs := builder.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	pageSQL, pageArgs := builder.BuildPage(req.Page, req.PageSize)
	articles, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanArticle)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	result := pagination.NewPageResult(articles, total, req.Page, req.PageSize)
	return &result, nil
}

// TrackShare increments the share counter for an article.
func (r *Repository) TrackShare(ctx context.Context, id uuid.UUID) error {
	err := repository.ExecExpectOne(ctx, r.db,
		"UPDATE articles SET shares = shares + 1 WHERE id = $1", id,
	)
	if err != nil {
		return fmt.Errorf("track share: %w", repository.MapError(err, ErrNotFound, nil))
	}

	return nil
}

func normalizeFilter(value *string) any {
	if value == nil || *value == "" {
		return nil
	}
	return *value
}
