// Package articles provides the domain system for published content.
// Articles carry denormalized category slugs, engagement counters, and a
// generated summary produced at create and update time.
package articles

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Article represents a stored article.
type Article struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	ImageURL  string    `json:"image_url"`
	ImageData string    `json:"image_data"`
	Views     int       `json:"views"`
	Shares    int       `json:"shares"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommand contains the data required to create an article.
type CreateCommand struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Author    string `json:"author"`
	ImageURL  string `json:"image_url"`
	ImageData string `json:"image_data"`
	Published *bool  `json:"published"`
}

// UpdateCommand contains a partial update. Nil fields are left unchanged.
type UpdateCommand struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Category  *string `json:"category"`
	Author    *string `json:"author"`
	ImageURL  *string `json:"image_url"`
	ImageData *string `json:"image_data"`
	Published *bool   `json:"published"`
}

// Filters narrows article listings.
type Filters struct {
	Category  *string
	Published *bool
}

// Summarizer produces a short summary for article content. Implementations
// must not fail: when generation is unavailable they return a fallback value.
type Summarizer interface {
	Summarize(ctx context.Context, content string) string
}
