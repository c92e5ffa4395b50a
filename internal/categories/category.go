// Package categories provides the domain system for article categories.
// Category slugs are derived from names and unique across the store.
package categories

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category represents a stored article category.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand contains the data required to create a new category.
type CreateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Slugify derives a category slug from its display name: lowercase with
// spaces and underscores replaced by hyphens. The result is a pure function
// of the name; equal names always produce equal slugs.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")
	return slug
}
