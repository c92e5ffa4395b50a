package categories

import (
	"github.com/pressbox-io/pressbox/pkg/query"
	"github.com/pressbox-io/pressbox/pkg/repository"
)

func projection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "categories", "c").
		Project("id", "id").
		Project("name", "name").
		Project("slug", "slug").
		Project("description", "description").
		Project("created_at", "createdAt")
}

func scanCategory(s repository.Scanner) (Category, error) {
	var c Category
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.CreatedAt,
	)
	return c, err
}
