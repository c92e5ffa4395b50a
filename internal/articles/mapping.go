package articles

import (
	"github.com/pressbox-io/pressbox/pkg/query"
	"github.com/pressbox-io/pressbox/pkg/repository"
)

func projection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "articles", "a").
		Project("id", "id").
		Project("title", "title").
		Project("content", "content").
		Project("summary", "summary").
		Project("category", "category").
		Project("author", "author").
		Project("image_url", "imageUrl").
		Project("image_data", "imageData").
		Project("views", "views").
		Project("shares", "shares").
		Project("published", "published").
		Project("created_at", "createdAt").
		Project("updated_at", "updatedAt")
}

func scanArticle(s repository.Scanner) (Article, error) {
	var a Article
	err := s.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Summary,
		&a.Category,
		&a.Author,
		&a.ImageURL,
		&a.ImageData,
		&a.Views,
		&a.Shares,
		&a.Published,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
