package status

import (
	"github.com/pressbox-io/pressbox/pkg/query"
	"github.com/pressbox-io/pressbox/pkg/repository"
)

func projection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "status_checks", "s").
		Project("id", "id").
		Project("client_name", "clientName").
		Project("created_at", "timestamp")
}

func scanCheck(s repository.Scanner) (Check, error) {
	var c Check
	err := s.Scan(
		&c.ID,
		&c.ClientName,
		&c.Timestamp,
	)
	return c, err
}
