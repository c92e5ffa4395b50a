// Package status provides client status check records used for liveness
// reporting by frontend clients.
package status

import (
	"time"

	"github.com/google/uuid"
)

// Check represents a recorded client status check.
type Check struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateCommand contains the data required to record a status check.
type CreateCommand struct {
	ClientName string `json:"client_name"`
}
