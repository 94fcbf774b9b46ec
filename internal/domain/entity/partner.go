package entity

import (
	"time"

	"github.com/google/uuid"
)

// Partner is the referring organization that issues boarding invites and
// ultimately owns the boarded merchants.
type Partner struct {
	ID          uuid.UUID
	Name        string
	ContactName string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
