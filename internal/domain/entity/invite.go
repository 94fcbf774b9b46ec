package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invite is a partner-issued, single-use entry token for the boarding
// wizard. The token doubles as the session's public identifier in resume
// links and bank-verification state.
type Invite struct {
	ID        uuid.UUID
	PartnerID uuid.UUID
	Token     string
	Email     string // Optional pre-filled recipient email.
	UsedAt    *time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the invite's validity window has passed.
func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Used reports whether a boarding session was already started from this
// invite.
func (i *Invite) Used() bool {
	return i.UsedAt != nil
}
