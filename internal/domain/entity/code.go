package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailVerificationCode is a short-lived one-time code mailed to a contact
// to prove possession of their email address. Codes are single use; issuing
// a new code does not invalidate older ones that are still within their
// validity window.
type EmailVerificationCode struct {
	ID        uuid.UUID
	ContactID uuid.UUID
	Code      string
	UsedAt    *time.Time
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Usable reports whether the code can still redeem a verification.
func (c *EmailVerificationCode) Usable(now time.Time) bool {
	return c.UsedAt == nil && now.Before(c.ExpiresAt)
}
