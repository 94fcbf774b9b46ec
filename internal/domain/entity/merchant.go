package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant is the durable commercial record materialized exactly once per
// boarding session, at the moment the contact's email is first verified.
type Merchant struct {
	ID        uuid.UUID
	PartnerID uuid.UUID
	LegalName string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MerchantUser is the login identity attached to a merchant. Emails are
// unique across all merchant users.
type MerchantUser struct {
	ID           uuid.UUID
	MerchantID   uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
