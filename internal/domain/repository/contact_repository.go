package repository

import (
	"context"

	"boarding/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for contact persistence.
var (
	// ErrContactNotFound is returned when a contact is not found.
	ErrContactNotFound = errors.New("contact not found")
	// ErrDuplicateContact is returned when a session already has a contact.
	ErrDuplicateContact = errors.New("contact already exists for session")
)

// ContactRepository defines the interface for contact-related database operations.
type ContactRepository interface {
	// FindByID retrieves a contact by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// FindBySessionID retrieves the single contact attached to a session.
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entity.Contact, error)

	// Create persists a new contact. Returns ErrDuplicateContact when the
	// session already has one.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update modifies an existing contact.
	Update(ctx context.Context, contact *entity.Contact) error
}
