package repository

import (
	"context"

	"boarding/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a boarding session is not found.
var ErrSessionNotFound = errors.New("boarding session not found")

// SessionRepository defines the interface for boarding session persistence.
type SessionRepository interface {
	// FindByID retrieves a session by its unique ID, without its contact.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BoardingSession, error)

	// FindByInviteID retrieves the session started from a given invite, if any.
	FindByInviteID(ctx context.Context, inviteID uuid.UUID) (*entity.BoardingSession, error)

	// FindByIDWithContact retrieves a session together with its contact, when one exists.
	FindByIDWithContact(ctx context.Context, id uuid.UUID) (*entity.BoardingSession, error)

	// Create persists a new boarding session.
	Create(ctx context.Context, session *entity.BoardingSession) error

	// Update modifies an existing boarding session.
	Update(ctx context.Context, session *entity.BoardingSession) error

	// FindProductPackage retrieves the product package attached to a session,
	// with its items and fee schedule preloaded.
	FindProductPackage(ctx context.Context, packageID uuid.UUID) (*entity.ProductPackage, error)
}
