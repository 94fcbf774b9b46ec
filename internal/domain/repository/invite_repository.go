// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"boarding/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInviteNotFound is a domain-specific error returned when an invite is not found.
var ErrInviteNotFound = errors.New("invite not found")

// InviteRepository defines the standard operations for invite persistence.
type InviteRepository interface {
	// FindByToken retrieves a single invite by its opaque token.
	FindByToken(ctx context.Context, token string) (*entity.Invite, error)

	// FindByID retrieves a single invite by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invite, error)

	// Create persists a new invite entity to the storage.
	Create(ctx context.Context, invite *entity.Invite) error
}
