package repository

import (
	"context"

	"boarding/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPartnerNotFound is returned when a partner is not found.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerRepository defines the interface for partner persistence.
// Partners are managed out of band; the boarding flow only reads them.
type PartnerRepository interface {
	// FindByID retrieves a partner by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)
}
