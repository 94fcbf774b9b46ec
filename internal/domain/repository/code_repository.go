package repository

import (
	"context"

	"boarding/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCodeNotFound is returned when no matching verification code exists.
var ErrCodeNotFound = errors.New("verification code not found")

// CodeRepository defines the interface for email verification code persistence.
type CodeRepository interface {
	// Create persists a new verification code.
	Create(ctx context.Context, code *entity.EmailVerificationCode) error

	// FindUsableByContactAndCode retrieves the newest unredeemed, unexpired
	// code matching the submitted value. Issuing a fresh code does not
	// invalidate earlier ones; any still-valid code redeems.
	FindUsableByContactAndCode(ctx context.Context, contactID uuid.UUID, code string) (*entity.EmailVerificationCode, error)

	// MarkUsed records that the code has been redeemed.
	MarkUsed(ctx context.Context, id uuid.UUID) error
}
