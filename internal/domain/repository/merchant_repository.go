package repository

import (
	"context"

	"boarding/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for merchant persistence.
var (
	// ErrMerchantNotFound is returned when a merchant is not found.
	ErrMerchantNotFound = errors.New("merchant not found")
	// ErrMerchantUserNotFound is returned when a merchant user is not found.
	ErrMerchantUserNotFound = errors.New("merchant user not found")
	// ErrDuplicateMerchantUser is returned when a merchant user with the same
	// email already exists.
	ErrDuplicateMerchantUser = errors.New("merchant user already exists")
)

// MerchantRepository defines the interface for merchant and merchant user persistence.
type MerchantRepository interface {
	// CreateMerchant persists a new merchant record.
	CreateMerchant(ctx context.Context, merchant *entity.Merchant) error

	// UpdateMerchant modifies an existing merchant record.
	UpdateMerchant(ctx context.Context, merchant *entity.Merchant) error

	// FindMerchantByID retrieves a merchant by its unique ID.
	FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	// CreateMerchantUser persists a new merchant user. Returns
	// ErrDuplicateMerchantUser when the email is already registered.
	CreateMerchantUser(ctx context.Context, user *entity.MerchantUser) error

	// FindMerchantUserByEmail retrieves a merchant user by email address.
	FindMerchantUserByEmail(ctx context.Context, email string) (*entity.MerchantUser, error)
}
