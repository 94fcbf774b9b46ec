package service

import "context"

// KYCAccessToken is a short-lived SDK token scoped to one applicant.
type KYCAccessToken struct {
	Token  string
	UserID string
}

// KYCProvider defines the interface for the identity verification vendor.
// The external user ID is chosen by the caller; re-verification after an
// identity-critical edit passes a fresh derived ID so the vendor opens a
// new applicant instead of resuming the stale one.
type KYCProvider interface {
	// CreateAccessToken issues an SDK access token for the given external user ID.
	CreateAccessToken(ctx context.Context, externalUserID string) (*KYCAccessToken, error)
}
