package usecase

import (
	"context"
)

// --- Input DTOs ---

// BankCallbackInput carries the open-banking redirect parameters. State is
// the invite token round-tripped through the vendor.
type BankCallbackInput struct {
	Code  string
	State string
	Error string
}

// --- Output DTOs ---

// VerifyStatusOutput reports whether the contact has verified their email.
// The wizard polls this while the applicant reads their inbox.
type VerifyStatusOutput struct {
	EmailVerified bool
	CurrentStep   string
}

// KYCTokenOutput returns an identity verification SDK token.
type KYCTokenOutput struct {
	Token  string
	UserID string
}

// BankVerificationOutput summarizes a completed bank ownership check.
type BankVerificationOutput struct {
	RedirectURL string
}

// VerificationUsecase defines the interface for email, identity, and bank
// account verification operations.
type VerificationUsecase interface {
	VerifyEmailCode(ctx context.Context, token, code string) (*StepOutput, error)
	GetVerifyStatus(ctx context.Context, token string) (*VerifyStatusOutput, error)
	CreateKYCToken(ctx context.Context, token string) (*KYCTokenOutput, error)
	CompleteKYC(ctx context.Context, token, status string) (*StepOutput, error)
	BankAuthURL(ctx context.Context, token string) (string, error)
	HandleBankCallback(ctx context.Context, input BankCallbackInput) (*BankVerificationOutput, error)
}
