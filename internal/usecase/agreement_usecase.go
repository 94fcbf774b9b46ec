package usecase

import (
	"context"
)

// --- Output DTOs ---

// SubmitReviewOutput is the result of a review submission. When e-signing
// is configured the applicant is sent to SigningURL; otherwise the session
// completes synchronously.
type SubmitReviewOutput struct {
	Completed  bool
	SigningURL string
}

// SigningCallbackOutput is the result of the e-signature return redirect.
type SigningCallbackOutput struct {
	RedirectURL string
}

// AgreementUsecase defines the interface for services-agreement operations:
// generation, signing, and retrieval.
type AgreementUsecase interface {
	SubmitReview(ctx context.Context, token string) (*SubmitReviewOutput, error)
	HandleSigningCallback(ctx context.Context, token, event string) (*SigningCallbackOutput, error)
	RegenerateAgreement(ctx context.Context, token string) error
	GetAgreementPDF(ctx context.Context, token string) ([]byte, error)
	GetBlankAgreementPDF(ctx context.Context, token string) ([]byte, error)
}
