package service

import "context"

// VerificationCodeMail carries the data for the email-verification message.
type VerificationCodeMail struct {
	To        string
	FirstName string
	Code      string
}

// SaveForLaterMail carries the data for the resume-link message.
type SaveForLaterMail struct {
	To        string
	FirstName string
	ResumeURL string
}

// CompletionMail carries the data for the boarding-complete message.
type CompletionMail struct {
	To          string
	FirstName   string
	CompanyName string
}

// Mailer defines the interface for sending transactional boarding emails.
type Mailer interface {
	// SendVerificationCode delivers a one-time email verification code.
	SendVerificationCode(ctx context.Context, mail VerificationCodeMail) error

	// SendSaveForLater delivers a resume link so the applicant can continue later.
	SendSaveForLater(ctx context.Context, mail SaveForLaterMail) error

	// SendCompletion delivers the final confirmation once boarding completes.
	SendCompletion(ctx context.Context, mail CompletionMail) error
}
