// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"boarding/internal/domain/entity"
)

// --- Input DTOs ---

// SubmitContactInput defines the data for the first wizard step.
type SubmitContactInput struct {
	Email        string
	ConfirmEmail string
	Password     string
	FirstName    string
	LastName     string
}

// PersonalDetailsInput defines the data for the personal details step.
type PersonalDetailsInput struct {
	LegalFirstName   string
	LegalLastName    string
	DateOfBirth      string
	AddressCountry   string
	AddressPostcode  string
	AddressLine1     string
	AddressLine2     string
	AddressTown      string
	PhoneCountryCode string
	PhoneNumber      string
}

// BankDetailsInput defines the data for the bank details step. The optional
// business and company fields are merge-updated: empty values leave the
// stored ones untouched.
type BankDetailsInput struct {
	BankAccountName   string
	BankCurrency      string
	BankCountry       string
	BankSortCode      string
	BankAccountNumber string
	BankIBAN          string

	Business BusinessFieldsInput
	Company  CompanyFieldsInput
}

// BusinessFieldsInput carries optional business profile fields.
type BusinessFieldsInput struct {
	VATNumber                  string
	CustomerIndustry           string
	EstimatedMonthlyCardVolume string
	AverageTransactionValue    string
	DeliveryTimeframe          string
	CustomerSupportEmail       string
	CustomerWebsites           string
	ProductDescription         string
}

// CompanyFieldsInput carries optional company detail fields.
type CompanyFieldsInput struct {
	CompanyName              string
	CompanyNumber            string
	CompanyRegisteredOffice  string
	CompanyIncorporatedIn    string
	CompanyIncorporationDate string
	CompanyIndustrySIC       string
}

// SaveForLaterInput defines a partial update: any subset of wizard data plus
// the caller's current sub-step. No step ordering is enforced.
type SaveForLaterInput struct {
	CurrentStep string

	Personal *PersonalDetailsInput
	Business *BusinessFieldsInput
	Company  *CompanyFieldsInput
	Bank     *BankDetailsInput

	SendResumeEmail bool
}

// LoginInput defines the data required for a contact to log back in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// InviteInfoOutput returns invite resolution plus display data for the
// wizard landing page.
type InviteInfoOutput struct {
	Token          string
	PartnerName    string
	Email          string
	Completed      bool
	CurrentStep    string
	ProductPackage *entity.ProductPackage
}

// SavedDataOutput returns the full resumable state for form pre-population.
type SavedDataOutput struct {
	Session *entity.BoardingSession
	Contact *entity.Contact
}

// StepOutput is the common result of a wizard step submission.
type StepOutput struct {
	SessionID   string
	CurrentStep string
}

// AddressOutput is a single address candidate from a postcode lookup.
type AddressOutput struct {
	AddressLine1 string
	AddressLine2 string
	Town         string
	Postcode     string
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	AccessToken string
	InviteToken string
	CurrentStep string
}

// BoardingUsecase defines the interface for the boarding wizard operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type BoardingUsecase interface {
	GetInviteInfo(ctx context.Context, token string) (*InviteInfoOutput, error)
	GetSavedData(ctx context.Context, token string) (*SavedDataOutput, error)
	GetInviteQR(ctx context.Context, token string) ([]byte, error)
	LookupAddress(ctx context.Context, postcode string) ([]AddressOutput, error)
	SubmitContact(ctx context.Context, token string, input SubmitContactInput) (*StepOutput, error)
	SubmitPersonalDetails(ctx context.Context, token string, input PersonalDetailsInput) (*StepOutput, error)
	SubmitBankDetails(ctx context.Context, token string, input BankDetailsInput) (*StepOutput, error)
	SaveForLater(ctx context.Context, token string, input SaveForLaterInput) error
	Login(ctx context.Context, token string, input LoginInput) (*LoginOutput, error)
}
