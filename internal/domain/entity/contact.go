package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// KYC verification states recorded against a contact. An empty status means
// the contact has never been verified, or a prior result was invalidated by
// an identity-critical edit.
const (
	KYCStatusPending   = "pending"
	KYCStatusCompleted = "completed"
	KYCStatusRejected  = "rejected"
)

// Contact is the evolving profile collected across the wizard steps,
// tied 1:1 to a BoardingSession. Exactly one contact may ever exist per
// session; its email is immutable after creation.
type Contact struct {
	ID           uuid.UUID
	SessionID    uuid.UUID
	Email        string
	PasswordHash string

	EmailVerifiedAt *time.Time
	CurrentStep     string // Sub-step label for wizard resumption.
	InviteToken     string // Original invite token, kept for resume links.

	// Personal details (step 2). All identity-critical.
	LegalFirstName  string
	LegalLastName   string
	DateOfBirth     string
	AddressCountry  string
	AddressPostcode string
	AddressLine1    string
	AddressLine2    string
	AddressTown     string

	PhoneCountryCode string
	PhoneNumber      string

	// Business profile (step 5).
	VATNumber                  string
	CustomerIndustry           string
	EstimatedMonthlyCardVolume string
	AverageTransactionValue    string
	DeliveryTimeframe          string
	CustomerSupportEmail       string
	CustomerWebsites           string
	ProductDescription         string

	// Company details (step 4).
	CompanyName              string
	CompanyNumber            string
	CompanyRegisteredOffice  string
	CompanyIncorporatedIn    string
	CompanyIncorporationDate string
	CompanyIndustrySIC       string

	// Bank details (step 6).
	BankAccountName   string
	BankCurrency      string
	BankCountry       string
	BankSortCode      string
	BankAccountNumber string
	BankIBAN          string

	// Identity (KYC) verification sub-record.
	KYCApplicantID string
	KYCStatus      string

	// Bank account verification sub-record. Scores persist regardless of
	// outcome so a failed verification stays inspectable.
	BankVerifiedAt          *time.Time
	BankVerified            bool
	BankAccountMatch        bool
	BankAccountNameScore    int
	BankDirectorScore       int
	BankAccountHolderNames  string
	BankVerificationMessage string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmailVerified reports whether the contact has proven possession of their
// email address.
func (c *Contact) EmailVerified() bool {
	return c.EmailVerifiedAt != nil
}

// LegalName joins the legal first and last names for display and for
// deriving the merchant's legal_name.
func (c *Contact) LegalName() string {
	return strings.TrimSpace(strings.TrimSpace(c.LegalFirstName) + " " + strings.TrimSpace(c.LegalLastName))
}

// AgreementPlaceholder is the fill-in line rendered for agreement fields
// that carry no value.
const AgreementPlaceholder = "____________________"

// BlankContact returns a placeholder contact for the blank specimen
// agreement. Every field the agreement prints carries a fill-in line; the
// name and phone pairs fill only one half so the joined value renders as a
// single line.
func BlankContact() *Contact {
	return &Contact{
		Email:                   AgreementPlaceholder,
		LegalFirstName:          AgreementPlaceholder,
		PhoneNumber:             AgreementPlaceholder,
		CompanyName:             AgreementPlaceholder,
		CompanyNumber:           AgreementPlaceholder,
		CompanyRegisteredOffice: AgreementPlaceholder,
		BankAccountName:         AgreementPlaceholder,
		BankSortCode:            AgreementPlaceholder,
		BankAccountNumber:       AgreementPlaceholder,
	}
}

// PersonalDetails is the step-2 submission applied to a contact.
type PersonalDetails struct {
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

func (pd PersonalDetails) trimmed() PersonalDetails {
	return PersonalDetails{
		LegalFirstName:   strings.TrimSpace(pd.LegalFirstName),
		LegalLastName:    strings.TrimSpace(pd.LegalLastName),
		DateOfBirth:      strings.TrimSpace(pd.DateOfBirth),
		AddressCountry:   strings.TrimSpace(pd.AddressCountry),
		AddressPostcode:  strings.TrimSpace(pd.AddressPostcode),
		AddressLine1:     strings.TrimSpace(pd.AddressLine1),
		AddressLine2:     strings.TrimSpace(pd.AddressLine2),
		AddressTown:      strings.TrimSpace(pd.AddressTown),
		PhoneCountryCode: strings.TrimSpace(pd.PhoneCountryCode),
		PhoneNumber:      strings.TrimSpace(pd.PhoneNumber),
	}
}

// IdentityCriticalChanged reports whether applying the submission would
// change any field a completed KYC result depends on (name, date of birth,
// address). Phone fields are not identity-critical.
func IdentityCriticalChanged(c *Contact, pd PersonalDetails) bool {
	next := pd.trimmed()

	return c.LegalFirstName != next.LegalFirstName ||
		c.LegalLastName != next.LegalLastName ||
		c.DateOfBirth != next.DateOfBirth ||
		c.AddressCountry != next.AddressCountry ||
		c.AddressPostcode != next.AddressPostcode ||
		c.AddressLine1 != next.AddressLine1 ||
		c.AddressLine2 != next.AddressLine2 ||
		c.AddressTown != next.AddressTown
}

// ResetKYC invalidates a prior identity verification result, forcing the
// contact back through the provider. The applicant id is kept so the next
// token request can tell a re-verification apart from a first attempt.
func ResetKYC(c *Contact) {
	c.KYCStatus = ""
}

// ApplyPersonalDetails writes the trimmed submission onto the contact.
func (c *Contact) ApplyPersonalDetails(pd PersonalDetails) {
	next := pd.trimmed()
	c.LegalFirstName = next.LegalFirstName
	c.LegalLastName = next.LegalLastName
	c.DateOfBirth = next.DateOfBirth
	c.AddressCountry = next.AddressCountry
	c.AddressPostcode = next.AddressPostcode
	c.AddressLine1 = next.AddressLine1
	c.AddressLine2 = next.AddressLine2
	c.AddressTown = next.AddressTown
	c.PhoneCountryCode = next.PhoneCountryCode
	c.PhoneNumber = next.PhoneNumber
}
