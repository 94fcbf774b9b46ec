package model

import (
	"time"

	"github.com/google/uuid"
)

// PartnerModel mirrors the 'partners' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type PartnerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	ContactName string    `gorm:"type:varchar(255)"`
	Email       string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Invites []InviteModel `gorm:"foreignKey:PartnerID"`
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}

// InviteModel mirrors the 'invites' table.
type InviteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:varchar(64);unique;not null"`
	Email     string    `gorm:"type:varchar(255)"`
	UsedAt    *time.Time
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InviteModel) TableName() string {
	return "invites"
}

// BoardingSessionModel mirrors the 'boarding_sessions' table.
type BoardingSessionModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartnerID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	InviteID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	ProductPackageID *uuid.UUID `gorm:"type:uuid"`
	MerchantID       *uuid.UUID `gorm:"type:uuid"`
	Status           string     `gorm:"type:varchar(32);not null"`
	Stage            int        `gorm:"not null;default:1"`

	EnvelopeID         string `gorm:"type:varchar(64)"`
	AgreementKey       string `gorm:"type:varchar(255)"`
	SignedAgreementKey string `gorm:"type:varchar(255)"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time

	Contact *ContactModel `gorm:"foreignKey:SessionID"`
}

// TableName explicitly sets the table name for GORM.
func (BoardingSessionModel) TableName() string {
	return "boarding_sessions"
}

// ContactModel mirrors the 'contacts' table. SessionID carries a unique index
// so the database enforces the one-contact-per-session rule.
type ContactModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	EmailVerifiedAt *time.Time
	CurrentStep     string `gorm:"type:varchar(16)"`
	InviteToken     string `gorm:"type:varchar(64)"`

	LegalFirstName  string `gorm:"type:varchar(100)"`
	LegalLastName   string `gorm:"type:varchar(100)"`
	DateOfBirth     string `gorm:"type:varchar(10)"`
	AddressCountry  string `gorm:"type:varchar(2)"`
	AddressPostcode string `gorm:"type:varchar(16)"`
	AddressLine1    string `gorm:"type:varchar(255)"`
	AddressLine2    string `gorm:"type:varchar(255)"`
	AddressTown     string `gorm:"type:varchar(100)"`

	PhoneCountryCode string `gorm:"type:varchar(8)"`
	PhoneNumber      string `gorm:"type:varchar(32)"`

	VATNumber                  string `gorm:"type:varchar(32)"`
	CustomerIndustry           string `gorm:"type:varchar(100)"`
	EstimatedMonthlyCardVolume string `gorm:"type:varchar(32)"`
	AverageTransactionValue    string `gorm:"type:varchar(32)"`
	DeliveryTimeframe          string `gorm:"type:varchar(64)"`
	CustomerSupportEmail       string `gorm:"type:varchar(255)"`
	CustomerWebsites           string `gorm:"type:text"`
	ProductDescription         string `gorm:"type:text"`

	CompanyName              string `gorm:"type:varchar(255)"`
	CompanyNumber            string `gorm:"type:varchar(32)"`
	CompanyRegisteredOffice  string `gorm:"type:text"`
	CompanyIncorporatedIn    string `gorm:"type:varchar(64)"`
	CompanyIncorporationDate string `gorm:"type:varchar(10)"`
	CompanyIndustrySIC       string `gorm:"type:varchar(16)"`

	BankAccountName   string `gorm:"type:varchar(255)"`
	BankCurrency      string `gorm:"type:varchar(3)"`
	BankCountry       string `gorm:"type:varchar(2)"`
	BankSortCode      string `gorm:"type:varchar(16)"`
	BankAccountNumber string `gorm:"type:varchar(16)"`
	BankIBAN          string `gorm:"type:varchar(34)"`

	KYCApplicantID string `gorm:"type:varchar(64)"`
	KYCStatus      string `gorm:"type:varchar(16)"`

	BankVerifiedAt          *time.Time
	BankVerified            bool
	BankAccountMatch        bool
	BankAccountNameScore    int
	BankDirectorScore       int
	BankAccountHolderNames  string `gorm:"type:text"`
	BankVerificationMessage string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	VerificationCodes []EmailVerificationCodeModel `gorm:"foreignKey:ContactID"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// EmailVerificationCodeModel mirrors the 'email_verification_codes' table.
type EmailVerificationCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ContactID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(8);not null"`
	UsedAt    *time.Time
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailVerificationCodeModel) TableName() string {
	return "email_verification_codes"
}
