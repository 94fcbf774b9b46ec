package postgres

import (
	"context"

	"boarding/internal/domain/entity"
	domainerrors "boarding/internal/domain/errors"
	"boarding/internal/domain/repository"
	"boarding/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// FindByID retrieves a contact by its unique ID.
func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by ID")
	}

	return toContactDomain(&contactM), nil
}

// FindBySessionID retrieves the single contact attached to a session.
func (repo *contactRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by session")
	}

	return toContactDomain(&contactM), nil
}

// Create persists a new contact. The unique index on session_id makes this
// the enforcement point for the one-contact-per-session rule.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateContact
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrContactNotFound.WrapMessage("invalid session reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	// Update the entity with generated values
	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// Update modifies an existing contact.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	result := repo.db.WithContext(ctx).
		Where("id = ?", contact.ID).
		Save(contactM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toContactDomain converts a GORM ContactModel to a domain Contact entity.
func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:           data.ID,
		SessionID:    data.SessionID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,

		EmailVerifiedAt: data.EmailVerifiedAt,
		CurrentStep:     data.CurrentStep,
		InviteToken:     data.InviteToken,

		LegalFirstName:  data.LegalFirstName,
		LegalLastName:   data.LegalLastName,
		DateOfBirth:     data.DateOfBirth,
		AddressCountry:  data.AddressCountry,
		AddressPostcode: data.AddressPostcode,
		AddressLine1:    data.AddressLine1,
		AddressLine2:    data.AddressLine2,
		AddressTown:     data.AddressTown,

		PhoneCountryCode: data.PhoneCountryCode,
		PhoneNumber:      data.PhoneNumber,

		VATNumber:                  data.VATNumber,
		CustomerIndustry:           data.CustomerIndustry,
		EstimatedMonthlyCardVolume: data.EstimatedMonthlyCardVolume,
		AverageTransactionValue:    data.AverageTransactionValue,
		DeliveryTimeframe:          data.DeliveryTimeframe,
		CustomerSupportEmail:       data.CustomerSupportEmail,
		CustomerWebsites:           data.CustomerWebsites,
		ProductDescription:         data.ProductDescription,

		CompanyName:              data.CompanyName,
		CompanyNumber:            data.CompanyNumber,
		CompanyRegisteredOffice:  data.CompanyRegisteredOffice,
		CompanyIncorporatedIn:    data.CompanyIncorporatedIn,
		CompanyIncorporationDate: data.CompanyIncorporationDate,
		CompanyIndustrySIC:       data.CompanyIndustrySIC,

		BankAccountName:   data.BankAccountName,
		BankCurrency:      data.BankCurrency,
		BankCountry:       data.BankCountry,
		BankSortCode:      data.BankSortCode,
		BankAccountNumber: data.BankAccountNumber,
		BankIBAN:          data.BankIBAN,

		KYCApplicantID: data.KYCApplicantID,
		KYCStatus:      data.KYCStatus,

		BankVerifiedAt:          data.BankVerifiedAt,
		BankVerified:            data.BankVerified,
		BankAccountMatch:        data.BankAccountMatch,
		BankAccountNameScore:    data.BankAccountNameScore,
		BankDirectorScore:       data.BankDirectorScore,
		BankAccountHolderNames:  data.BankAccountHolderNames,
		BankVerificationMessage: data.BankVerificationMessage,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromContactDomain converts a domain Contact entity to a GORM ContactModel.
func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:           data.ID,
		SessionID:    data.SessionID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,

		EmailVerifiedAt: data.EmailVerifiedAt,
		CurrentStep:     data.CurrentStep,
		InviteToken:     data.InviteToken,

		LegalFirstName:  data.LegalFirstName,
		LegalLastName:   data.LegalLastName,
		DateOfBirth:     data.DateOfBirth,
		AddressCountry:  data.AddressCountry,
		AddressPostcode: data.AddressPostcode,
		AddressLine1:    data.AddressLine1,
		AddressLine2:    data.AddressLine2,
		AddressTown:     data.AddressTown,

		PhoneCountryCode: data.PhoneCountryCode,
		PhoneNumber:      data.PhoneNumber,

		VATNumber:                  data.VATNumber,
		CustomerIndustry:           data.CustomerIndustry,
		EstimatedMonthlyCardVolume: data.EstimatedMonthlyCardVolume,
		AverageTransactionValue:    data.AverageTransactionValue,
		DeliveryTimeframe:          data.DeliveryTimeframe,
		CustomerSupportEmail:       data.CustomerSupportEmail,
		CustomerWebsites:           data.CustomerWebsites,
		ProductDescription:         data.ProductDescription,

		CompanyName:              data.CompanyName,
		CompanyNumber:            data.CompanyNumber,
		CompanyRegisteredOffice:  data.CompanyRegisteredOffice,
		CompanyIncorporatedIn:    data.CompanyIncorporatedIn,
		CompanyIncorporationDate: data.CompanyIncorporationDate,
		CompanyIndustrySIC:       data.CompanyIndustrySIC,

		BankAccountName:   data.BankAccountName,
		BankCurrency:      data.BankCurrency,
		BankCountry:       data.BankCountry,
		BankSortCode:      data.BankSortCode,
		BankAccountNumber: data.BankAccountNumber,
		BankIBAN:          data.BankIBAN,

		KYCApplicantID: data.KYCApplicantID,
		KYCStatus:      data.KYCStatus,

		BankVerifiedAt:          data.BankVerifiedAt,
		BankVerified:            data.BankVerified,
		BankAccountMatch:        data.BankAccountMatch,
		BankAccountNameScore:    data.BankAccountNameScore,
		BankDirectorScore:       data.BankDirectorScore,
		BankAccountHolderNames:  data.BankAccountHolderNames,
		BankVerificationMessage: data.BankVerificationMessage,

		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
