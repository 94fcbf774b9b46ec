package postgres

import (
	"context"

	"boarding/internal/domain/entity"
	"boarding/internal/domain/repository"
	"boarding/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// FindByID retrieves a session by its unique ID, without its contact.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BoardingSession, error) {
	var sessionM model.BoardingSessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by ID")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByInviteID retrieves the session started from a given invite, if any.
func (repo *sessionRepository) FindByInviteID(ctx context.Context, inviteID uuid.UUID) (*entity.BoardingSession, error) {
	var sessionM model.BoardingSessionModel

	if err := repo.db.WithContext(ctx).
		Preload("Contact").
		Where("invite_id = ?", inviteID).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by invite")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByIDWithContact retrieves a session together with its contact, when one exists.
func (repo *sessionRepository) FindByIDWithContact(ctx context.Context, id uuid.UUID) (*entity.BoardingSession, error) {
	var sessionM model.BoardingSessionModel

	if err := repo.db.WithContext(ctx).
		Preload("Contact").
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session with contact")
	}

	return toSessionDomain(&sessionM), nil
}

// Create persists a new boarding session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.BoardingSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Omit("Contact").Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// Update modifies an existing boarding session.
func (repo *sessionRepository) Update(ctx context.Context, session *entity.BoardingSession) error {
	sessionM := fromSessionDomain(session)

	result := repo.db.WithContext(ctx).
		Omit("Contact").
		Model(&model.BoardingSessionModel{}).
		Where("id = ?", session.ID).
		Select("ProductPackageID", "MerchantID", "Status", "Stage",
			"EnvelopeID", "AgreementKey", "SignedAgreementKey", "CompletedAt").
		Updates(sessionM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update session")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// FindProductPackage retrieves the product package attached to a session,
// with its items and fee schedule preloaded.
func (repo *sessionRepository) FindProductPackage(ctx context.Context, packageID uuid.UUID) (*entity.ProductPackage, error) {
	var packageM model.ProductPackageModel

	if err := repo.db.WithContext(ctx).
		Preload("FeeSchedule").
		Preload("Items").
		Preload("Items.Product").
		Where("id = ?", packageID).
		First(&packageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find product package")
	}

	return toProductPackageDomain(&packageM), nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM BoardingSessionModel to a domain BoardingSession entity.
func toSessionDomain(data *model.BoardingSessionModel) *entity.BoardingSession {
	if data == nil {
		return nil
	}

	return &entity.BoardingSession{
		ID:                 data.ID,
		PartnerID:          data.PartnerID,
		InviteID:           data.InviteID,
		ProductPackageID:   data.ProductPackageID,
		MerchantID:         data.MerchantID,
		Status:             entity.SessionStatus(data.Status),
		Stage:              data.Stage,
		Contact:            toContactDomain(data.Contact),
		EnvelopeID:         data.EnvelopeID,
		AgreementKey:       data.AgreementKey,
		SignedAgreementKey: data.SignedAgreementKey,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		CompletedAt:        data.CompletedAt,
	}
}

// fromSessionDomain converts a domain BoardingSession entity to a GORM BoardingSessionModel.
func fromSessionDomain(data *entity.BoardingSession) *model.BoardingSessionModel {
	if data == nil {
		return nil
	}

	return &model.BoardingSessionModel{
		ID:                 data.ID,
		PartnerID:          data.PartnerID,
		InviteID:           data.InviteID,
		ProductPackageID:   data.ProductPackageID,
		MerchantID:         data.MerchantID,
		Status:             string(data.Status),
		Stage:              data.Stage,
		EnvelopeID:         data.EnvelopeID,
		AgreementKey:       data.AgreementKey,
		SignedAgreementKey: data.SignedAgreementKey,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		CompletedAt:        data.CompletedAt,
	}
}

// toProductPackageDomain converts a GORM ProductPackageModel to a domain ProductPackage entity.
func toProductPackageDomain(data *model.ProductPackageModel) *entity.ProductPackage {
	if data == nil {
		return nil
	}

	items := make([]entity.ProductPackageItem, 0, len(data.Items))
	for i := range data.Items {
		itemM := &data.Items[i]
		items = append(items, entity.ProductPackageItem{
			ID:            itemM.ID,
			PackageID:     itemM.PackageID,
			ProductID:     itemM.ProductID,
			Product:       toCatalogProductDomain(itemM.Product),
			Quantity:      itemM.Quantity,
			PriceOverride: itemM.PriceOverride,
		})
	}

	return &entity.ProductPackage{
		ID:            data.ID,
		PartnerID:     data.PartnerID,
		Name:          data.Name,
		FeeScheduleID: data.FeeScheduleID,
		FeeSchedule:   toFeeScheduleDomain(data.FeeSchedule),
		Items:         items,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toCatalogProductDomain converts a GORM CatalogProductModel to a domain CatalogProduct entity.
func toCatalogProductDomain(data *model.CatalogProductModel) *entity.CatalogProduct {
	if data == nil {
		return nil
	}

	return &entity.CatalogProduct{
		ID:          data.ID,
		SKU:         data.SKU,
		Name:        data.Name,
		Description: data.Description,
		UnitPrice:   data.UnitPrice,
		Currency:    data.Currency,
		CreatedAt:   data.CreatedAt,
	}
}

// toFeeScheduleDomain converts a GORM FeeScheduleModel to a domain FeeSchedule entity.
func toFeeScheduleDomain(data *model.FeeScheduleModel) *entity.FeeSchedule {
	if data == nil {
		return nil
	}

	return &entity.FeeSchedule{
		ID:                   data.ID,
		Name:                 data.Name,
		DebitRateBps:         data.DebitRateBps,
		CreditRateBps:        data.CreditRateBps,
		CommercialRateBps:    data.CommercialRateBps,
		AuthorizationFee:     data.AuthorizationFee,
		MonthlyFee:           data.MonthlyFee,
		ChargebackFee:        data.ChargebackFee,
		SettlementPeriodDays: data.SettlementPeriodDays,
		MinimumMonthlyCharge: data.MinimumMonthlyCharge,
		CreatedAt:            data.CreatedAt,
	}
}
