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

// merchantRepository implements the repository.MerchantRepository interface.
type merchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository is the constructor for merchantRepository.
func NewMerchantRepository(db *gorm.DB) repository.MerchantRepository {
	return &merchantRepository{
		db: db,
	}
}

// CreateMerchant persists a new merchant record.
func (repo *merchantRepository) CreateMerchant(ctx context.Context, merchant *entity.Merchant) error {
	merchantM := fromMerchantDomain(merchant)

	if err := repo.db.WithContext(ctx).Omit("Users").Create(merchantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid partner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant")
	}

	merchant.ID = merchantM.ID
	merchant.CreatedAt = merchantM.CreatedAt
	merchant.UpdatedAt = merchantM.UpdatedAt

	return nil
}

// UpdateMerchant modifies an existing merchant record.
func (repo *merchantRepository) UpdateMerchant(ctx context.Context, merchant *entity.Merchant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MerchantModel{}).
		Where("id = ?", merchant.ID).
		Update("legal_name", merchant.LegalName)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update merchant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMerchantNotFound
	}

	return nil
}

// FindMerchantByID retrieves a merchant by its unique ID.
func (repo *merchantRepository) FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var merchantM model.MerchantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&merchantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	return toMerchantDomain(&merchantM), nil
}

// CreateMerchantUser persists a new merchant user. The unique index on
// email enforces one registration per address across all merchants.
func (repo *merchantRepository) CreateMerchantUser(ctx context.Context, user *entity.MerchantUser) error {
	userM := fromMerchantUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMerchantUser
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid merchant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create merchant user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindMerchantUserByEmail retrieves a merchant user by email address.
func (repo *merchantRepository) FindMerchantUserByEmail(ctx context.Context, email string) (*entity.MerchantUser, error) {
	var userM model.MerchantUserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMerchantUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant user by email")
	}

	return toMerchantUserDomain(&userM), nil
}

// --- Mapper Functions ---

// toMerchantDomain converts a GORM MerchantModel to a domain Merchant entity.
func toMerchantDomain(data *model.MerchantModel) *entity.Merchant {
	if data == nil {
		return nil
	}

	return &entity.Merchant{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		LegalName: data.LegalName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMerchantDomain converts a domain Merchant entity to a GORM MerchantModel.
func fromMerchantDomain(data *entity.Merchant) *model.MerchantModel {
	if data == nil {
		return nil
	}

	return &model.MerchantModel{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		LegalName: data.LegalName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toMerchantUserDomain converts a GORM MerchantUserModel to a domain MerchantUser entity.
func toMerchantUserDomain(data *model.MerchantUserModel) *entity.MerchantUser {
	if data == nil {
		return nil
	}

	return &entity.MerchantUser{
		ID:           data.ID,
		MerchantID:   data.MerchantID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromMerchantUserDomain converts a domain MerchantUser entity to a GORM MerchantUserModel.
func fromMerchantUserDomain(data *entity.MerchantUser) *model.MerchantUserModel {
	if data == nil {
		return nil
	}

	return &model.MerchantUserModel{
		ID:           data.ID,
		MerchantID:   data.MerchantID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
