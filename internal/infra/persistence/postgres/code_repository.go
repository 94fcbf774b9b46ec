package postgres

import (
	"context"
	"time"

	"boarding/internal/domain/entity"
	"boarding/internal/domain/repository"
	"boarding/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// codeRepository implements the repository.CodeRepository interface.
type codeRepository struct {
	db *gorm.DB
}

// NewCodeRepository is the constructor for codeRepository.
func NewCodeRepository(db *gorm.DB) repository.CodeRepository {
	return &codeRepository{
		db: db,
	}
}

// Create persists a new verification code.
func (repo *codeRepository) Create(ctx context.Context, code *entity.EmailVerificationCode) error {
	codeM := fromCodeDomain(code)

	if err := repo.db.WithContext(ctx).Create(codeM).Error; err != nil {
		return errors.Wrap(err, "failed to create verification code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindUsableByContactAndCode retrieves the newest unredeemed, unexpired code
// matching the submitted value.
func (repo *codeRepository) FindUsableByContactAndCode(ctx context.Context, contactID uuid.UUID, code string) (*entity.EmailVerificationCode, error) {
	var codeM model.EmailVerificationCodeModel

	if err := repo.db.WithContext(ctx).
		Where("contact_id = ? AND code = ? AND used_at IS NULL AND expires_at > ?", contactID, code, time.Now()).
		Order("created_at DESC").
		First(&codeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find usable verification code")
	}

	return toCodeDomain(&codeM), nil
}

// MarkUsed records that the code has been redeemed.
func (repo *codeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmailVerificationCodeModel{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", time.Now())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark verification code used")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCodeDomain converts a GORM EmailVerificationCodeModel to a domain entity.
func toCodeDomain(data *model.EmailVerificationCodeModel) *entity.EmailVerificationCode {
	if data == nil {
		return nil
	}

	return &entity.EmailVerificationCode{
		ID:        data.ID,
		ContactID: data.ContactID,
		Code:      data.Code,
		UsedAt:    data.UsedAt,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromCodeDomain converts a domain entity to a GORM EmailVerificationCodeModel.
func fromCodeDomain(data *entity.EmailVerificationCode) *model.EmailVerificationCodeModel {
	if data == nil {
		return nil
	}

	return &model.EmailVerificationCodeModel{
		ID:        data.ID,
		ContactID: data.ContactID,
		Code:      data.Code,
		UsedAt:    data.UsedAt,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
