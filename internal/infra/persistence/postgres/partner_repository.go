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

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// FindByID retrieves a partner by its unique ID.
func (repo *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by ID")
	}

	return toPartnerDomain(&partnerM), nil
}

// toPartnerDomain converts a GORM PartnerModel to a domain Partner entity.
func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	return &entity.Partner{
		ID:          data.ID,
		Name:        data.Name,
		ContactName: data.ContactName,
		Email:       data.Email,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
