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

// inviteRepository implements the repository.InviteRepository interface.
type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository is the constructor for inviteRepository.
func NewInviteRepository(db *gorm.DB) repository.InviteRepository {
	return &inviteRepository{
		db: db,
	}
}

// FindByToken retrieves a single invite by its opaque token.
func (repo *inviteRepository) FindByToken(ctx context.Context, token string) (*entity.Invite, error) {
	var inviteM model.InviteModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&inviteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInviteNotFound
		}

		return nil, errors.Wrap(err, "failed to find invite by token")
	}

	return toInviteDomain(&inviteM), nil
}

// FindByID retrieves a single invite by its unique ID.
func (repo *inviteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invite, error) {
	var inviteM model.InviteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&inviteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInviteNotFound
		}

		return nil, errors.Wrap(err, "failed to find invite by ID")
	}

	return toInviteDomain(&inviteM), nil
}

// Create persists a new invite entity to the storage.
func (repo *inviteRepository) Create(ctx context.Context, invite *entity.Invite) error {
	inviteM := fromInviteDomain(invite)

	if err := repo.db.WithContext(ctx).Create(inviteM).Error; err != nil {
		return errors.Wrap(err, "failed to create invite")
	}

	invite.ID = inviteM.ID
	invite.CreatedAt = inviteM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toInviteDomain converts a GORM InviteModel to a domain Invite entity.
func toInviteDomain(data *model.InviteModel) *entity.Invite {
	if data == nil {
		return nil
	}

	return &entity.Invite{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		Token:     data.Token,
		Email:     data.Email,
		UsedAt:    data.UsedAt,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromInviteDomain converts a domain Invite entity to a GORM InviteModel.
func fromInviteDomain(data *entity.Invite) *model.InviteModel {
	if data == nil {
		return nil
	}

	return &model.InviteModel{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		Token:     data.Token,
		Email:     data.Email,
		UsedAt:    data.UsedAt,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
