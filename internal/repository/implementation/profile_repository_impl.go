package implementation

import (
	"context"
	"errors"

	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/mapper"
	"grow-coach-be/internal/model"
	"grow-coach-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var m model.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) Save(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) UpdateTier(ctx context.Context, id uuid.UUID, tier string) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Update("subscription_tier", tier).Error
}
