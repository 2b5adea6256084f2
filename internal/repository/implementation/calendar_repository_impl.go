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

type CalendarRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CalendarMapper
}

func NewCalendarRepository(db *gorm.DB) contract.CalendarRepository {
	return &CalendarRepositoryImpl{
		db:     db,
		mapper: mapper.NewCalendarMapper(),
	}
}

func (r *CalendarRepositoryImpl) Create(ctx context.Context, calendar *entity.GrowCalendar) error {
	m := r.mapper.ToModel(calendar)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*calendar = *r.mapper.ToEntity(m)
	return nil
}

func (r *CalendarRepositoryImpl) FindById(ctx context.Context, userId, id uuid.UUID) (*entity.GrowCalendar, error) {
	var m model.GrowCalendar
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CalendarRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.GrowCalendar, error) {
	var models []*model.GrowCalendar
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CalendarRepositoryImpl) Delete(ctx context.Context, userId, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.GrowCalendar{}).Error
}
