package contract

import (
	"context"

	"grow-coach-be/internal/entity"

	"github.com/google/uuid"
)

type CalendarRepository interface {
	Create(ctx context.Context, calendar *entity.GrowCalendar) error
	FindById(ctx context.Context, userId, id uuid.UUID) (*entity.GrowCalendar, error)
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.GrowCalendar, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}
