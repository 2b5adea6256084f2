package contract

import (
	"context"

	"grow-coach-be/internal/entity"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
	UpdateTier(ctx context.Context, id uuid.UUID, tier string) error
}
