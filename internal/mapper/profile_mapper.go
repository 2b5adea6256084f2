package mapper

import (
	"time"

	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Profile{
		Id:               p.Id,
		Email:            p.Email,
		SubscriptionTier: p.SubscriptionTier,
		TrialStartDate:   p.TrialStartDate,
		MidtransOrderId:  p.MidtransOrderId,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Profile{
		Id:               p.Id,
		Email:            p.Email,
		SubscriptionTier: p.SubscriptionTier,
		TrialStartDate:   p.TrialStartDate,
		MidtransOrderId:  p.MidtransOrderId,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}
