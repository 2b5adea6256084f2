package mapper

import (
	"encoding/json"
	"time"

	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/model"

	"gorm.io/datatypes"
)

type CalendarMapper struct{}

func NewCalendarMapper() *CalendarMapper {
	return &CalendarMapper{}
}

func (m *CalendarMapper) ToEntity(c *model.GrowCalendar) *entity.GrowCalendar {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.GrowCalendar{
		Id:                   c.Id,
		UserId:               c.UserId,
		Setup:                map[string]interface{}(c.Setup),
		Weeks:                json.RawMessage(c.Weeks),
		TotalWeeks:           c.TotalWeeks,
		EstimatedHarvestDate: c.EstimatedHarvestDate,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *CalendarMapper) ToModel(c *entity.GrowCalendar) *model.GrowCalendar {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.GrowCalendar{
		Id:                   c.Id,
		UserId:               c.UserId,
		Setup:                datatypes.JSONMap(c.Setup),
		Weeks:                datatypes.JSON(c.Weeks),
		TotalWeeks:           c.TotalWeeks,
		EstimatedHarvestDate: c.EstimatedHarvestDate,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *CalendarMapper) ToEntities(models []*model.GrowCalendar) []*entity.GrowCalendar {
	entities := make([]*entity.GrowCalendar, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
