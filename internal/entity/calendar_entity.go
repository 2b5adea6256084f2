package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type GrowCalendar struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	Setup                map[string]interface{}
	Weeks                json.RawMessage
	TotalWeeks           int
	EstimatedHarvestDate string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
