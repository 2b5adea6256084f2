package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerateCalendarRequest is the wizard's grow setup. Values mirror the
// client option sets; validation rejects anything outside them.
type GenerateCalendarRequest struct {
	ExperienceLevel   string   `json:"experienceLevel" validate:"required,oneof=beginner intermediate commercial"`
	StrainType        string   `json:"strainType" validate:"required,oneof=indica sativa hybrid autoflower"`
	Medium            string   `json:"medium" validate:"required,oneof=soil coco hydro rockwool"`
	LightType         string   `json:"lightType" validate:"required,oneof=hps led cmh fluorescent"`
	SpaceSize         string   `json:"spaceSize" validate:"required"`
	StartDate         string   `json:"startDate" validate:"required"`
	CurrentStage      string   `json:"currentStage" validate:"omitempty,oneof=germination seedling vegetative flower harvest dry cure"`
	CurrentDayInStage *int     `json:"currentDayInStage"`
	Goals             []string `json:"goals" validate:"required,min=1,dive,oneof=yield speed quality"`
}

// CalendarData is the JSON shape the LLM must produce.
type CalendarData struct {
	TotalWeeks           int             `json:"totalWeeks"`
	EstimatedHarvestDate string          `json:"estimatedHarvestDate"`
	Weeks                json.RawMessage `json:"weeks"`
}

type CalendarResponse struct {
	Id                   uuid.UUID       `json:"id"`
	TotalWeeks           int             `json:"totalWeeks"`
	EstimatedHarvestDate string          `json:"estimatedHarvestDate"`
	Weeks                json.RawMessage `json:"weeks"`
	CreatedAt            time.Time       `json:"created_at"`
}

type CalendarListItemResponse struct {
	Id                   uuid.UUID `json:"id"`
	TotalWeeks           int       `json:"totalWeeks"`
	EstimatedHarvestDate string    `json:"estimatedHarvestDate"`
	CreatedAt            time.Time `json:"created_at"`
}
