package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GrowCalendar is a generated week-by-week grow plan. Setup is the wizard
// input, Weeks the model-produced plan (array of week objects).
type GrowCalendar struct {
	Id                   uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID         `gorm:"type:uuid;not null;index"`
	Setup                datatypes.JSONMap `gorm:"type:jsonb"`
	Weeks                datatypes.JSON    `gorm:"type:jsonb"`
	TotalWeeks           int               `gorm:"not null"`
	EstimatedHarvestDate string            `gorm:"type:text"`
	CreatedAt            time.Time         `gorm:"autoCreateTime"`
	UpdatedAt            time.Time         `gorm:"autoUpdateTime"`
	DeletedAt            gorm.DeletedAt    `gorm:"index"`
}

func (GrowCalendar) TableName() string {
	return "grow_calendars"
}
