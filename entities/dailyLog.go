package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLog is one day's self-reported mood/diet/gut/sleep/water entry.
// Rows are append-only: nothing in the system updates or deletes them.
type DailyLog struct {
	ID          string  `gorm:"type:text;primaryKey" json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD, stamped server-side on creation
	Mood        string  `json:"mood"`
	Meal        string  `json:"meal"`
	GutSymptom  string  `json:"gut_symptom"`
	SleepHours  float64 `json:"sleep_hours"`
	WaterIntake float64 `json:"water_intake"`
	UserID      string  `gorm:"index;not null" json:"user_id"`
	CreatedAt   string  `json:"created_at"`
}

func (d *DailyLog) BeforeCreate(tx *gorm.DB) (err error) {
	d.ID = uuid.New().String()
	d.CreatedAt = time.Now().Format(time.RFC3339)
	return
}
