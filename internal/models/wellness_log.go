package models

import "time"

// WellnessLog holds one owner's self-reported wellness metrics for a single
// calendar day. Logging the same day again replaces the existing entry.
type WellnessLog struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	OwnerID string    `gorm:"not null;uniqueIndex:uidx_wellness_owner_date" json:"owner_id"`
	Date    time.Time `gorm:"type:date;not null;uniqueIndex:uidx_wellness_owner_date" json:"date"`

	StressLevel      int     `gorm:"not null;default:0" json:"stress_level"`
	SleepHours       float64 `gorm:"not null;default:0" json:"sleep_hours"`
	MoodLevel        int     `gorm:"not null;default:0" json:"mood_level"`
	EnergyLevel      int     `gorm:"not null;default:5" json:"energy_level"`
	PainLevel        int     `gorm:"not null;default:0" json:"pain_level"`
	ExerciseMinutes  int     `gorm:"not null;default:0" json:"exercise_minutes"`
	NutritionQuality int     `gorm:"not null;default:3" json:"nutrition_quality"`
	CaffeineIntake   int     `gorm:"not null;default:0" json:"caffeine_intake"`
	AlcoholIntake    int     `gorm:"not null;default:0" json:"alcohol_intake"`
	Smoking          int     `gorm:"not null;default:0" json:"smoking"`
	AnxietyLevel     int     `gorm:"not null;default:0" json:"anxiety_level"`
	FocusLevel       int     `gorm:"not null;default:0" json:"focus_level"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
