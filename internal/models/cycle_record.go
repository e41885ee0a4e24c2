package models

import (
	"strings"
	"time"
)

const (
	DefaultCycleLength    = 28
	DefaultPeriodDuration = 5

	MinCycleLength    = 21
	MaxCycleLength    = 45
	MinPeriodDuration = 2
	MaxPeriodDuration = 10
)

// CycleRecord is one tracked menstrual cycle, anchored by its start date.
// All derived fields are recomputed together on every save; they are never
// authored independently.
type CycleRecord struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	OwnerID             string     `gorm:"not null;index;uniqueIndex:uidx_owner_start" json:"owner_id"`
	StartDate           time.Time  `gorm:"type:date;not null;uniqueIndex:uidx_owner_start" json:"start_date"`
	EndDate             *time.Time `gorm:"type:date" json:"end_date"`
	Symptoms            string     `json:"symptoms"`
	Medication          string     `json:"medication"`
	CycleLength         int        `gorm:"not null;default:28" json:"cycle_length"`
	PeriodDuration      int        `gorm:"not null;default:5" json:"period_duration"`
	PredictedEndDate    *time.Time `gorm:"type:date" json:"predicted_end_date"`
	NextPeriodStartDate *time.Time `gorm:"type:date" json:"next_period_start_date"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func IsPlausibleCycleLength(days int) bool {
	return days >= MinCycleLength && days <= MaxCycleLength
}

func IsPlausiblePeriodDuration(days int) bool {
	return days >= MinPeriodDuration && days <= MaxPeriodDuration
}

// TrustedCycleLength returns the stored cycle length when it is
// physiologically plausible and the default otherwise. Downstream
// prediction must never trust an out-of-range value.
func (record CycleRecord) TrustedCycleLength() int {
	if IsPlausibleCycleLength(record.CycleLength) {
		return record.CycleLength
	}
	return DefaultCycleLength
}

// SymptomTags splits the free-text symptoms field on commas; every
// non-empty trimmed segment counts as one tag.
func (record CycleRecord) SymptomTags() []string {
	return SplitTags(record.Symptoms)
}

func (record CycleRecord) MedicationTags() []string {
	return SplitTags(record.Medication)
}

func (record CycleRecord) HasSymptoms() bool {
	return len(record.SymptomTags()) > 0
}

func SplitTags(raw string) []string {
	tags := make([]string, 0)
	for _, segment := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(segment)
		if trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
