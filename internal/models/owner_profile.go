package models

import "time"

const SexFemale = "female"

// OwnerProfile carries the per-owner defaults the prediction fallback chain
// reads. CycleLength and PeriodDuration are rolling averages over the last
// six saved cycle records, refreshed by the post-save hook.
type OwnerProfile struct {
	OwnerID        string    `gorm:"primaryKey" json:"owner_id"`
	Sex            string    `gorm:"not null;default:''" json:"sex"`
	CycleLength    int       `gorm:"not null;default:28" json:"cycle_length"`
	PeriodDuration int       `gorm:"not null;default:5" json:"period_duration"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TracksCycles reports whether cycle records may be saved for this owner.
// The gate mirrors the upstream authorization rule; callers that already
// passed it never see a policy error.
func (profile OwnerProfile) TracksCycles() bool {
	return profile.Sex == SexFemale
}
