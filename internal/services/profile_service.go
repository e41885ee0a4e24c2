package services

import (
	"fmt"
	"log"
	"math"

	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/models"
)

type ProfileService struct {
	profiles *db.ProfileRepository
}

func NewProfileService(profiles *db.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (service *ProfileService) Get(ownerID string) (models.OwnerProfile, error) {
	return service.profiles.FindOrCreate(ownerID)
}

func (service *ProfileService) Update(ownerID string, sex string, cycleLength int, periodDuration int) (models.OwnerProfile, error) {
	profile, err := service.profiles.FindOrCreate(ownerID)
	if err != nil {
		return models.OwnerProfile{}, err
	}

	profile.Sex = sex
	if cycleLength > 0 {
		profile.CycleLength = cycleLength
	}
	if periodDuration > 0 {
		profile.PeriodDuration = periodDuration
	}
	if err := service.profiles.Save(&profile); err != nil {
		return models.OwnerProfile{}, fmt.Errorf("save owner profile: %w", err)
	}
	return profile, nil
}

// RefreshRollingDefaults recomputes the owner's default cycle length and
// period duration as the rounded arithmetic mean over the six most recent
// records, skipping unset values.
func (service *ProfileService) RefreshRollingDefaults(ownerID string, history []models.CycleRecord) error {
	recordsDesc := recentWindow(SortRecordsNewestFirst(history), 6)
	if len(recordsDesc) == 0 {
		return nil
	}

	durations := make([]int, 0, len(recordsDesc))
	cycleLengths := make([]int, 0, len(recordsDesc))
	for _, record := range recordsDesc {
		if record.PeriodDuration > 0 {
			durations = append(durations, record.PeriodDuration)
		}
		if record.CycleLength > 0 {
			cycleLengths = append(cycleLengths, record.CycleLength)
		}
	}
	if len(durations) == 0 && len(cycleLengths) == 0 {
		return nil
	}

	profile, err := service.profiles.FindOrCreate(ownerID)
	if err != nil {
		return fmt.Errorf("load owner profile: %w", err)
	}
	if len(durations) > 0 {
		profile.PeriodDuration = int(math.Round(meanInts(durations)))
	}
	if len(cycleLengths) > 0 {
		profile.CycleLength = int(math.Round(meanInts(cycleLengths)))
	}
	if err := service.profiles.Save(&profile); err != nil {
		return fmt.Errorf("save owner profile: %w", err)
	}
	return nil
}

// Hook adapts RefreshRollingDefaults to the post-save signature. The save
// already committed, so failures are logged rather than surfaced.
func (service *ProfileService) Hook() ProfileUpdateHook {
	return func(ownerID string, history []models.CycleRecord) {
		if err := service.RefreshRollingDefaults(ownerID, history); err != nil {
			log.Printf("profiles: rolling defaults update failed for owner %s: %v", ownerID, err)
		}
	}
}
