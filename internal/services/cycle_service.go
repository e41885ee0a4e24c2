package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/models"
)

// ProfileUpdateHook runs after a successful save with the owner's updated
// history, newest record first. The save has already committed; hook
// failures must not surface to the caller.
type ProfileUpdateHook func(ownerID string, history []models.CycleRecord)

// CycleService owns the write path for cycle records. Saves follow an
// explicit pipeline: validate, derive, persist, then signal the optional
// profile-update hook. Writes for the same owner are serialized because
// derivation reads the owner's full prior history.
type CycleService struct {
	cycles    *db.CycleRepository
	profiles  *db.ProfileRepository
	afterSave ProfileUpdateHook

	mu         sync.Mutex
	ownerLocks map[string]*sync.Mutex
}

func NewCycleService(cycles *db.CycleRepository, profiles *db.ProfileRepository) *CycleService {
	return &CycleService{
		cycles:     cycles,
		profiles:   profiles,
		ownerLocks: make(map[string]*sync.Mutex),
	}
}

func (service *CycleService) SetAfterSaveHook(hook ProfileUpdateHook) {
	service.afterSave = hook
}

func (service *CycleService) lockOwner(ownerID string) func() {
	service.mu.Lock()
	lock, ok := service.ownerLocks[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		service.ownerLocks[ownerID] = lock
	}
	service.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// SaveRecord creates or updates a cycle record and recomputes every
// derived field against current history. Re-running with identical input
// and history yields identical derived fields.
func (service *CycleService) SaveRecord(record *models.CycleRecord) error {
	if record.OwnerID == "" {
		return ErrMissingOwner
	}

	unlock := service.lockOwner(record.OwnerID)
	defer unlock()

	profile, err := service.profiles.FindOrCreate(record.OwnerID)
	if err != nil {
		return fmt.Errorf("load owner profile: %w", err)
	}
	if !profile.TracksCycles() {
		return ErrPolicyViolation
	}

	if err := ValidateRecordDates(*record); err != nil {
		return err
	}

	record.StartDate = dateOnly(record.StartDate)
	duplicate, err := service.cycles.ExistsByOwnerAndStartDate(record.OwnerID, *record)
	if err != nil {
		return fmt.Errorf("check start date uniqueness: %w", err)
	}
	if duplicate {
		return ErrDuplicateStartDate
	}

	history, err := service.cycles.ListByOwner(record.OwnerID)
	if err != nil {
		return fmt.Errorf("load cycle history: %w", err)
	}
	history = excludeRecord(history, record.ID)

	DeriveRecordFields(record, history, profile)

	if record.ID == "" {
		record.ID = uuid.NewString()
		if err := service.cycles.Create(record); err != nil {
			return fmt.Errorf("create cycle record: %w", err)
		}
	} else {
		if err := service.cycles.Save(record); err != nil {
			return fmt.Errorf("save cycle record: %w", err)
		}
	}

	if service.afterSave != nil {
		updated := make([]models.CycleRecord, 0, len(history)+1)
		updated = append(updated, *record)
		updated = append(updated, history...)
		service.afterSave(record.OwnerID, updated)
	}
	return nil
}

// DeleteRecord removes a record. Sibling records keep the derived fields
// from their last save; deletion deliberately triggers no backfill
// recompute.
func (service *CycleService) DeleteRecord(ownerID string, id string) error {
	if ownerID == "" {
		return ErrMissingOwner
	}

	unlock := service.lockOwner(ownerID)
	defer unlock()

	return service.cycles.Delete(ownerID, id)
}

func ValidateRecordDates(record models.CycleRecord) error {
	if record.StartDate.IsZero() {
		return ErrMissingStartDate
	}
	if record.EndDate != nil && !record.EndDate.After(record.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// DeriveRecordFields recomputes period duration, cycle length, predicted
// end and next period start in one pass. All derived fields change
// together or not at all; the function is deterministic in its inputs.
func DeriveRecordFields(record *models.CycleRecord, history []models.CycleRecord, profile models.OwnerProfile) {
	record.StartDate = dateOnly(record.StartDate)
	if record.EndDate != nil {
		end := dateOnly(*record.EndDate)
		record.EndDate = &end
		record.PeriodDuration = daysBetween(record.StartDate, end)
	}

	if previous, ok := latestPriorRecord(record.StartDate, excludeRecord(history, record.ID)); ok {
		record.CycleLength = daysBetween(previous.StartDate, record.StartDate)
	} else if record.CycleLength == 0 {
		record.CycleLength = profile.CycleLength
	}

	duration := record.PeriodDuration
	if duration <= 0 {
		duration = profile.PeriodDuration
		record.PeriodDuration = duration
	}
	if !models.IsPlausiblePeriodDuration(duration) {
		duration = models.DefaultPeriodDuration
	}
	predictedEnd := record.StartDate.AddDate(0, 0, duration)
	record.PredictedEndDate = &predictedEnd

	record.NextPeriodStartDate = PredictNextPeriodStart(*record, history, profile.CycleLength)
}

func latestPriorRecord(startDate time.Time, history []models.CycleRecord) (models.CycleRecord, bool) {
	var previous models.CycleRecord
	found := false
	for _, candidate := range history {
		if !candidate.StartDate.Before(startDate) {
			continue
		}
		if !found || candidate.StartDate.After(previous.StartDate) {
			previous = candidate
			found = true
		}
	}
	return previous, found
}
