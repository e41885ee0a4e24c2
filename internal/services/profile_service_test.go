package services

import (
	"testing"

	"github.com/selene-health/selene/internal/models"
)

func TestProfileService_UpdateKeepsDefaultsForZeroValues(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	service := NewProfileService(repositories.Profiles)

	profile, err := service.Update("owner-1", models.SexFemale, 0, 0)
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if profile.Sex != models.SexFemale {
		t.Fatalf("expected sex to be stored, got %q", profile.Sex)
	}
	if profile.CycleLength != models.DefaultCycleLength || profile.PeriodDuration != models.DefaultPeriodDuration {
		t.Fatalf("expected defaults to survive zero inputs, got %d/%d", profile.CycleLength, profile.PeriodDuration)
	}

	profile, err = service.Update("owner-1", models.SexFemale, 30, 6)
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if profile.CycleLength != 30 || profile.PeriodDuration != 6 {
		t.Fatalf("expected explicit values to apply, got %d/%d", profile.CycleLength, profile.PeriodDuration)
	}
}

func TestRefreshRollingDefaults_AveragesRecentRecords(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	service := NewProfileService(repositories.Profiles)

	history := make([]models.CycleRecord, 0, 3)
	for i, start := range []string{"2026-01-01", "2026-01-30", "2026-02-28"} {
		record := makeRecord("", start)
		record.CycleLength = 29
		record.PeriodDuration = 4 + i
		history = append(history, record)
	}

	if err := service.RefreshRollingDefaults("owner-1", history); err != nil {
		t.Fatalf("refresh defaults: %v", err)
	}

	profile, err := service.Get("owner-1")
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.CycleLength != 29 {
		t.Fatalf("expected rolling cycle length 29, got %d", profile.CycleLength)
	}
	if profile.PeriodDuration != 5 {
		t.Fatalf("expected rolling period duration 5, got %d", profile.PeriodDuration)
	}
}

func TestRefreshRollingDefaults_SkipsUnsetValues(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	service := NewProfileService(repositories.Profiles)

	withLength := makeRecord("r1", "2026-01-01")
	withLength.CycleLength = 30
	unset := makeRecord("r2", "2026-01-31")

	if err := service.RefreshRollingDefaults("owner-1", []models.CycleRecord{withLength, unset}); err != nil {
		t.Fatalf("refresh defaults: %v", err)
	}

	profile, err := service.Get("owner-1")
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.CycleLength != 30 {
		t.Fatalf("expected unset records to be skipped, got %d", profile.CycleLength)
	}
	if profile.PeriodDuration != models.DefaultPeriodDuration {
		t.Fatalf("expected period duration default to survive, got %d", profile.PeriodDuration)
	}
}

func TestRefreshRollingDefaults_NoRecordsIsNoOp(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	service := NewProfileService(repositories.Profiles)

	if err := service.RefreshRollingDefaults("owner-1", nil); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}
