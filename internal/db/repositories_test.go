package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/selene-health/selene/internal/models"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "selene-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return NewRepositories(database)
}

func mustDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}

func TestCycleRepository_ListByOwnerNewestFirst(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	for i, start := range []string{"2026-01-29", "2026-01-01", "2026-02-26"} {
		record := models.CycleRecord{
			ID:        []string{"r1", "r2", "r3"}[i],
			OwnerID:   "owner-1",
			StartDate: mustDay(t, start),
		}
		if err := repositories.Cycles.Create(&record); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	records, err := repositories.Cycles.ListByOwner("owner-1")
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 0; i+1 < len(records); i++ {
		if records[i].StartDate.Before(records[i+1].StartDate) {
			t.Fatalf("expected newest-first ordering, got %v before %v", records[i].StartDate, records[i+1].StartDate)
		}
	}
}

func TestCycleRepository_FindAndDelete(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	record := models.CycleRecord{ID: "r1", OwnerID: "owner-1", StartDate: mustDay(t, "2026-03-01")}
	if err := repositories.Cycles.Create(&record); err != nil {
		t.Fatalf("create record: %v", err)
	}

	if _, err := repositories.Cycles.FindByOwnerAndID("other-owner", "r1"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign owner, got %v", err)
	}

	if err := repositories.Cycles.Delete("owner-1", "r1"); err != nil {
		t.Fatalf("delete record: %v", err)
	}
	if err := repositories.Cycles.Delete("owner-1", "r1"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on repeat delete, got %v", err)
	}
}

func TestCycleRepository_ExistsByOwnerAndStartDateExcludesSelf(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	record := models.CycleRecord{ID: "r1", OwnerID: "owner-1", StartDate: mustDay(t, "2026-03-01")}
	if err := repositories.Cycles.Create(&record); err != nil {
		t.Fatalf("create record: %v", err)
	}

	exists, err := repositories.Cycles.ExistsByOwnerAndStartDate("owner-1", record)
	if err != nil {
		t.Fatalf("check uniqueness: %v", err)
	}
	if exists {
		t.Fatal("expected the record's own row to be ignored")
	}

	other := models.CycleRecord{ID: "r2", OwnerID: "owner-1", StartDate: mustDay(t, "2026-03-01")}
	exists, err = repositories.Cycles.ExistsByOwnerAndStartDate("owner-1", other)
	if err != nil {
		t.Fatalf("check uniqueness: %v", err)
	}
	if !exists {
		t.Fatal("expected a clash with the stored start date")
	}
}

func TestWellnessRepository_UpsertReplacesSameDay(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	day := mustDay(t, "2026-03-01")

	first := models.WellnessLog{OwnerID: "owner-1", Date: day, MoodLevel: 4}
	if err := repositories.Wellness.Upsert(&first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := models.WellnessLog{OwnerID: "owner-1", Date: day, MoodLevel: 8}
	if err := repositories.Wellness.Upsert(&second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the replacement to reuse id %d, got %d", first.ID, second.ID)
	}

	logs, err := repositories.Wellness.ListRecentByOwner("owner-1", 10)
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one log per day, got %d", len(logs))
	}
	if logs[0].MoodLevel != 8 {
		t.Fatalf("expected the later entry to win, got mood %d", logs[0].MoodLevel)
	}
}

func TestWellnessRepository_ListByOwnerRange(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)
	for _, day := range []string{"2026-03-01", "2026-03-05", "2026-03-10"} {
		entry := models.WellnessLog{OwnerID: "owner-1", Date: mustDay(t, day)}
		if err := repositories.Wellness.Upsert(&entry); err != nil {
			t.Fatalf("upsert log: %v", err)
		}
	}

	from := mustDay(t, "2026-03-02")
	to := mustDay(t, "2026-03-10")
	logs, err := repositories.Wellness.ListByOwnerRange("owner-1", &from, &to)
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one log inside the half-open range, got %d", len(logs))
	}
	if got := logs[0].Date.Format("2006-01-02"); got != "2026-03-05" {
		t.Fatalf("expected 2026-03-05, got %s", got)
	}
}

func TestProfileRepository_FindOrCreateAndTrackedOwners(t *testing.T) {
	t.Parallel()

	repositories := newTestRepositories(t)

	profile, err := repositories.Profiles.FindOrCreate("owner-1")
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}
	if profile.CycleLength != models.DefaultCycleLength || profile.PeriodDuration != models.DefaultPeriodDuration {
		t.Fatalf("expected default cycle parameters, got %d/%d", profile.CycleLength, profile.PeriodDuration)
	}

	tracked, err := repositories.Profiles.ListTrackedOwners()
	if err != nil {
		t.Fatalf("list tracked owners: %v", err)
	}
	if len(tracked) != 0 {
		t.Fatalf("expected no tracked owners before sex is set, got %d", len(tracked))
	}

	profile.Sex = models.SexFemale
	if err := repositories.Profiles.Save(&profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	tracked, err = repositories.Profiles.ListTrackedOwners()
	if err != nil {
		t.Fatalf("list tracked owners: %v", err)
	}
	if len(tracked) != 1 || tracked[0].OwnerID != "owner-1" {
		t.Fatalf("expected owner-1 to be tracked, got %v", tracked)
	}
}
