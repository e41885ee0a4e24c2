package services

import (
	"testing"

	"github.com/selene-health/selene/internal/models"
)

func TestPredictNextPeriodStart_NilWithoutStartDate(t *testing.T) {
	t.Parallel()

	if got := PredictNextPeriodStart(models.CycleRecord{ID: "r1"}, nil, 28); got != nil {
		t.Fatalf("expected nil prediction for record without start date, got %s", got.Format("2006-01-02"))
	}
}

func TestPredictNextPeriodStart_SmartAverage(t *testing.T) {
	t.Parallel()

	history := []models.CycleRecord{
		makeRecord("r1", "2026-01-01"),
		makeRecord("r2", "2026-01-29"),
		makeRecord("r3", "2026-02-26"),
	}
	record := makeRecord("r4", "2026-03-26")

	got := PredictNextPeriodStart(record, history, 30)
	if got == nil {
		t.Fatal("expected a prediction")
	}
	if want := "2026-04-23"; got.Format("2006-01-02") != want {
		t.Fatalf("expected smart prediction %s, got %s", want, got.Format("2006-01-02"))
	}
}

func TestPredictNextPeriodStart_ExcludesSelfFromHistory(t *testing.T) {
	t.Parallel()

	record := makeRecord("r4", "2026-03-26")
	history := []models.CycleRecord{
		makeRecord("r1", "2026-01-01"),
		makeRecord("r2", "2026-01-29"),
		makeRecord("r3", "2026-02-26"),
		record,
	}

	got := PredictNextPeriodStart(record, history, 30)
	if got == nil {
		t.Fatal("expected a prediction")
	}
	if want := "2026-04-23"; got.Format("2006-01-02") != want {
		t.Fatalf("expected self-exclusive prediction %s, got %s", want, got.Format("2006-01-02"))
	}
}

func TestPredictNextPeriodStart_ImplausibleGapsFallThrough(t *testing.T) {
	t.Parallel()

	// Gaps of 60 and 5 days are both outside the trusted range, so the
	// averaging path yields nothing and the fallback chain applies.
	history := []models.CycleRecord{
		makeRecord("r1", "2026-01-01"),
		makeRecord("r2", "2026-03-02"),
		makeRecord("r3", "2026-03-07"),
	}
	record := makeRecord("r4", "2026-04-01")
	record.CycleLength = 30

	got := PredictNextPeriodStart(record, history, 35)
	if got == nil {
		t.Fatal("expected a prediction")
	}
	if want := "2026-05-01"; got.Format("2006-01-02") != want {
		t.Fatalf("expected own cycle length fallback %s, got %s", want, got.Format("2006-01-02"))
	}
}

func TestPredictNextPeriodStart_FallbackChain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name               string
		recordCycleLength  int
		profileCycleLength int
		want               string
	}{
		{name: "own length", recordCycleLength: 30, profileCycleLength: 32, want: "2026-03-31"},
		{name: "profile length", recordCycleLength: 0, profileCycleLength: 32, want: "2026-04-02"},
		{name: "implausible own falls to profile", recordCycleLength: 90, profileCycleLength: 32, want: "2026-04-02"},
		{name: "global default", recordCycleLength: 0, profileCycleLength: 0, want: "2026-03-29"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			record := makeRecord("r1", "2026-03-01")
			record.CycleLength = testCase.recordCycleLength

			got := PredictNextPeriodStart(record, nil, testCase.profileCycleLength)
			if got == nil {
				t.Fatal("expected a prediction")
			}
			if got.Format("2006-01-02") != testCase.want {
				t.Fatalf("expected %s, got %s", testCase.want, got.Format("2006-01-02"))
			}
		})
	}
}
