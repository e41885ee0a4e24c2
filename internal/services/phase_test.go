package services

import (
	"testing"

	"github.com/selene-health/selene/internal/models"
)

func TestClassifyCyclePhase_UnknownWithoutStartDate(t *testing.T) {
	t.Parallel()

	status := ClassifyCyclePhase(mustParseDay("2026-03-10"), models.CycleRecord{})
	if status.Phase != PhaseUnknown {
		t.Fatalf("expected phase %q, got %q", PhaseUnknown, status.Phase)
	}
	if status.CycleDay != nil || status.CurrentDayOfPeriod != nil {
		t.Fatal("expected no cycle or period day without a start date")
	}
}

func TestClassifyCyclePhase_MenstrualOnStartDate(t *testing.T) {
	t.Parallel()

	latest := makeRecordWithEnd("r1", "2026-03-01", "2026-03-06")
	status := ClassifyCyclePhase(mustParseDay("2026-03-01"), latest)

	if !status.IsOnPeriod {
		t.Fatal("expected the start date to count as on period")
	}
	if status.Phase != PhaseMenstrual {
		t.Fatalf("expected phase %q, got %q", PhaseMenstrual, status.Phase)
	}
	if status.CurrentDayOfPeriod == nil || *status.CurrentDayOfPeriod != 1 {
		t.Fatalf("expected period day 1, got %v", status.CurrentDayOfPeriod)
	}
	if status.IsFertileWindow {
		t.Fatal("menstrual phase must not be fertile")
	}
}

func TestClassifyCyclePhase_OngoingPeriodWithoutEndDate(t *testing.T) {
	t.Parallel()

	latest := makeRecord("r1", "2026-03-01")
	status := ClassifyCyclePhase(mustParseDay("2026-03-09"), latest)

	if !status.IsOnPeriod {
		t.Fatal("expected a record without end information to count as ongoing")
	}
	if status.CurrentDayOfPeriod == nil || *status.CurrentDayOfPeriod != 9 {
		t.Fatalf("expected period day 9, got %v", status.CurrentDayOfPeriod)
	}
}

func TestClassifyCyclePhase_PhaseWindows(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		today       string
		wantPhase   string
		wantFertile bool
	}{
		{name: "follicular", today: "2026-03-10", wantPhase: PhaseFollicular},
		{name: "follicular upper edge", today: "2026-03-13", wantPhase: PhaseFollicular},
		{name: "ovulation midpoint", today: "2026-03-14", wantPhase: PhaseOvulation, wantFertile: true},
		{name: "ovulation upper edge", today: "2026-03-15", wantPhase: PhaseOvulation, wantFertile: true},
		{name: "fertile window tail", today: "2026-03-16", wantPhase: PhaseFertileWindow, wantFertile: true},
		{name: "luteal", today: "2026-03-20", wantPhase: PhaseLuteal},
		{name: "late luteal pms", today: "2026-03-25", wantPhase: PhaseLateLuteal},
	}

	latest := makeRecordWithEnd("r1", "2026-03-01", "2026-03-06")
	latest.CycleLength = 28

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			status := ClassifyCyclePhase(mustParseDay(testCase.today), latest)
			if status.Phase != testCase.wantPhase {
				t.Fatalf("expected phase %q, got %q", testCase.wantPhase, status.Phase)
			}
			if status.IsFertileWindow != testCase.wantFertile {
				t.Fatalf("expected fertile=%v, got %v", testCase.wantFertile, status.IsFertileWindow)
			}
		})
	}
}

func TestClassifyCyclePhase_DaysUntilNextPeriod(t *testing.T) {
	t.Parallel()

	latest := makeRecordWithEnd("r1", "2026-03-01", "2026-03-06")
	latest.NextPeriodStartDate = dayPtr("2026-03-29")

	status := ClassifyCyclePhase(mustParseDay("2026-03-20"), latest)
	if status.DaysUntilNextPeriod == nil || *status.DaysUntilNextPeriod != 9 {
		t.Fatalf("expected 9 days until next period, got %v", status.DaysUntilNextPeriod)
	}
}

func TestClassifyCyclePhase_RolloverPastPredictedStart(t *testing.T) {
	t.Parallel()

	latest := makeRecordWithEnd("r1", "2026-03-01", "2026-03-06")
	latest.CycleLength = 28
	latest.NextPeriodStartDate = dayPtr("2026-03-29")

	status := ClassifyCyclePhase(mustParseDay("2026-03-30"), latest)
	if status.CycleDay == nil || *status.CycleDay != 2 {
		t.Fatalf("expected cycle day to roll over to 2, got %v", status.CycleDay)
	}
}

func TestClassifyCyclePhase_ImplausibleCycleLengthUsesDefault(t *testing.T) {
	t.Parallel()

	latest := makeRecordWithEnd("r1", "2026-03-01", "2026-03-06")
	latest.CycleLength = 90

	status := ClassifyCyclePhase(mustParseDay("2026-03-14"), latest)
	if status.CycleLength != models.DefaultCycleLength {
		t.Fatalf("expected default cycle length %d, got %d", models.DefaultCycleLength, status.CycleLength)
	}
	if status.Phase != PhaseOvulation {
		t.Fatalf("expected phase %q under the default length, got %q", PhaseOvulation, status.Phase)
	}
}
