package services

import (
	"fmt"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const (
	PhaseMenstrual     = "Menstrual"
	PhaseFollicular    = "Follicular"
	PhaseOvulation     = "Ovulation"
	PhaseFertileWindow = "Fertile Window"
	PhaseLuteal        = "Luteal"
	PhaseLateLuteal    = "Late Luteal (PMS)"
	PhaseUnknown       = "Unknown"
)

type CycleStatus struct {
	IsOnPeriod          bool   `json:"is_on_period"`
	CurrentDayOfPeriod  *int   `json:"current_day_of_period"`
	CycleDay            *int   `json:"cycle_day"`
	Phase               string `json:"phase"`
	PhaseDescription    string `json:"phase_description"`
	DaysUntilNextPeriod *int   `json:"days_until_next_period"`
	IsFertileWindow     bool   `json:"is_fertile_window"`
	CycleLength         int    `json:"cycle_length"`
}

// ClassifyCyclePhase maps a reference date onto the owner's current cycle.
// It is a pure function of the date and the latest record; callers supply
// "today" so classification stays deterministic and testable.
func ClassifyCyclePhase(today time.Time, latest models.CycleRecord) CycleStatus {
	today = dateOnly(today)
	cycleLength := latest.TrustedCycleLength()
	status := CycleStatus{
		Phase:            PhaseUnknown,
		PhaseDescription: "Unable to determine cycle phase",
		CycleLength:      cycleLength,
	}
	if latest.StartDate.IsZero() {
		return status
	}
	start := dateOnly(latest.StartDate)

	periodEnd := time.Time{}
	if latest.EndDate != nil {
		periodEnd = dateOnly(*latest.EndDate)
	} else if latest.PredictedEndDate != nil {
		periodEnd = dateOnly(*latest.PredictedEndDate)
	}
	if !today.Before(start) {
		// A record with no end information counts as an ongoing period.
		status.IsOnPeriod = periodEnd.IsZero() || !today.After(periodEnd)
	}
	if status.IsOnPeriod {
		periodDay := daysBetween(start, today) + 1
		status.CurrentDayOfPeriod = &periodDay
	}

	nextStart := time.Time{}
	if latest.NextPeriodStartDate != nil {
		nextStart = dateOnly(*latest.NextPeriodStartDate)
	}
	if !nextStart.IsZero() {
		daysUntil := daysBetween(today, nextStart)
		status.DaysUntilNextPeriod = &daysUntil
	}

	if today.Before(start) {
		return status
	}

	cycleDay := daysBetween(start, today) + 1
	if cycleDay > cycleLength && !nextStart.IsZero() && !today.Before(nextStart) {
		// The predicted cycle has rolled over; count from its start
		// instead of growing past the cycle length.
		cycleDay = daysBetween(nextStart, today) + 1
	}
	status.CycleDay = &cycleDay

	periodDay := cycleDay
	if status.CurrentDayOfPeriod != nil {
		periodDay = *status.CurrentDayOfPeriod
	}
	status.Phase, status.PhaseDescription, status.IsFertileWindow = determineCyclePhase(
		cycleDay,
		cycleLength,
		status.IsOnPeriod,
		periodDay,
	)
	return status
}

func determineCyclePhase(cycleDay int, cycleLength int, isOnPeriod bool, periodDay int) (string, string, bool) {
	if isOnPeriod {
		return PhaseMenstrual,
			fmt.Sprintf("Day %d of your period. Focus on rest and self-care.", periodDay),
			false
	}

	if cycleDay >= 6 && cycleDay <= 13 {
		return PhaseFollicular,
			fmt.Sprintf("Day %d of your cycle. Energy levels typically increase during this phase.", cycleDay),
			false
	}

	ovulationDay := cycleLength / 2
	if cycleDay >= ovulationDay-1 && cycleDay <= ovulationDay+1 {
		return PhaseOvulation,
			fmt.Sprintf("Day %d of your cycle. You are in your ovulation window.", cycleDay),
			true
	}

	if cycleDay >= ovulationDay-3 && cycleDay <= ovulationDay+2 {
		return PhaseFertileWindow,
			fmt.Sprintf("Day %d of your cycle. You are in your fertile window.", cycleDay),
			true
	}

	if cycleDay > ovulationDay+2 {
		daysToPeriod := cycleLength - cycleDay
		if daysToPeriod <= 3 {
			return PhaseLateLuteal,
				fmt.Sprintf("Day %d of your cycle. PMS symptoms may occur. Period expected in %d days.", cycleDay, daysToPeriod),
				false
		}
		return PhaseLuteal,
			fmt.Sprintf("Day %d of your cycle. Post-ovulation phase.", cycleDay),
			false
	}

	return fmt.Sprintf("Cycle Day %d", cycleDay),
		fmt.Sprintf("Day %d of your cycle.", cycleDay),
		false
}
