package services

import (
	"math"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const predictionWindow = 6

// PredictNextPeriodStart estimates when the cycle after the given record
// begins. With three or more other records it averages the plausible day
// gaps of the recent window; otherwise it walks the fallback chain: the
// record's own cycle length, the owner's profile default, then 28 days.
// A window whose gaps are all implausible is distrusted entirely rather
// than partially averaged.
//
// The result is nil only when the record has no start date.
func PredictNextPeriodStart(record models.CycleRecord, history []models.CycleRecord, profileCycleLength int) *time.Time {
	if record.StartDate.IsZero() {
		return nil
	}
	start := dateOnly(record.StartDate)

	recent := recentWindow(SortRecordsNewestFirst(excludeRecord(history, record.ID)), predictionWindow)
	if len(recent) >= 3 {
		validDeltas := make([]int, 0, len(recent)-1)
		for _, delta := range consecutiveDeltas(recent) {
			if models.IsPlausibleCycleLength(delta) {
				validDeltas = append(validDeltas, delta)
			}
		}
		if len(validDeltas) > 0 {
			smartCycle := int(math.Round(meanInts(validDeltas)))
			next := start.AddDate(0, 0, smartCycle)
			return &next
		}
	}

	cycle := models.DefaultCycleLength
	switch {
	case models.IsPlausibleCycleLength(record.CycleLength):
		cycle = record.CycleLength
	case models.IsPlausibleCycleLength(profileCycleLength):
		cycle = profileCycleLength
	}

	next := start.AddDate(0, 0, cycle)
	return &next
}
