package services

import (
	"math"
	"time"

	"github.com/selene-health/selene/internal/models"
)

const regularityWindow = 6

type RegularityAnalysis struct {
	AverageCycle          *float64   `json:"average_cycle"`
	RegularityScore       *float64   `json:"regularity_score"`
	CycleVariations       []int      `json:"cycle_variations"`
	PredictionReliability *float64   `json:"prediction_reliability"`
	NextPredictedDate     *time.Time `json:"next_predicted_date"`
}

// AnalyzeCycleRegularity scores how consistent the owner's recent cycles
// are. With fewer than two records every numeric output is null; the next
// predicted date is still resolved. The analysis never fails: when the
// arithmetic cannot be trusted it degrades to a zero-valued result instead
// of surfacing an error, because analytics are advisory.
func AnalyzeCycleRegularity(history []models.CycleRecord, profileCycleLength int) RegularityAnalysis {
	analysis := RegularityAnalysis{CycleVariations: []int{}}

	recordsDesc := recentWindow(SortRecordsNewestFirst(history), regularityWindow)
	if len(recordsDesc) > 0 {
		analysis.NextPredictedDate = resolveNextPredictedDate(recordsDesc[0], history, profileCycleLength)
	}
	if len(recordsDesc) < 2 {
		return analysis
	}

	deltas := consecutiveDeltas(recordsDesc)
	average := meanInts(deltas)
	averageRounded := roundTo1(average)
	analysis.AverageCycle = &averageRounded

	if average <= 0 {
		return degradedAnalysis(analysis)
	}

	std := sampleStdDev(deltas)
	var score float64
	switch {
	case std == 0:
		score = 100
	case std <= 1:
		score = 90 + std*10
	default:
		score = clampFloat(100-(std/average*100), 0, 100)
	}

	reliability := score * (math.Min(float64(len(recordsDesc)), regularityWindow) / regularityWindow)

	scoreRounded := roundTo1(score)
	reliabilityRounded := roundTo1(reliability)
	analysis.RegularityScore = &scoreRounded
	analysis.PredictionReliability = &reliabilityRounded
	analysis.CycleVariations = cycleVariations(recordsDesc, average)
	return analysis
}

// cycleVariations walks an expected start date backward from the newest
// record by the fractional average cycle and reports each record's
// absolute drift from it in whole days.
func cycleVariations(recordsDesc []models.CycleRecord, averageCycle float64) []int {
	const secondsPerDay = 86400.0

	variations := make([]int, 0, len(recordsDesc))
	expected := float64(dateOnly(recordsDesc[0].StartDate).Unix())
	for _, record := range recordsDesc {
		actual := float64(dateOnly(record.StartDate).Unix())
		driftDays := math.Abs(expected-actual) / secondsPerDay
		variations = append(variations, int(math.Round(driftDays)))
		expected = actual - averageCycle*secondsPerDay
	}
	return variations
}

func degradedAnalysis(analysis RegularityAnalysis) RegularityAnalysis {
	zero := 0.0
	analysis.RegularityScore = &zero
	analysis.PredictionReliability = &zero
	analysis.CycleVariations = []int{}
	return analysis
}

func resolveNextPredictedDate(latest models.CycleRecord, history []models.CycleRecord, profileCycleLength int) *time.Time {
	if latest.NextPeriodStartDate != nil {
		next := dateOnly(*latest.NextPeriodStartDate)
		return &next
	}
	return PredictNextPeriodStart(latest, history, profileCycleLength)
}
