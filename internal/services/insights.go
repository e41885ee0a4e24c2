package services

import (
	"fmt"
	"math"

	"github.com/selene-health/selene/internal/models"
)

const insightWindow = 12

type CycleInsights struct {
	Insights []string `json:"insights"`
	Warnings []string `json:"warnings"`
}

// BuildCycleInsights derives trend and anomaly text from the owner's
// recent history. Insights are positive or informative, warnings are
// actionable concerns. Reliability comes from AnalyzeCycleRegularity and
// feeds exactly one confidence line.
func BuildCycleInsights(history []models.CycleRecord, reliability float64) CycleInsights {
	result := CycleInsights{Insights: []string{}, Warnings: []string{}}

	recordsDesc := recentWindow(SortRecordsNewestFirst(history), insightWindow)
	if len(recordsDesc) < 2 {
		return result
	}
	deltas := consecutiveDeltas(recordsDesc)

	if len(recordsDesc) >= 6 {
		recentStd := sampleStdDev(deltas[:3])
		olderStd := sampleStdDev(deltas[3:minInt(6, len(deltas))])
		if recentStd < olderStd-1 {
			result.Insights = append(result.Insights, "Your cycles are becoming more regular")
		} else if recentStd > olderStd+1 {
			result.Warnings = append(result.Warnings, "Your cycles are becoming less regular - consider tracking more factors")
		}
	}

	if len(recordsDesc) >= 3 {
		average := meanInts(deltas)
		latestDelta := float64(deltas[0])
		if deviation := math.Abs(latestDelta - average); deviation > 5 {
			direction := "longer"
			if latestDelta < average {
				direction = "shorter"
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Last cycle was %.0f days %s than your average", deviation, direction))
		}
	}

	trackedSymptoms := 0
	for _, record := range recentWindow(recordsDesc, 3) {
		if record.HasSymptoms() {
			trackedSymptoms++
		}
	}
	if trackedSymptoms >= 2 {
		result.Insights = append(result.Insights,
			fmt.Sprintf("You've tracked symptoms for %d recent periods - great job!", trackedSymptoms))
	}

	durations := make([]int, 0, 3)
	for _, record := range recordsDesc {
		if record.EndDate == nil {
			continue
		}
		durations = append(durations, daysBetween(record.StartDate, *record.EndDate))
		if len(durations) == 3 {
			break
		}
	}
	if len(durations) >= 3 {
		averageDuration := meanInts(durations)
		if averageDuration < 3 {
			result.Warnings = append(result.Warnings,
				"Your periods are shorter than average - consider discussing with a healthcare provider")
		} else if averageDuration > 7 {
			result.Warnings = append(result.Warnings,
				"Your periods are longer than average - consider discussing with a healthcare provider")
		}
	}

	switch {
	case reliability >= 80:
		result.Insights = append(result.Insights,
			fmt.Sprintf("Period predictions are highly reliable (%.0f%% confidence)", reliability))
	case reliability >= 60:
		result.Insights = append(result.Insights,
			fmt.Sprintf("Period predictions are moderately reliable (%.0f%% confidence)", reliability))
	default:
		result.Insights = append(result.Insights,
			fmt.Sprintf("Track more cycles to improve prediction accuracy (currently %.0f%%)", reliability))
	}

	return result
}

func minInt(a int, b int) int {
	if a < b {
		return a
	}
	return b
}
