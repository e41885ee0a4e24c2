package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

// PMS here is the broad pre-menstrual bucket of the correlator; the
// classifier's "Late Luteal (PMS)" label is a presentation refinement of
// the same days.
const PhasePMS = "PMS"

type PhaseWellnessAverages struct {
	AvgMood     float64 `json:"avg_mood"`
	AvgEnergy   float64 `json:"avg_energy"`
	AvgStress   float64 `json:"avg_stress"`
	AvgPain     float64 `json:"avg_pain"`
	AvgSleep    float64 `json:"avg_sleep"`
	AvgAnxiety  float64 `json:"avg_anxiety"`
	SampleCount int     `json:"sample_count"`
}

type WellnessCorrelation struct {
	PhaseCorrelations map[string]PhaseWellnessAverages `json:"phase_correlations"`
	Insights          []string                         `json:"insights"`
	DataRangeDays     int                              `json:"data_range_days"`
}

// CorrelateWellnessByPhase buckets wellness logs by the cycle phase each
// day fell in and averages the metrics per phase. Phases without samples
// are omitted entirely rather than zero-filled.
func CorrelateWellnessByPhase(history []models.CycleRecord, logs []models.WellnessLog) WellnessCorrelation {
	recordsDesc := recentWindow(SortRecordsNewestFirst(history), regularityWindow)

	buckets := make(map[string][]models.WellnessLog)
	for _, entry := range logs {
		phase := DetermineWellnessPhase(dateOnly(entry.Date), recordsDesc)
		if phase == "" {
			continue
		}
		buckets[phase] = append(buckets[phase], entry)
	}

	correlations := make(map[string]PhaseWellnessAverages, len(buckets))
	for phase, entries := range buckets {
		correlations[phase] = averageWellness(entries)
	}

	return WellnessCorrelation{
		PhaseCorrelations: correlations,
		Insights:          buildWellnessInsights(correlations),
		DataRangeDays:     wellnessDataRangeDays(logs),
	}
}

// DetermineWellnessPhase re-derives the phase for a single day against the
// cycle record it falls under, walking the history newest first.
func DetermineWellnessPhase(day time.Time, recordsDesc []models.CycleRecord) string {
	for _, record := range recordsDesc {
		start := dateOnly(record.StartDate)
		if start.After(day) {
			continue
		}

		daysSinceStart := daysBetween(start, day)
		cycleLength := record.TrustedCycleLength()
		switch {
		case daysSinceStart <= 5:
			return PhaseMenstrual
		case daysSinceStart <= 13:
			return PhaseFollicular
		case daysSinceStart <= 16:
			return PhaseOvulation
		case daysSinceStart <= cycleLength-4:
			return PhaseLuteal
		case daysSinceStart <= cycleLength:
			return PhasePMS
		}

		if record.NextPeriodStartDate != nil {
			next := dateOnly(*record.NextPeriodStartDate)
			if day.Before(next) && daysBetween(day, next) <= 3 {
				return PhasePMS
			}
		}
	}
	return ""
}

func averageWellness(entries []models.WellnessLog) PhaseWellnessAverages {
	averages := PhaseWellnessAverages{SampleCount: len(entries)}
	if len(entries) == 0 {
		return averages
	}

	var mood, energy, stress, pain, sleep, anxiety float64
	for _, entry := range entries {
		mood += float64(entry.MoodLevel)
		energy += float64(entry.EnergyLevel)
		stress += float64(entry.StressLevel)
		pain += float64(entry.PainLevel)
		sleep += entry.SleepHours
		anxiety += float64(entry.AnxietyLevel)
	}

	count := float64(len(entries))
	averages.AvgMood = roundTo1(mood / count)
	averages.AvgEnergy = roundTo1(energy / count)
	averages.AvgStress = roundTo1(stress / count)
	averages.AvgPain = roundTo1(pain / count)
	averages.AvgSleep = roundTo1(sleep / count)
	averages.AvgAnxiety = roundTo1(anxiety / count)
	return averages
}

// buildWellnessInsights compares phase averages; every comparison is
// best-effort and skipped when its metric has no samples.
func buildWellnessInsights(correlations map[string]PhaseWellnessAverages) []string {
	insights := make([]string, 0)
	if len(correlations) == 0 {
		return insights
	}

	phases := make([]string, 0, len(correlations))
	for phase := range correlations {
		phases = append(phases, phase)
	}
	sort.Strings(phases)

	lowestEnergyPhase := phases[0]
	highestStressPhase := phases[0]
	bestMoodPhase := phases[0]
	highestPainPhase := phases[0]
	bestSleepPhase := phases[0]
	worstSleepPhase := phases[0]
	for _, phase := range phases[1:] {
		data := correlations[phase]
		if data.AvgEnergy < correlations[lowestEnergyPhase].AvgEnergy {
			lowestEnergyPhase = phase
		}
		if data.AvgStress > correlations[highestStressPhase].AvgStress {
			highestStressPhase = phase
		}
		if data.AvgMood > correlations[bestMoodPhase].AvgMood {
			bestMoodPhase = phase
		}
		if data.AvgPain > correlations[highestPainPhase].AvgPain {
			highestPainPhase = phase
		}
		if data.AvgSleep > correlations[bestSleepPhase].AvgSleep {
			bestSleepPhase = phase
		}
		if data.AvgSleep < correlations[worstSleepPhase].AvgSleep {
			worstSleepPhase = phase
		}
	}

	insights = append(insights, fmt.Sprintf("Your energy is typically lowest during %s phase (%.1f/10)",
		lowestEnergyPhase, correlations[lowestEnergyPhase].AvgEnergy))

	if correlations[highestStressPhase].AvgStress >= 3 {
		insights = append(insights, fmt.Sprintf("Stress levels peak during %s phase (%.1f/5)",
			highestStressPhase, correlations[highestStressPhase].AvgStress))
	}

	insights = append(insights, fmt.Sprintf("Your mood is typically best during %s phase (%.1f/10)",
		bestMoodPhase, correlations[bestMoodPhase].AvgMood))

	if correlations[highestPainPhase].AvgPain >= 4 {
		insights = append(insights, fmt.Sprintf("Pain levels are highest during %s phase (%.1f/10)",
			highestPainPhase, correlations[highestPainPhase].AvgPain))
	}

	sleepGap := correlations[bestSleepPhase].AvgSleep - correlations[worstSleepPhase].AvgSleep
	if sleepGap >= 1 {
		insights = append(insights, fmt.Sprintf("You sleep %.1f hours more during %s than %s",
			sleepGap, bestSleepPhase, worstSleepPhase))
	}

	return insights
}

func wellnessDataRangeDays(logs []models.WellnessLog) int {
	if len(logs) < 2 {
		return 0
	}

	newest := dateOnly(logs[0].Date)
	oldest := newest
	for _, entry := range logs[1:] {
		day := dateOnly(entry.Date)
		if day.After(newest) {
			newest = day
		}
		if day.Before(oldest) {
			oldest = day
		}
	}
	return daysBetween(oldest, newest)
}
