package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/selene-health/selene/internal/models"
)

const symptomPatternWindow = 10

// commonSymptoms is the fixed catalog matched against free-text symptom
// tags. Matching is a case-insensitive substring test per tag, so "severe
// cramps" still counts toward "cramps".
var commonSymptoms = []string{
	"cramps", "headache", "bloating", "fatigue", "mood swings",
	"back pain", "nausea", "breast tenderness", "acne", "anxiety",
	"irritability", "food cravings", "insomnia",
}

type SymptomFrequency struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type SymptomPatterns struct {
	SymptomFrequency map[string]SymptomFrequency `json:"symptom_frequency"`
	CyclesAnalyzed   int                         `json:"cycles_analyzed"`
	Insights         []string                    `json:"insights"`
}

// BuildSymptomPatterns counts catalog symptoms across the ten most recent
// symptomatic records. Percentages are relative to the analyzed window, not
// the owner's full history.
func BuildSymptomPatterns(history []models.CycleRecord) SymptomPatterns {
	patterns := SymptomPatterns{
		SymptomFrequency: map[string]SymptomFrequency{},
		Insights:         []string{},
	}

	symptomatic := make([]models.CycleRecord, 0, symptomPatternWindow)
	for _, record := range SortRecordsNewestFirst(history) {
		if !record.HasSymptoms() {
			continue
		}
		symptomatic = append(symptomatic, record)
		if len(symptomatic) == symptomPatternWindow {
			break
		}
	}
	patterns.CyclesAnalyzed = len(symptomatic)
	if len(symptomatic) == 0 {
		return patterns
	}

	type rankedSymptom struct {
		name  string
		count int
	}
	ranked := make([]rankedSymptom, 0, len(commonSymptoms))
	for _, symptom := range commonSymptoms {
		count := 0
		for _, record := range symptomatic {
			if matchesSymptom(record, symptom) {
				count++
			}
		}
		if count == 0 {
			continue
		}
		ranked = append(ranked, rankedSymptom{name: symptom, count: count})
		patterns.SymptomFrequency[symptom] = SymptomFrequency{
			Count:      count,
			Percentage: roundTo1(float64(count) / float64(len(symptomatic)) * 100),
		}
	}

	// Stable sort keeps catalog order for equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > 0 {
		mostCommon := ranked[0]
		patterns.Insights = append(patterns.Insights,
			fmt.Sprintf("Your most common symptom is %s (%.1f%% of cycles)",
				mostCommon.name, patterns.SymptomFrequency[mostCommon.name].Percentage))

		if len(ranked) >= 3 {
			topThree := []string{ranked[0].name, ranked[1].name, ranked[2].name}
			patterns.Insights = append(patterns.Insights,
				fmt.Sprintf("Top symptoms: %s", strings.Join(topThree, ", ")))
		}
	}

	return patterns
}

func matchesSymptom(record models.CycleRecord, symptom string) bool {
	for _, tag := range record.SymptomTags() {
		if strings.Contains(strings.ToLower(tag), symptom) {
			return true
		}
	}
	return false
}
