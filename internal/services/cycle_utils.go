package services

import (
	"math"
	"sort"
	"time"

	"github.com/selene-health/selene/internal/models"
)

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func sameDay(a time.Time, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func daysBetween(from time.Time, to time.Time) int {
	return int(math.Round(dateOnly(to).Sub(dateOnly(from)).Hours() / 24))
}

// SortRecordsNewestFirst returns a copy sorted descending by start date.
// Callers must not assume store ordering; the engine always sorts
// explicitly.
func SortRecordsNewestFirst(records []models.CycleRecord) []models.CycleRecord {
	sorted := make([]models.CycleRecord, 0, len(records))
	sorted = append(sorted, records...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	return sorted
}

func recentWindow(recordsDesc []models.CycleRecord, n int) []models.CycleRecord {
	if len(recordsDesc) <= n {
		return recordsDesc
	}
	return recordsDesc[:n]
}

func excludeRecord(records []models.CycleRecord, id string) []models.CycleRecord {
	if id == "" {
		return records
	}
	filtered := make([]models.CycleRecord, 0, len(records))
	for _, record := range records {
		if record.ID != id {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// consecutiveDeltas returns the day gaps between neighbouring start dates
// of a newest-first window, newest gap first.
func consecutiveDeltas(recordsDesc []models.CycleRecord) []int {
	if len(recordsDesc) < 2 {
		return nil
	}
	deltas := make([]int, 0, len(recordsDesc)-1)
	for i := 0; i+1 < len(recordsDesc); i++ {
		deltas = append(deltas, daysBetween(recordsDesc[i+1].StartDate, recordsDesc[i].StartDate))
	}
	return deltas
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

// sampleStdDev returns the sample standard deviation, defined as 0 when
// all values are equal or fewer than two values exist.
func sampleStdDev(values []int) float64 {
	if len(values) < 2 {
		return 0
	}
	allEqual := true
	for _, value := range values[1:] {
		if value != values[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return 0
	}

	mean := meanInts(values)
	var sumSquares float64
	for _, value := range values {
		diff := float64(value) - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}

func roundTo1(value float64) float64 {
	return math.Round(value*10) / 10
}

func clampFloat(value float64, low float64, high float64) float64 {
	return math.Max(low, math.Min(high, value))
}
