package services

import (
	"strings"
	"time"

	"github.com/selene-health/selene/internal/models"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func makeRecord(id string, start string) models.CycleRecord {
	return models.CycleRecord{
		ID:        id,
		OwnerID:   "owner-1",
		StartDate: mustParseDay(start),
	}
}

func makeRecordWithEnd(id string, start string, end string) models.CycleRecord {
	record := makeRecord(id, start)
	endDate := mustParseDay(end)
	record.EndDate = &endDate
	return record
}

func dayPtr(raw string) *time.Time {
	day := mustParseDay(raw)
	return &day
}

func containsText(haystack []string, needle string) bool {
	for _, item := range haystack {
		if strings.Contains(item, needle) {
			return true
		}
	}
	return false
}
