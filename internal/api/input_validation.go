package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
)

var (
	errMissingStartDate      = errors.New("start_date is required")
	errInvalidStartDate      = errors.New("start_date must be YYYY-MM-DD")
	errInvalidEndDate        = errors.New("end_date must be YYYY-MM-DD")
	errInvalidPeriodDuration = errors.New("period_duration must be between 2 and 10 days")
	errInvalidDate           = errors.New("date must be YYYY-MM-DD")
	errInvalidSex            = errors.New("unsupported sex value")
)

// parseCycleInput is the input-validation boundary for cycle writes.
// Period duration is validated into its physiological range here; cycle
// length overrides are accepted as-is because downstream logic clamps
// before trusting them.
func parseCycleInput(c *fiber.Ctx, location *time.Location, requireStart bool) (models.CycleRecord, error) {
	payload := cyclePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return models.CycleRecord{}, err
	}

	record := models.CycleRecord{
		Symptoms:       strings.TrimSpace(payload.Symptoms),
		Medication:     strings.TrimSpace(payload.Medication),
		CycleLength:    payload.CycleLength,
		PeriodDuration: payload.PeriodDuration,
	}

	if strings.TrimSpace(payload.StartDate) == "" {
		if requireStart {
			return models.CycleRecord{}, errMissingStartDate
		}
	} else {
		startDate, err := parseDateValue(payload.StartDate, location)
		if err != nil {
			return models.CycleRecord{}, errInvalidStartDate
		}
		record.StartDate = startDate
	}

	if strings.TrimSpace(payload.EndDate) != "" {
		endDate, err := parseDateValue(payload.EndDate, location)
		if err != nil {
			return models.CycleRecord{}, errInvalidEndDate
		}
		record.EndDate = &endDate
	}

	if payload.PeriodDuration != 0 && !models.IsPlausiblePeriodDuration(payload.PeriodDuration) {
		return models.CycleRecord{}, errInvalidPeriodDuration
	}

	return record, nil
}

func parseWellnessInput(c *fiber.Ctx, location *time.Location, now time.Time) (models.WellnessLog, error) {
	payload := wellnessPayload{EnergyLevel: 5, NutritionQuality: 3}
	if err := c.BodyParser(&payload); err != nil {
		return models.WellnessLog{}, err
	}

	day := now
	if strings.TrimSpace(payload.Date) != "" {
		parsed, err := parseDateValue(payload.Date, location)
		if err != nil {
			return models.WellnessLog{}, errInvalidDate
		}
		day = parsed
	}
	year, month, dayOfMonth := day.Date()
	day = time.Date(year, month, dayOfMonth, 0, 0, 0, 0, location)

	return models.WellnessLog{
		Date:             day,
		StressLevel:      payload.StressLevel,
		SleepHours:       payload.SleepHours,
		MoodLevel:        payload.MoodLevel,
		EnergyLevel:      payload.EnergyLevel,
		PainLevel:        payload.PainLevel,
		ExerciseMinutes:  payload.ExerciseMinutes,
		NutritionQuality: payload.NutritionQuality,
		CaffeineIntake:   payload.CaffeineIntake,
		AlcoholIntake:    payload.AlcoholIntake,
		Smoking:          payload.Smoking,
		AnxietyLevel:     payload.AnxietyLevel,
		FocusLevel:       payload.FocusLevel,
		Notes:            strings.TrimSpace(payload.Notes),
	}, nil
}

func parseProfileInput(c *fiber.Ctx) (profilePayload, error) {
	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return profilePayload{}, err
	}

	payload.Sex = strings.ToLower(strings.TrimSpace(payload.Sex))
	switch payload.Sex {
	case "", models.SexFemale, "male", "none":
	default:
		return profilePayload{}, errInvalidSex
	}
	return payload, nil
}
