package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) GetCycleAnalysis(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}
	today, err := handler.referenceDate(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	records, err := handler.repositories.Cycles.ListByOwner(ownerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle records")
	}
	if len(records) == 0 {
		return apiError(c, fiber.StatusNotFound, "no cycle records found")
	}

	profile, err := handler.profileService.Get(ownerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load owner profile")
	}

	analysis := services.AnalyzeCycleRegularity(records, profile.CycleLength)
	status := services.ClassifyCyclePhase(today, records[0])

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"average_cycle":          analysis.AverageCycle,
			"regularity_score":       analysis.RegularityScore,
			"cycle_variations":       analysis.CycleVariations,
			"prediction_reliability": analysis.PredictionReliability,
			"next_predicted_date":    analysis.NextPredictedDate,
			"current_status":         status,
		},
	})
}

func (handler *Handler) GetCycleInsights(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	records, err := handler.repositories.Cycles.ListByOwner(ownerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle records")
	}
	if len(records) < 2 {
		return apiError(c, fiber.StatusNotFound, "need at least 2 cycle records for insights")
	}

	profile, err := handler.profileService.Get(ownerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load owner profile")
	}

	analysis := services.AnalyzeCycleRegularity(records, profile.CycleLength)
	reliability := 0.0
	if analysis.PredictionReliability != nil {
		reliability = *analysis.PredictionReliability
	}
	insights := services.BuildCycleInsights(records, reliability)

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"insights":              insights.Insights,
			"warnings":              insights.Warnings,
			"cycles_analyzed":       len(records),
			"prediction_confidence": reliability,
		},
	})
}

func (handler *Handler) GetSymptomPatterns(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	profile, err := handler.profileService.Get(ownerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load owner profile")
	}
	if !profile.TracksCycles() {
		return apiError(c, fiber.StatusForbidden, "symptom analysis is only available for female owners")
	}

	records, err := handler.repositories.Cycles.ListByOwner(ownerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle records")
	}

	patterns := services.BuildSymptomPatterns(records)
	if patterns.CyclesAnalyzed == 0 {
		return apiError(c, fiber.StatusNotFound, "no symptom data found")
	}
	return c.JSON(fiber.Map{"status": "success", "data": patterns})
}

const correlationLogWindow = 90

func (handler *Handler) GetWellnessCorrelation(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	records, err := handler.repositories.Cycles.ListRecentByOwner(ownerID, 6)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle records")
	}
	logs, err := handler.repositories.Wellness.ListRecentByOwner(ownerID, correlationLogWindow)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load wellness logs")
	}
	if len(records) == 0 || len(logs) == 0 {
		return apiError(c, fiber.StatusNotFound, "insufficient data for correlation analysis")
	}

	correlation := services.CorrelateWellnessByPhase(records, logs)
	return c.JSON(fiber.Map{"status": "success", "data": correlation})
}
