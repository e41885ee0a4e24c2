package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	records, err := handler.repositories.Cycles.ListByOwner(ownerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle records")
	}
	return c.JSON(fiber.Map{"cycles": records})
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	record, err := parseCycleInput(c, handler.location, true)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	record.OwnerID = ownerID

	if err := handler.cycleService.SaveRecord(&record); err != nil {
		return cycleSaveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}
	recordID := strings.TrimSpace(c.Params("id"))
	if recordID == "" {
		return apiError(c, fiber.StatusBadRequest, "record id is required")
	}

	existing, err := handler.repositories.Cycles.FindByOwnerAndID(ownerID, recordID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "cycle record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle record")
	}

	patch, err := parseCycleInput(c, handler.location, false)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if !patch.StartDate.IsZero() {
		existing.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		existing.EndDate = patch.EndDate
	}
	if patch.Symptoms != "" {
		existing.Symptoms = patch.Symptoms
	}
	if patch.Medication != "" {
		existing.Medication = patch.Medication
	}
	if patch.CycleLength != 0 {
		existing.CycleLength = patch.CycleLength
	}
	if patch.PeriodDuration != 0 {
		existing.PeriodDuration = patch.PeriodDuration
	}

	if err := handler.cycleService.SaveRecord(&existing); err != nil {
		return cycleSaveError(c, err)
	}
	return c.JSON(existing)
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}
	recordID := strings.TrimSpace(c.Params("id"))
	if recordID == "" {
		return apiError(c, fiber.StatusBadRequest, "record id is required")
	}

	if err := handler.cycleService.DeleteRecord(ownerID, recordID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "cycle record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete cycle record")
	}
	return c.JSON(fiber.Map{"success": true, "message": "cycle record deleted"})
}

func cycleSaveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPolicyViolation):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrMissingStartDate),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrDuplicateStartDate),
		errors.Is(err, services.ErrMissingOwner):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle record")
	}
}
