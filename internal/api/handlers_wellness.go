package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListWellness(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	var from, to *time.Time
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		parsed, err := parseDateValue(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "from must be YYYY-MM-DD")
		}
		from = &parsed
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		parsed, err := parseDateValue(raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "to must be YYYY-MM-DD")
		}
		end := parsed.AddDate(0, 0, 1)
		to = &end
	}

	logs, err := handler.repositories.Wellness.ListByOwnerRange(ownerID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load wellness logs")
	}
	return c.JSON(fiber.Map{"wellness_logs": logs})
}

// UpsertWellness stores the owner's wellness entry for a day; logging the
// same day twice replaces the first entry.
func (handler *Handler) UpsertWellness(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	entry, err := parseWellnessInput(c, handler.location, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	entry.OwnerID = ownerID

	if err := handler.repositories.Wellness.Upsert(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save wellness log")
	}
	return c.JSON(entry)
}
