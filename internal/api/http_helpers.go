package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func ownerIDParam(c *fiber.Ctx) (string, bool) {
	ownerID := strings.TrimSpace(c.Params("ownerID"))
	return ownerID, ownerID != ""
}

func parseDateValue(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), location)
}

// referenceDate resolves the "today" analytics are computed against. The
// engine never reads a clock; an explicit ?date= pins classification for
// callers and tests, otherwise the server clock is snapshotted here.
func (handler *Handler) referenceDate(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		now := time.Now().In(handler.location)
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, handler.location), nil
	}
	return parseDateValue(raw, handler.location)
}
