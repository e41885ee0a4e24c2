package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	profile, err := handler.profileService.Get(ownerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load owner profile")
	}
	return c.JSON(profile)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	ownerID, ok := ownerIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "owner id is required")
	}

	payload, err := parseProfileInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	profile, err := handler.profileService.Update(ownerID, payload.Sex, payload.CycleLength, payload.PeriodDuration)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update owner profile")
	}
	return c.JSON(profile)
}
