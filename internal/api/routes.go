package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	owners := api.Group("/owners/:ownerID")

	owners.Get("/profile", handler.GetProfile)
	owners.Put("/profile", handler.UpdateProfile)

	cycles := owners.Group("/cycles")
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Patch("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	wellness := owners.Group("/wellness")
	wellness.Get("", handler.ListWellness)
	wellness.Post("", handler.UpsertWellness)

	analytics := owners.Group("/analytics")
	analytics.Get("/cycle", handler.GetCycleAnalysis)
	analytics.Get("/insights", handler.GetCycleInsights)
	analytics.Get("/symptom-patterns", handler.GetSymptomPatterns)
	analytics.Get("/wellness-correlation", handler.GetWellnessCorrelation)
}
