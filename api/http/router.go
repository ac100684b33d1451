package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akunal1/smart-resume-backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, assistant *handlers.AssistantHandler, summary *handlers.SummaryHandler, scheduling *handlers.SchedulingHandler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	a := api.Group("/assistant")
	a.Post("/ask", assistant.Ask)
	a.Get("/download", assistant.Download)

	api.Post("/ai/summary", summary.Summarize)

	api.Post("/email", scheduling.Email)
	api.Post("/meetings", scheduling.Meeting)
	api.Post("/contact", scheduling.Contact)
}
