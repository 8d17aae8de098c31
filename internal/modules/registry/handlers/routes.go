package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the chart API on app
func RegisterRoutes(app *fiber.App, chart *ChartHandler, health *HealthHandler) {
	app.Get("/health", health.GetHealth)

	c := app.Group("/charts")
	c.Get("/fields", chart.GetFields)
	c.Get("/types", chart.GetTypes)
	c.Post("/request", chart.BuildRequest)
	c.Post("/render", chart.Render)
	c.Post("/export", chart.Export)
	c.Get("/data", chart.GetData)
	c.Get("/correlation", chart.GetCorrelation)
	c.Get("/audit", chart.GetAudit)
}
