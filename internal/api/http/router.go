package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-records/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Staff      *handlers.StaffHandler
	PublicRoot string
}

// RegisterRoutes wires HTTP routes. The /staff/new route is registered
// before /staff/:staffId so the literal segment wins.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	if cfg.PublicRoot != "" {
		app.Static("/uploads", cfg.PublicRoot+"/uploads")
	}

	staff := app.Group("/staff")
	staff.Get("/", cfg.Staff.List)
	staff.Get("/new", cfg.Staff.New)
	staff.Post("/", cfg.Staff.Create)
	staff.Get("/:staffId", cfg.Staff.Detail)
	staff.Get("/:staffId/edit", cfg.Staff.EditForm)
	staff.Post("/:staffId/edit", cfg.Staff.Edit)
	staff.Get("/:staffId/delete", cfg.Staff.DeleteConfirm)
	staff.Post("/:staffId/delete", cfg.Staff.Delete)
}
