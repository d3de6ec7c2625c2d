// handlers/life_routes.go
package handlers

import (
	"life-missions-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupLifeRoutes exposes the reference-data surface: life tracks and the
// missions attached to them.
func SetupLifeRoutes(app *fiber.App, lifeService *services.LifeService) {
	app.Get("/lives", lifeService.GetLives)
	app.Get("/lives/:slug", lifeService.GetLifeBySlug)
	app.Get("/lives/:slug/missions", lifeService.GetLifeMissions)

	app.Post("/lives", lifeService.CreateLife)
	app.Post("/missions", lifeService.CreateMission)
}
