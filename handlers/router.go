// handlers/router.go - Route registration
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every endpoint on the app. /teams/by-date must be
// registered before /teams/:id so the literal segment wins the match.
func RegisterRoutes(app *fiber.App, appEnv string) {
	app.Get("/players", GetPlayers)
	app.Post("/players", AddPlayer)
	app.Put("/players/:id", UpdatePlayer)
	app.Delete("/players/:id", DeletePlayer)
	app.Put("/players/:id/toggle-captain", ToggleCaptain)
	app.Put("/players/:id/team-name", SetTeamName)

	app.Post("/teams", SaveTeams)
	app.Get("/teams", GetTeams)
	app.Delete("/teams/by-date", DeleteTeamsByDate)
	app.Get("/teams/:id", GetTeamByID)
	app.Delete("/teams/:id", DeleteTeam)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":      "healthy",
			"environment": appEnv,
			"timestamp":   time.Now().Unix(),
		})
	})

	// Catch-all for unmatched routes.
	app.Use(func(c *fiber.Ctx) error {
		return fail(c, fiber.StatusNotFound, msgRouteNotFound)
	})
}
