// handlers/teams.go - Team HTTP Handlers
package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"teamplay/models"
	"teamplay/services"
)

// TeamStore is what the team handlers need from the team service.
type TeamStore interface {
	SaveTeams(groups []services.TeamGroup) ([]models.Team, error)
	GetTeams(date string) ([]models.Team, error)
	GetTeamByID(id uint) (*models.Team, error)
	DeleteTeam(id uint) error
	DeleteTeamsByDate(date string) (int64, error)
}

var teamStore TeamStore

// InitTeamHandlers wires the team handlers to their store.
func InitTeamHandlers(store TeamStore) {
	teamStore = store
}

// SaveTeams bulk-creates client-generated team groupings.
// POST /teams
func SaveTeams(c *fiber.Ctx) error {
	var groups []services.TeamGroup
	if err := parseBody(c, &groups); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	teams, err := teamStore.SaveTeams(groups)
	if err != nil {
		return failFrom(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(teams)
}

// GetTeams lists teams newest first, optionally restricted to one day.
// GET /teams?date=YYYY-MM-DD
func GetTeams(c *fiber.Ctx) error {
	teams, err := teamStore.GetTeams(c.Query("date"))
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(teams)
}

// GetTeamByID fetches one team, expanded.
// GET /teams/:id
func GetTeamByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}

	team, err := teamStore.GetTeamByID(id)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(team)
}

// DeleteTeam removes one team.
// DELETE /teams/:id
func DeleteTeam(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}

	if err := teamStore.DeleteTeam(id); err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": msgTeamDeleted})
}

// DeleteTeamsByDate removes every team created on the given day. The date is
// checked here so a missing parameter never reaches the store.
// DELETE /teams/by-date
func DeleteTeamsByDate(c *fiber.Ctx) error {
	var req struct {
		Date string `json:"date"`
	}
	if err := parseBody(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if req.Date == "" {
		return fail(c, fiber.StatusBadRequest, msgDateRequired)
	}

	deleted, err := teamStore.DeleteTeamsByDate(req.Date)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      fmt.Sprintf("%d teams deleted successfully", deleted),
		"deletedCount": deleted,
	})
}
