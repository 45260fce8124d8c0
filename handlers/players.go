// handlers/players.go - Player HTTP Handlers
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"teamplay/models"
	"teamplay/services"
)

// PlayerStore is what the player handlers need from the player service.
type PlayerStore interface {
	ListPlayers() ([]models.Player, error)
	AddPlayer(in services.PlayerInput) (*models.Player, error)
	UpdatePlayer(id uint, in services.PlayerUpdate) (*models.Player, error)
	DeletePlayer(id uint) error
	ToggleCaptain(id uint) (*models.Player, error)
	SetTeamName(id uint, teamName string) (*models.Player, error)
}

var playerStore PlayerStore

// InitPlayerHandlers wires the player handlers to their store.
func InitPlayerHandlers(store PlayerStore) {
	playerStore = store
}

// GetPlayers lists every player.
// GET /players
func GetPlayers(c *fiber.Ctx) error {
	players, err := playerStore.ListPlayers()
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(players)
}

// AddPlayer creates a player.
// POST /players
func AddPlayer(c *fiber.Ctx) error {
	var in services.PlayerInput
	if err := parseBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	player, err := playerStore.AddPlayer(in)
	if err != nil {
		return failFrom(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(player)
}

// UpdatePlayer applies a partial update.
// PUT /players/:id
func UpdatePlayer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}

	var in services.PlayerUpdate
	if err := parseBody(c, &in); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	player, err := playerStore.UpdatePlayer(id, in)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(player)
}

// DeletePlayer removes a player.
// DELETE /players/:id
func DeletePlayer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}

	if err := playerStore.DeletePlayer(id); err != nil {
		return failFrom(c, err)
	}
	return c.JSON(fiber.Map{"message": msgPlayerDeleted})
}

// ToggleCaptain flips the captain flag.
// PUT /players/:id/toggle-captain
func ToggleCaptain(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}

	player, err := playerStore.ToggleCaptain(id)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(player)
}

// SetTeamName overwrites the player's teamName field.
// PUT /players/:id/team-name
func SetTeamName(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidID)
	}

	var req struct {
		TeamName *string `json:"teamName"`
	}
	if err := parseBody(c, &req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if req.TeamName == nil {
		return fail(c, fiber.StatusBadRequest, "teamName is required")
	}

	player, err := playerStore.SetTeamName(id, *req.TeamName)
	if err != nil {
		return failFrom(c, err)
	}
	return c.JSON(player)
}
