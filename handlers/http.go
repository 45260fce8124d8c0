// handlers/http.go - Request parsing and error mapping shared by all handlers
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"teamplay/services"
)

// Response messages, centralized so every handler speaks with one voice.
const (
	msgPlayerNotFound = "Player not found"
	msgTeamNotFound   = "Team not found"
	msgPlayerDeleted  = "Player deleted successfully"
	msgTeamDeleted    = "Team deleted successfully"
	msgInvalidBody    = "Invalid request body"
	msgInvalidID      = "Invalid id"
	msgDateRequired   = "date is required"
	msgStoreFailure   = "Database error"
	msgRouteNotFound  = "Route not found"
)

// parseBody decodes a JSON body strictly: unknown fields are rejected rather
// than silently dropped.
func parseBody(c *fiber.Ctx, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parseID reads the :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// fail writes an error payload with the given status.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// failFrom maps a service error onto the HTTP taxonomy: validation failures
// are 400, missing entities are 404, everything else is a store failure.
func failFrom(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPlayerNotFound):
		return fail(c, fiber.StatusNotFound, msgPlayerNotFound)
	case errors.Is(err, services.ErrTeamNotFound):
		return fail(c, fiber.StatusNotFound, msgTeamNotFound)
	default:
		return fail(c, fiber.StatusInternalServerError, msgStoreFailure)
	}
}
