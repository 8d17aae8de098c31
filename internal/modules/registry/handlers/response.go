package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/registry-chart-api/internal/modules/registry/services"
)

// Every JSON response uses the {"success": bool, "data"|"error": ...} envelope.

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": msg})
}

// failWith maps caller mistakes to 400 and everything else to 500. Internal
// errors are logged but not echoed to the client.
func failWith(c *fiber.Ctx, err error, action string) error {
	if errors.Is(err, services.ErrInvalidRequest) {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	log.Error().Err(err).Str("request_id", requestID(c)).Msgf("❌ Failed to %s", action)
	return fail(c, fiber.StatusInternalServerError, "failed to "+action)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return id
	}
	return c.Get(fiber.HeaderXRequestID)
}
