package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade rejects requests that are not websocket upgrades and carries the client id
// over to the upgraded connection, whose context is separate from the upgrade request.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		clientID, _ := c.Locals("clientID").(string)
		if clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "client ID is required",
			})
		}

		c.Locals("wsClientID", clientID)
		return c.Next()
	}
}
