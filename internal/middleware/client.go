package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// EnsureClientID stores the caller's client id in c.Locals("clientID"). The id comes from the
// X-Client-ID header or the clientId query parameter; anonymous clients get a fresh uuid.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.NewString()
			log.Debugf("assigned client id %s", clientID)
		}

		c.Locals("clientID", clientID)
		return c.Next()
	}
}
