// Package auth protects the API with a static API key.
package auth

import "github.com/gofiber/fiber/v2"

// HeaderName carries the API key in requests.
const HeaderName = "X-API-Key"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
}

// New creates the API key middleware.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(HeaderName) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing api key",
			})
		}
		return c.Next()
	}
}
