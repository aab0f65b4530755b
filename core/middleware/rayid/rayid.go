// Package rayid assigns a unique request ID to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName carries the ray id in requests and responses.
const HeaderName = "X-Ray-ID"

// New creates the ray id middleware. An id supplied by the caller is
// reused, otherwise a fresh UUID is generated; either way the id is
// stored in locals for logger correlation and echoed in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
