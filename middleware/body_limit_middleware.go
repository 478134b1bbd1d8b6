package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit rejects requests whose declared Content-Length exceeds limit.
// Document uploads have their own limit.
func WithBodyLimit(limit int64, skipPathParts ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, part := range skipPathParts {
			if strings.Contains(c.Path(), part) {
				return c.Next()
			}
		}
		contentLength := c.Get("Content-Length")
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && size > limit {
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
					"error": fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit),
				})
			}
		}

		return c.Next()
	}
}
