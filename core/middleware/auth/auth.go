// Package auth protects the API with a shared key.
package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Header is the request header carrying the API key.
const Header = "X-API-Key"

// Config holds the middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty disables authentication.
	ApiKey string
	// PublicPrefixes are path prefixes served without a key.
	PublicPrefixes []string
}

// DefaultPublicPrefixes are the dataset files and the API docs.
var DefaultPublicPrefixes = []string{"/data/", "/swagger/"}

// New returns the API key middleware. The key is read from the X-API-Key
// header or the api_key query parameter.
func New(cfg Config) fiber.Handler {
	if cfg.PublicPrefixes == nil {
		cfg.PublicPrefixes = DefaultPublicPrefixes
	}
	expected := []byte(cfg.ApiKey)

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || c.Method() == fiber.MethodOptions {
			return c.Next()
		}
		for _, prefix := range cfg.PublicPrefixes {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		key := c.Get(Header)
		if key == "" {
			key = c.Query("api_key")
		}
		if subtle.ConstantTimeCompare([]byte(key), expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}
