package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BaseURL is the public URL of this server (e.g. https://dex.example.com).
	BaseURL string `mapstructure:"base_url" default:""`
}

// Addr returns the listen address for Fiber.
func (c Config) Addr() string {
	return ":" + c.Port
}

// OriginFor returns the origin datasets are fetched from: override when set,
// BaseURL otherwise. The Host of incoming requests is never used, since
// whatever one request loads is cached for every later client.
func (c Config) OriginFor(override string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	return strings.TrimRight(c.BaseURL, "/")
}
