package server_test

import (
	"testing"

	"dex-viewer/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	c := server.Config{Port: "3000"}
	assert.Equal(t, ":3000", c.Addr())
}

func TestConfig_OriginFor(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		override string
		want     string
	}{
		{"Configured", "https://dex.example.com", "", "https://dex.example.com"},
		{"TrailingSlash", "https://dex.example.com/", "", "https://dex.example.com"},
		{"Override", "https://dex.example.com", "https://cdn.example.com/", "https://cdn.example.com"},
		{"Empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BaseURL: tt.baseURL}
			assert.Equal(t, tt.want, c.OriginFor(tt.override))
		})
	}
}
