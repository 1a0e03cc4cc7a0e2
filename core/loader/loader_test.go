package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	enabled := &stubFeature{name: "dex", enabled: true}
	disabled := &stubFeature{name: "mirror", enabled: false}

	mgr := NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	assert.NoError(t, mgr.LoadAll(fiber.New()))
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
	assert.Len(t, mgr.Features(), 2)
}

func TestManager_LoadAll_Error(t *testing.T) {
	mgr := NewManager()
	mgr.Register(&stubFeature{name: "assets", enabled: true, err: errors.New("boom")})

	err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "assets")
}

func TestManager_LoadAll_Duplicate(t *testing.T) {
	mgr := NewManager()
	mgr.Register(&stubFeature{name: "dex", enabled: true})
	mgr.Register(&stubFeature{name: "dex", enabled: true})

	assert.ErrorContains(t, mgr.LoadAll(fiber.New()), "registered twice")
}
