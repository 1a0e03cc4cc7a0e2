package integrity

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the integrity feature.
func NewFeature(opts Options, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(opts, logger))}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled reports whether any backend is available to check.
func (f *Feature) IsEnabled() bool {
	o := f.handler.service.opts
	return o.Client != nil || o.Catalog != nil || o.DB != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
