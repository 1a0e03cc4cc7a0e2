package dex

import (
	"dex-viewer/core/catalog"
	"dex-viewer/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the dex feature.
func NewFeature(cat *catalog.Catalog, cfg catalog.Config, srv server.Config, logger *zap.Logger) *Feature {
	service := NewService(cat, cfg.Origin, srv, logger)
	return &Feature{handler: NewHandler(service, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "dex"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.handler.service.catalog != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
