package mirror

import (
	"dex-viewer/core/catalog"
	"dex-viewer/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the mirror feature. It is disabled without a database.
func NewFeature(db *gorm.DB, cat *catalog.Catalog, cfg catalog.Config, srv server.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, cat, logger)
	return &Feature{service: svc, handler: NewHandler(svc, cfg.Origin, srv)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "mirror"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil && f.service.catalog != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
