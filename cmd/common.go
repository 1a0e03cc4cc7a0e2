package cmd

import (
	"fmt"

	"dex-viewer/assets"
	"dex-viewer/core/catalog"
	"dex-viewer/core/config"
	"dex-viewer/core/logger"

	"go.uber.org/zap"
)

// setup loads the configuration and builds the logger every command needs.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// openCatalog builds the catalog over the embedded bundle. In network mode
// it also returns the origin to fetch from, which must be configured
// outside of a request.
func openCatalog(cfg *config.Config, logg *zap.Logger) (*catalog.Catalog, string, error) {
	cat, err := catalog.New(cfg.Catalog, assets.JSON(), logg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create catalog: %w", err)
	}

	origin := cfg.Server.OriginFor(cfg.Catalog.Origin)
	if cat.Mode() == catalog.ModeNetwork && origin == "" {
		return nil, "", fmt.Errorf("network mode needs CATALOG_ORIGIN or SERVER_BASE_URL")
	}
	return cat, origin, nil
}
