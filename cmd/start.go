package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"dex-viewer/assets"
	"dex-viewer/core/catalog"
	"dex-viewer/core/config"
	"dex-viewer/core/database"
	"dex-viewer/core/loader"
	"dex-viewer/core/logger"
	"dex-viewer/core/middleware/auth"
	"dex-viewer/core/middleware/rayid"
	"dex-viewer/core/storage"

	dataset "dex-viewer/feature/assets"
	"dex-viewer/feature/dex"
	"dex-viewer/feature/integrity"
	"dex-viewer/feature/mirror"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "dex-viewer/docs/swagger"
)

// @title Dex Viewer API
// @version 1.0
// @description API for browsing Pokémon fan-game datasets.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dex viewer server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the mirror database (optional)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, mirror disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to mirror database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Catalog
		cat, err := catalog.New(cfg.Catalog, assets.JSON(), logg)
		if err != nil {
			logg.Fatal("Failed to create catalog", zap.Error(err))
		}
		logg.Info("Catalog ready", zap.String("mode", cat.Mode()), zap.String("source", cfg.Catalog.Source))

		var source dataset.Source = dataset.FSSource{FS: assets.JSON()}
		if cfg.Catalog.Source == catalog.SourceStorage {
			source = dataset.StorageSource{Client: store, Bucket: cfg.Storage.Bucket, Prefix: cfg.Storage.Prefix}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 6. Register Features
		mgr := loader.NewManager()
		mgr.Register(dataset.NewFeature(source, logg))
		mgr.Register(dex.NewFeature(cat, cfg.Catalog, cfg.Server, logg))
		mgr.Register(integrity.NewFeature(integrity.Options{
			Client:  store,
			Storage: cfg.Storage,
			Catalog: cat,
			Origin:  cfg.Catalog.Origin,
			Server:  cfg.Server,
			DB:      db,
		}, logg))
		mgr.Register(mirror.NewFeature(db, cat, cfg.Catalog, cfg.Server, logg))

		// RayID must be first to trace everything.
		app.Use(rayid.New())
		app.Use(recover.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
