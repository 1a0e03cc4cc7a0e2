package integrity

import (
	"errors"

	"dex-viewer/core/logger"
	"dex-viewer/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.ReferenceReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/datasets", h.HandleDatasetsCheck)
	group.Get("/references", h.HandleReferencesCheck)
	group.Get("/mirror", h.HandleMirrorCheck)
}

func failure(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, ErrNotConfigured) {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func entry(value any, err error) any {
	if errors.Is(err, ErrNotConfigured) {
		return fiber.Map{"status": "skipped", "error": err.Error()}
	}
	if err != nil {
		return fiber.Map{"status": "error", "error": err.Error()}
	}
	return value
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every integrity check (Structure, Datasets, References, Mirror). Checks without a configured backend are reported as skipped.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]any)

	missing, err := h.service.CheckStructure(ctx)
	report["structure"] = entry(fiber.Map{"status": "ok", "missing": missing}, err)

	missing, err = h.service.CheckDatasets(ctx)
	report["datasets"] = entry(fiber.Map{"status": "ok", "missing": missing}, err)

	refs, err := h.service.CheckReferences(ctx, h.service.Origin())
	report["references"] = entry(refs, err)

	mirror, err := h.service.CheckMirror()
	report["mirror"] = entry(mirror, err)

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the dataset folders exist in the storage bucket. Optionally fixes missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.UserContext())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return failure(c, err)
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.UserContext(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDatasetsCheck checks that every dataset file is published.
// @Summary Check Datasets
// @Description Verify that every dataset JSON file is present under the storage prefix.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Datasets Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/datasets [get]
func (h *Handler) HandleDatasetsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckDatasets(c.UserContext())
	if err != nil {
		l.Error("Datasets check failed", zap.Error(err))
		return failure(c, err)
	}
	if len(missing) > 0 {
		l.Warn("Missing datasets detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleReferencesCheck verifies the cross references between datasets.
// @Summary Check References
// @Description Loads every dataset and reports internal names that do not resolve.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.ReferenceReport "References Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/references [get]
func (h *Handler) HandleReferencesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckReferences(c.UserContext(), h.service.Origin())
	if err != nil {
		l.Error("References check failed", zap.Error(err))
		return failure(c, err)
	}
	return c.JSON(report)
}

// HandleMirrorCheck checks the mirror table schema.
// @Summary Check Mirror Schema
// @Description Checks if the mirror database tables match the expected models.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.MirrorReport "Mirror Check Report"
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /integrity/mirror [get]
func (h *Handler) HandleMirrorCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting mirror schema check")

	report, err := h.service.CheckMirror()
	if err != nil {
		l.Error("Mirror schema check failed", zap.Error(err))
		return failure(c, err)
	}
	return c.JSON(report)
}
