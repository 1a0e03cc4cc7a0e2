package mirror

import (
	"dex-viewer/core/logger"
	"dex-viewer/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles mirror HTTP requests.
type Handler struct {
	service *Service
	origin  string
	server  server.Config
}

// NewHandler creates a new HTTP handler. origin overrides srv.BaseURL
// when set.
func NewHandler(service *Service, origin string, srv server.Config) *Handler {
	return &Handler{service: service, origin: origin, server: srv}
}

// RegisterRoutes registers the mirror routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/mirror")
	group.Get("/diff", h.HandleDiff)
	group.Post("/sync", h.HandleSync)
}

// HandleDiff compares the mirror with the catalog.
// @Summary Diff Mirror
// @Description Lists catalog records missing from the SQL mirror, rows the catalog no longer has and rows whose columns differ.
// @Tags mirror
// @Produce json
// @Success 200 {object} DiffReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mirror/diff [get]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Diff(c.UserContext(), h.server.OriginFor(h.origin))
	if err != nil {
		l.Error("Mirror diff failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleSync copies the catalog into the mirror.
// @Summary Sync Mirror
// @Description Upserts every catalog record into the SQL mirror. prune=true deletes rows the catalog no longer has.
// @Tags mirror
// @Produce json
// @Param prune query boolean false "Delete extra rows"
// @Success 200 {object} SyncReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /mirror/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	prune := c.QueryBool("prune", false)

	report, err := h.service.Sync(c.UserContext(), h.server.OriginFor(h.origin), prune)
	if err != nil {
		l.Error("Mirror sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
