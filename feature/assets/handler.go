package assets

import (
	"errors"
	"regexp"

	"dex-viewer/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
)

// CacheControl is sent with every dataset file.
const CacheControl = "public, max-age=3600, must-revalidate"

var fileName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*\.json$`)

// Handler serves dataset files.
type Handler struct {
	source Source
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(source Source, logger *zap.Logger) *Handler {
	return &Handler{source: source, logger: logger}
}

// RegisterRoutes registers the dataset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/data/json",
		cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,HEAD,OPTIONS"}),
		etag.New(),
	)
	group.Get("/:file", h.HandleFile)
}

// HandleFile returns one dataset file.
// @Summary Get Dataset File
// @Description Returns a converted dataset such as pokemon.json. Supports If-None-Match.
// @Tags data
// @Produce json
// @Param file path string true "File name, e.g. pokemon.json"
// @Success 200 {object} map[string]interface{} "Dataset"
// @Success 304 "Not Modified"
// @Failure 400 {object} map[string]string "Invalid file name"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /data/json/{file} [get]
func (h *Handler) HandleFile(c *fiber.Ctx) error {
	name := c.Params("file")
	if !fileName.MatchString(name) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid file name"})
	}

	data, err := h.source.Read(c.Context(), name)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "file not found", "file": name})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to read dataset file", zap.String("file", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderCacheControl, CacheControl)
	return c.Send(data)
}
