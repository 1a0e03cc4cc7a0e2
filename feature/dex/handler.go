package dex

import (
	"errors"

	"dex-viewer/core/catalog"
	"dex-viewer/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultSearchLimit = 10

// Handler handles dex HTTP requests.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the dex routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api")
	api.Get("/pokemon", h.ListPokemon)
	api.Get("/pokemon/:id", h.GetPokemon)
	api.Get("/moves", h.ListMoves)
	api.Get("/moves/:id", h.GetMove)
	api.Get("/items", h.ListItems)
	api.Get("/items/:id", h.GetItem)
	api.Get("/trainers", h.ListTrainers)
	api.Get("/trainers/:id", h.GetTrainer)
	api.Get("/encounters", h.ListEncounters)
	api.Get("/encounters/:mapId", h.GetEncounter)
	api.Get("/types", h.ListTypes)
	api.Get("/abilities", h.ListAbilities)
	api.Get("/trainertypes", h.ListTrainerTypes)
	api.Get("/tournaments/:name", h.GetTournament)
	api.Get("/compare", h.Compare)
	api.Get("/search", h.Search)
	api.Get("/stats", h.Stats)
}

func notFound(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
}

// ListPokemon returns a page of species.
// @Summary List Pokémon
// @Description Returns species matching a query, optionally filtered by type.
// @Tags dex
// @Produce json
// @Param q query string false "Name, internal name, type or national id"
// @Param type query string false "Type internal name, e.g. FIRE"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} Page[catalog.Pokemon]
// @Router /api/pokemon [get]
func (h *Handler) ListPokemon(c *fiber.Ctx) error {
	list := h.service.ListPokemon(c.UserContext(), h.service.Origin(), c.Query("q"), c.Query("type"))
	return c.JSON(Paginate(list, c.QueryInt("page", 1), c.QueryInt("limit", DefaultLimit)))
}

// GetPokemon returns one species.
// @Summary Get Pokémon
// @Description Returns a species by national id or internal name with types, abilities, moves and evolutions resolved.
// @Tags dex
// @Produce json
// @Param id path string true "National id or internal name"
// @Success 200 {object} PokemonDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/pokemon/{id} [get]
func (h *Handler) GetPokemon(c *fiber.Ctx) error {
	detail, err := h.service.Pokemon(c.UserContext(), h.service.Origin(), c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(detail)
}

// ListMoves returns a page of moves.
// @Summary List Moves
// @Tags dex
// @Produce json
// @Param q query string false "Name, internal name or type"
// @Param type query string false "Move type"
// @Param category query string false "Physical, Special or Status"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} Page[catalog.Move]
// @Router /api/moves [get]
func (h *Handler) ListMoves(c *fiber.Ctx) error {
	list := h.service.ListMoves(c.UserContext(), h.service.Origin(), c.Query("q"), c.Query("type"), c.Query("category"))
	return c.JSON(Paginate(list, c.QueryInt("page", 1), c.QueryInt("limit", DefaultLimit)))
}

// GetMove returns one move.
// @Summary Get Move
// @Tags dex
// @Produce json
// @Param id path string true "Move id or internal name"
// @Success 200 {object} MoveDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/moves/{id} [get]
func (h *Handler) GetMove(c *fiber.Ctx) error {
	detail, err := h.service.Move(c.UserContext(), h.service.Origin(), c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(detail)
}

// ListItems returns a page of items.
// @Summary List Items
// @Tags dex
// @Produce json
// @Param q query string false "Name, internal name or description"
// @Param pocket query int false "Bag pocket"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} Page[catalog.Item]
// @Router /api/items [get]
func (h *Handler) ListItems(c *fiber.Ctx) error {
	list := h.service.ListItems(c.UserContext(), h.service.Origin(), c.Query("q"), c.QueryInt("pocket", -1))
	return c.JSON(Paginate(list, c.QueryInt("page", 1), c.QueryInt("limit", DefaultLimit)))
}

// GetItem returns one item.
// @Summary Get Item
// @Tags dex
// @Produce json
// @Param id path string true "Item id or internal name"
// @Success 200 {object} ItemDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/items/{id} [get]
func (h *Handler) GetItem(c *fiber.Ctx) error {
	detail, err := h.service.Item(c.UserContext(), h.service.Origin(), c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(detail)
}

// ListTrainers returns a page of trainers.
// @Summary List Trainers
// @Tags dex
// @Produce json
// @Param q query string false "Name or trainer type"
// @Param type query string false "Trainer type, e.g. YOUNGSTER"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} Page[catalog.Trainer]
// @Router /api/trainers [get]
func (h *Handler) ListTrainers(c *fiber.Ctx) error {
	list := h.service.ListTrainers(c.UserContext(), h.service.Origin(), c.Query("q"), c.Query("type"))
	return c.JSON(Paginate(list, c.QueryInt("page", 1), c.QueryInt("limit", DefaultLimit)))
}

// GetTrainer returns one trainer.
// @Summary Get Trainer
// @Tags dex
// @Produce json
// @Param id path string true "Trainer id, e.g. YOUNGSTER_Ben"
// @Success 200 {object} TrainerDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/trainers/{id} [get]
func (h *Handler) GetTrainer(c *fiber.Ctx) error {
	detail, err := h.service.Trainer(c.UserContext(), h.service.Origin(), c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(detail)
}

// ListEncounters returns the encounters of every map.
// @Summary List Encounters
// @Tags dex
// @Produce json
// @Success 200 {array} catalog.Encounter
// @Router /api/encounters [get]
func (h *Handler) ListEncounters(c *fiber.Ctx) error {
	return c.JSON(h.service.Encounters(c.UserContext(), h.service.Origin()))
}

// GetEncounter returns the encounters of one map.
// @Summary Get Map Encounters
// @Tags dex
// @Produce json
// @Param mapId path int true "Map id"
// @Success 200 {object} EncounterDetail
// @Failure 400 {object} map[string]string "Invalid map id"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/encounters/{mapId} [get]
func (h *Handler) GetEncounter(c *fiber.Ctx) error {
	mapID, err := c.ParamsInt("mapId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid map id"})
	}
	detail, err := h.service.Encounter(c.UserContext(), h.service.Origin(), mapID)
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(detail)
}

// ListTypes returns every type.
// @Summary List Types
// @Tags dex
// @Produce json
// @Success 200 {array} catalog.Type
// @Router /api/types [get]
func (h *Handler) ListTypes(c *fiber.Ctx) error {
	return c.JSON(h.service.Types(c.UserContext(), h.service.Origin()))
}

// ListAbilities returns every ability.
// @Summary List Abilities
// @Tags dex
// @Produce json
// @Success 200 {array} catalog.Ability
// @Router /api/abilities [get]
func (h *Handler) ListAbilities(c *fiber.Ctx) error {
	return c.JSON(h.service.Abilities(c.UserContext(), h.service.Origin()))
}

// ListTrainerTypes returns every trainer type.
// @Summary List Trainer Types
// @Tags dex
// @Produce json
// @Success 200 {array} catalog.TrainerType
// @Router /api/trainertypes [get]
func (h *Handler) ListTrainerTypes(c *fiber.Ctx) error {
	return c.JSON(h.service.TrainerTypes(c.UserContext(), h.service.Origin()))
}

// GetTournament returns a tournament roster.
// @Summary Get Tournament
// @Tags dex
// @Produce json
// @Param name path string true "Tournament name, e.g. pikacuptr"
// @Success 200 {array} catalog.TournamentTrainer
// @Failure 400 {object} map[string]string "Invalid tournament name"
// @Router /api/tournaments/{name} [get]
func (h *Handler) GetTournament(c *fiber.Ctx) error {
	roster, err := h.service.Tournament(c.UserContext(), h.service.Origin(), c.Params("name"))
	if errors.Is(err, catalog.ErrInvalidTournament) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(roster)
}

// Compare returns several species side by side.
// @Summary Compare Pokémon
// @Tags dex
// @Produce json
// @Param ids query string true "Comma separated national ids"
// @Success 200 {array} CompareEntry
// @Failure 400 {object} map[string]string "No ids"
// @Router /api/compare [get]
func (h *Handler) Compare(c *fiber.Ctx) error {
	var ids []int
	for _, raw := range utils.SplitList(c.Query("ids")) {
		if id := utils.ToInt(raw); id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ids is required"})
	}
	return c.JSON(h.service.Compare(c.UserContext(), h.service.Origin(), ids))
}

// Search searches every dataset.
// @Summary Search
// @Tags dex
// @Produce json
// @Param q query string true "Query"
// @Param limit query int false "Hits per dataset (default 10)"
// @Success 200 {object} SearchResults
// @Router /api/search [get]
func (h *Handler) Search(c *fiber.Ctx) error {
	limit := min(max(c.QueryInt("limit", defaultSearchLimit), 1), MaxLimit)
	return c.JSON(h.service.Search(c.UserContext(), h.service.Origin(), c.Query("q"), limit))
}

// Stats returns the record count of every dataset.
// @Summary Dataset Stats
// @Tags dex
// @Produce json
// @Success 200 {object} catalog.DataStats
// @Router /api/stats [get]
func (h *Handler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats(c.UserContext(), h.service.Origin()))
}
