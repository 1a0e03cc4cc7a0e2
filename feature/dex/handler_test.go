package dex

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"dex-viewer/assets"
	"dex-viewer/core/catalog"
	"dex-viewer/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	cat, err := catalog.New(catalog.Config{Mode: catalog.ModeStatic}, assets.JSON(), zap.NewNop())
	require.NoError(t, err)

	app := fiber.New()
	feature := NewFeature(cat, catalog.Config{}, server.Config{}, zap.NewNop())
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func get[T any](t *testing.T, app *fiber.App, path string, wantStatus int) T {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, path)

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestListPokemon(t *testing.T) {
	app := setupApp(t)

	page := get[Page[catalog.Pokemon]](t, app, "/api/pokemon", fiber.StatusOK)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultLimit, page.Limit)
	assert.Equal(t, 1, page.Pages)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "Bulbasaur", page.Items[0].Name)

	page = get[Page[catalog.Pokemon]](t, app, "/api/pokemon?type=fire", fiber.StatusOK)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Charmander", page.Items[0].Name)
	assert.Equal(t, "Charmeleon", page.Items[1].Name)

	page = get[Page[catalog.Pokemon]](t, app, "/api/pokemon?limit=2&page=3", fiber.StatusOK)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Squirtle", page.Items[0].Name)

	page = get[Page[catalog.Pokemon]](t, app, "/api/pokemon?page=92233720368547758", fiber.StatusOK)
	assert.Empty(t, page.Items)
	assert.Equal(t, 5, page.Total)

	page = get[Page[catalog.Pokemon]](t, app, "/api/pokemon?q=4", fiber.StatusOK)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 4, page.Items[0].ID)
}

func TestGetPokemon(t *testing.T) {
	app := setupApp(t)

	detail := get[PokemonDetail](t, app, "/api/pokemon/4", fiber.StatusOK)
	assert.Equal(t, "Charmander", detail.Name)
	require.Len(t, detail.TypeDetails, 1)
	assert.Equal(t, "Fire", detail.TypeDetails[0].Name)
	require.Len(t, detail.AbilityDetails, 1)
	assert.Equal(t, "Blaze", detail.AbilityDetails[0].Name)
	require.NotNil(t, detail.HiddenAbilityDetail)
	assert.Equal(t, "Solar Power", detail.HiddenAbilityDetail.Name)
	require.Len(t, detail.LevelMoves, 3)
	assert.Equal(t, "Ember", detail.LevelMoves[2].Move.Name)
	assert.Equal(t, 7, detail.LevelMoves[2].Level)
	require.Len(t, detail.EggMoveDetails, 1)
	assert.Equal(t, "Dragon Rage", detail.EggMoveDetails[0].Name)
	require.Len(t, detail.EvolutionDetails, 1)
	assert.Equal(t, 5, detail.EvolutionDetails[0].ID)
	assert.Equal(t, "Charmeleon", detail.EvolutionDetails[0].Name)
	assert.Equal(t, []string{"GROUND", "ROCK", "WATER"}, detail.Matchups.WeakTo)

	byName := get[PokemonDetail](t, app, "/api/pokemon/charmander", fiber.StatusOK)
	assert.Equal(t, 4, byName.ID)

	get[map[string]string](t, app, "/api/pokemon/999", fiber.StatusNotFound)
	get[map[string]string](t, app, "/api/pokemon/MISSINGNO", fiber.StatusNotFound)
}

func TestMoves(t *testing.T) {
	app := setupApp(t)

	page := get[Page[catalog.Move]](t, app, "/api/moves?category=status", fiber.StatusOK)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "GROWL", page.Items[0].InternalName)
	assert.Equal(t, "TAILWHIP", page.Items[1].InternalName)

	page = get[Page[catalog.Move]](t, app, "/api/moves?type=GRASS&category=Special", fiber.StatusOK)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "PETALDANCE", page.Items[0].InternalName)

	detail := get[MoveDetail](t, app, "/api/moves/1", fiber.StatusOK)
	assert.Equal(t, "Tackle", detail.Name)
	assert.Equal(t, []string{"Contact", "Can Protect", "Can Magic Coat", "Thaws User"}, detail.FlagNames)

	get[map[string]string](t, app, "/api/moves/500", fiber.StatusNotFound)
}

func TestItems(t *testing.T) {
	app := setupApp(t)

	page := get[Page[catalog.Item]](t, app, "/api/items?pocket=1", fiber.StatusOK)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "POTION", page.Items[0].InternalName)

	page = get[Page[catalog.Item]](t, app, "/api/items", fiber.StatusOK)
	assert.Equal(t, 4, page.Total)

	detail := get[ItemDetail](t, app, "/api/items/tm06", fiber.StatusOK)
	require.NotNil(t, detail.MachineMove)
	assert.Equal(t, "Ember", detail.MachineMove.Name)

	detail = get[ItemDetail](t, app, "/api/items/1", fiber.StatusOK)
	assert.Nil(t, detail.MachineMove)

	get[map[string]string](t, app, "/api/items/99", fiber.StatusNotFound)
}

func TestTrainers(t *testing.T) {
	app := setupApp(t)

	page := get[Page[catalog.Trainer]](t, app, "/api/trainers", fiber.StatusOK)
	require.Len(t, page.Items, 4)
	ids := make([]string, 0, len(page.Items))
	for _, tr := range page.Items {
		ids = append(ids, tr.ID)
	}
	assert.Equal(t, []string{"YOUNGSTER_Ben", "LASS_Ann", "YOUNGSTER_Ben_1", "LEADER_Brock_Brock"}, ids)

	page = get[Page[catalog.Trainer]](t, app, "/api/trainers?type=YOUNGSTER", fiber.StatusOK)
	assert.Len(t, page.Items, 2)

	detail := get[TrainerDetail](t, app, "/api/trainers/YOUNGSTER_Ben_1", fiber.StatusOK)
	assert.Equal(t, "Ben", detail.Name)
	require.NotNil(t, detail.TrainerType)
	assert.Equal(t, "Youngster", detail.TrainerType.Name)
	assert.Len(t, detail.ItemDetails, 2)
	require.Len(t, detail.PartyDetails, 1)
	member := detail.PartyDetails[0]
	assert.Equal(t, "CHARMELEON", member.Species)
	assert.Equal(t, 5, member.PokemonID)
	require.NotNil(t, member.AbilityDetail)
	assert.Equal(t, "Blaze", member.AbilityDetail.Name)

	detail = get[TrainerDetail](t, app, "/api/trainers/LASS_Ann", fiber.StatusOK)
	require.NotNil(t, detail.PartyDetails[0].HeldItem)
	assert.Equal(t, "Oran Berry", detail.PartyDetails[0].HeldItem.Name)

	get[map[string]string](t, app, "/api/trainers/NOBODY", fiber.StatusNotFound)
}

func TestEncounters(t *testing.T) {
	app := setupApp(t)

	list := get[[]catalog.Encounter](t, app, "/api/encounters", fiber.StatusOK)
	assert.Len(t, list, 2)

	detail := get[EncounterDetail](t, app, "/api/encounters/5", fiber.StatusOK)
	assert.Equal(t, "Route 1", detail.MapName)
	assert.Equal(t, map[string]int{"BULBASAUR": 1, "CHARMANDER": 4, "SQUIRTLE": 7}, detail.PokemonIDs)

	get[map[string]string](t, app, "/api/encounters/99", fiber.StatusNotFound)
	get[map[string]string](t, app, "/api/encounters/route", fiber.StatusBadRequest)
}

func TestReferenceLists(t *testing.T) {
	app := setupApp(t)

	assert.Len(t, get[[]catalog.Type](t, app, "/api/types", fiber.StatusOK), 7)
	assert.Len(t, get[[]catalog.Ability](t, app, "/api/abilities", fiber.StatusOK), 6)
	assert.Len(t, get[[]catalog.TrainerType](t, app, "/api/trainertypes", fiber.StatusOK), 3)
}

func TestTournament(t *testing.T) {
	app := setupApp(t)

	roster := get[[]catalog.TournamentTrainer](t, app, "/api/tournaments/pikacuptr", fiber.StatusOK)
	require.Len(t, roster, 2)
	assert.Equal(t, "Joey", roster[0].Name)

	assert.Empty(t, get[[]catalog.TournamentTrainer](t, app, "/api/tournaments/unknowncup", fiber.StatusOK))
	get[map[string]string](t, app, "/api/tournaments/pokemon", fiber.StatusBadRequest)
	get[map[string]string](t, app, "/api/tournaments/Bad.Name", fiber.StatusBadRequest)
}

func TestCompare(t *testing.T) {
	app := setupApp(t)

	entries := get[[]CompareEntry](t, app, "/api/compare?ids=1,%204,999", fiber.StatusOK)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bulbasaur", entries[0].Name)
	assert.Equal(t, 318, entries[0].BaseStatTotal)
	assert.Equal(t, []string{"FIRE", "FLYING", "ICE", "PSYCHIC"}, entries[0].Matchups.WeakTo)
	assert.Equal(t, "Charmander", entries[1].Name)

	get[map[string]string](t, app, "/api/compare", fiber.StatusBadRequest)
	get[map[string]string](t, app, "/api/compare?ids=abc", fiber.StatusBadRequest)
}

func TestSearch(t *testing.T) {
	app := setupApp(t)

	res := get[SearchResults](t, app, "/api/search?q=char", fiber.StatusOK)
	assert.Equal(t, "char", res.Query)
	assert.Len(t, res.Pokemon, 2)
	assert.Empty(t, res.Trainers)

	res = get[SearchResults](t, app, "/api/search?q=char&limit=1", fiber.StatusOK)
	assert.Len(t, res.Pokemon, 1)

	res = get[SearchResults](t, app, "/api/search?q=potion", fiber.StatusOK)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "POTION", res.Items[0].InternalName)

	res = get[SearchResults](t, app, "/api/search?q=ben", fiber.StatusOK)
	assert.Len(t, res.Trainers, 2)

	res = get[SearchResults](t, app, "/api/search", fiber.StatusOK)
	assert.Empty(t, res.Pokemon)
	assert.Empty(t, res.Moves)
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Trainers)
}

func TestStats(t *testing.T) {
	app := setupApp(t)

	stats := get[catalog.DataStats](t, app, "/api/stats", fiber.StatusOK)
	assert.Equal(t, catalog.DataStats{
		Pokemon:      5,
		Moves:        10,
		Items:        4,
		Trainers:     4,
		TrainerTypes: 3,
		Encounters:   2,
		Types:        7,
		Abilities:    6,
	}, stats)
}

func TestNetworkMode_IgnoresRequestHost(t *testing.T) {
	var foreignHits atomic.Int32
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignHits.Add(1)
		_, _ = w.Write([]byte(`{"byId":{"1":{"id":1,"name":"Pwned"}},"list":[{"id":1,"name":"Pwned"}]}`))
	}))
	defer foreign.Close()

	origin := httptest.NewServer(http.StripPrefix("/data/json/", http.FileServer(http.FS(assets.JSON()))))
	defer origin.Close()

	cat, err := catalog.New(catalog.Config{Mode: catalog.ModeNetwork}, nil, zap.NewNop())
	require.NoError(t, err)
	app := fiber.New()
	require.NoError(t, NewFeature(cat, catalog.Config{Origin: origin.URL}, server.Config{}, zap.NewNop()).Load(app))

	req := httptest.NewRequest("GET", "/api/pokemon", nil)
	req.Host = strings.TrimPrefix(foreign.URL, "http://")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := get[Page[catalog.Pokemon]](t, app, "/api/pokemon", fiber.StatusOK)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "Bulbasaur", page.Items[0].Name)
	assert.Zero(t, foreignHits.Load())
}
