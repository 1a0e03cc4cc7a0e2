package catalog

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const pokemonJSON = `{
  "byId": {
    "1": {"id": 1, "name": "Bulbasaur", "internalName": "BULBASAUR", "types": ["GRASS", "POISON"]},
    "4": {"id": 4, "name": "Charmander", "internalName": "CHARMANDER", "types": ["FIRE"]},
    "5": {"id": 5, "name": "Charmeleon", "internalName": "CHARMELEON", "types": ["FIRE"]},
    "7": {"id": 7, "name": "Squirtle", "internalName": "SQUIRTLE", "types": ["WATER"]}
  },
  "byInternalName": {"BULBASAUR": 1, "CHARMANDER": 4, "CHARMELEON": 5, "SQUIRTLE": 7},
  "list": [
    {"id": 1, "name": "Bulbasaur", "internalName": "BULBASAUR", "types": ["GRASS", "POISON"]},
    {"id": 4, "name": "Charmander", "internalName": "CHARMANDER", "types": ["FIRE"]},
    {"id": 5, "name": "Charmeleon", "internalName": "CHARMELEON", "types": ["FIRE"]},
    {"id": 7, "name": "Squirtle", "internalName": "SQUIRTLE", "types": ["WATER"]}
  ]
}`

const movesJSON = `{
  "byId": {
    "1": {"id": 1, "internalName": "TACKLE", "name": "Tackle", "type": "NORMAL", "category": "Physical", "power": 50},
    "2": {"id": 2, "internalName": "EMBER", "name": "Ember", "type": "FIRE", "category": "Special", "power": 40},
    "3": {"id": 3, "internalName": "GROWL", "name": "Growl", "type": "NORMAL", "category": "Status"}
  },
  "byInternalName": {"TACKLE": 1, "EMBER": 2, "GROWL": 3},
  "list": [
    {"id": 1, "internalName": "TACKLE", "name": "Tackle", "type": "NORMAL", "category": "Physical", "power": 50},
    {"id": 2, "internalName": "EMBER", "name": "Ember", "type": "FIRE", "category": "Special", "power": 40},
    {"id": 3, "internalName": "GROWL", "name": "Growl", "type": "NORMAL", "category": "Status"}
  ]
}`

const itemsJSON = `{
  "byId": {
    "1": {"id": 1, "internalName": "POTION", "name": "Potion", "pocket": 1, "description": "Restores 20 HP."},
    "2": {"id": 2, "internalName": "POKEBALL", "name": "Poke Ball", "pocket": 2, "description": "Catches wild Pokemon."}
  },
  "byInternalName": {"POTION": 1, "POKEBALL": 2},
  "list": [
    {"id": 1, "internalName": "POTION", "name": "Potion", "pocket": 1, "description": "Restores 20 HP."},
    {"id": 2, "internalName": "POKEBALL", "name": "Poke Ball", "pocket": 2, "description": "Catches wild Pokemon."}
  ]
}`

// Keys, types and names carry carriage returns left over from CRLF sources.
const trainersJSON = `{
  "byId": {
    "YOUNGSTER_Ben\r": {"id": "YOUNGSTER_Ben\r", "type": "YOUNGSTER\r", "name": "Ben\r", "items": [], "party": [{"species": "CHARMANDER", "level": 5}]},
    "LASS_Ann": {"id": "LASS_Ann", "type": "LASS", "name": "Ann", "items": ["POTION"], "party": [{"species": "BULBASAUR", "level": 7}]},
    "YOUNGSTER_Joey\r\n": {"id": "YOUNGSTER_Joey\r\n", "type": "YOUNGSTER\r", "name": "Joey\r\n", "items": [], "party": []}
  },
  "byType": {"YOUNGSTER\r": ["YOUNGSTER_Ben\r", "YOUNGSTER_Joey\r\n"], "LASS": ["LASS_Ann"]},
  "list": [
    {"id": "YOUNGSTER_Ben\r", "type": "YOUNGSTER\r", "name": "Ben\r", "items": [], "party": [{"species": "CHARMANDER", "level": 5}]},
    {"id": "LASS_Ann", "type": "LASS", "name": "Ann", "items": ["POTION"], "party": [{"species": "BULBASAUR", "level": 7}]},
    {"id": "YOUNGSTER_Joey\r\n", "type": "YOUNGSTER\r", "name": "Joey\r\n", "items": [], "party": []}
  ]
}`

const typesJSON = `{
  "byId": {
    "10": {"id": 10, "name": "Fire", "internalName": "FIRE", "weaknesses": ["WATER"]},
    "11": {"id": 11, "name": "Water", "internalName": "WATER", "weaknesses": ["GRASS"]}
  },
  "byInternalName": {"FIRE": 10, "WATER": 11},
  "list": [
    {"id": 10, "name": "Fire", "internalName": "FIRE", "weaknesses": ["WATER"]},
    {"id": 11, "name": "Water", "internalName": "WATER", "weaknesses": ["GRASS"]}
  ]
}`

const tournamentJSON = `{
  "byId": {"1": {"id": 1, "type": "YOUNGSTER", "name": "Joey", "pokemonIds": [1, 4]}},
  "list": [{"id": 1, "type": "YOUNGSTER", "name": "Joey", "pokemonIds": [1, 4]}]
}`

// fixtures maps dataset kinds to their JSON documents.
var fixtures = map[string]string{
	KindPokemon:  pokemonJSON,
	KindMoves:    movesJSON,
	KindItems:    itemsJSON,
	KindTrainers: trainersJSON,
	KindTypes:    typesJSON,
	"pikacuptr":  tournamentJSON,
}

func fixtureBundle() fstest.MapFS {
	bundle := fstest.MapFS{}
	for kind, body := range fixtures {
		bundle[kind+".json"] = &fstest.MapFile{Data: []byte(body)}
	}
	return bundle
}

// fakeOrigin is an HTTP origin that counts requests per path.
type fakeOrigin struct {
	*httptest.Server

	mu   sync.Mutex
	hits map[string]int
}

func newFakeOrigin(t *testing.T, handler http.HandlerFunc) *fakeOrigin {
	t.Helper()
	o := &fakeOrigin{hits: make(map[string]int)}
	o.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o.mu.Lock()
		o.hits[r.URL.Path]++
		o.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(o.Close)
	return o
}

// serveFixtures answers /data/json/{kind}.json from fixtures.
func serveFixtures(w http.ResponseWriter, r *http.Request) {
	for kind, body := range fixtures {
		if r.URL.Path == "/data/json/"+kind+".json" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
			return
		}
	}
	http.NotFound(w, r)
}

func (o *fakeOrigin) Hits(kind string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hits["/data/json/"+kind+".json"]
}

func newNetworkCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(Config{Mode: ModeNetwork, TimeoutSeconds: 5}, nil, zap.NewNop())
	require.NoError(t, err)
	return c
}

func newStaticCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(Config{Mode: ModeStatic}, fixtureBundle(), zap.NewNop())
	require.NoError(t, err)
	return c
}
