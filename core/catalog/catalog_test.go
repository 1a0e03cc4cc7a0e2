package catalog

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("UnknownMode", func(t *testing.T) {
		_, err := New(Config{Mode: "remote"}, nil, nil)
		assert.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("StaticWithoutBundle", func(t *testing.T) {
		_, err := New(Config{Mode: ModeStatic}, nil, nil)
		assert.Error(t, err)
	})

	t.Run("NetworkWithoutBundle", func(t *testing.T) {
		c, err := New(Config{Mode: ModeNetwork}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, ModeNetwork, c.Mode())
	})
}

func TestDatasetURL(t *testing.T) {
	got, err := DatasetURL("https://dex.example.com", KindPokemon)
	require.NoError(t, err)
	assert.Equal(t, "https://dex.example.com/data/json/pokemon.json", got)

	got, err = DatasetURL("https://dex.example.com/", KindMoves)
	require.NoError(t, err)
	assert.Equal(t, "https://dex.example.com/data/json/moves.json", got)

	_, err = DatasetURL("", KindMoves)
	assert.Error(t, err)
}

func TestLoad_CoalescesConcurrentCallers(t *testing.T) {
	gate := make(chan struct{})
	origin := newFakeOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		<-gate
		serveFixtures(w, r)
	})
	c := newNetworkCatalog(t)

	const callers = 25
	results := make([]*PokemonIndex, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.LoadPokemon(context.Background(), origin.URL)
		}(i)
	}

	require.Eventually(t, func() bool { return origin.Hits(KindPokemon) == 1 }, 2*time.Second, 5*time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, 1, origin.Hits(KindPokemon))
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}

	// Later calls are served from the cache.
	again, err := c.LoadPokemon(context.Background(), origin.URL)
	require.NoError(t, err)
	assert.Same(t, results[0], again)
	assert.Equal(t, 1, origin.Hits(KindPokemon))
}

func TestLoad_KindsAreIndependent(t *testing.T) {
	origin := newFakeOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data/json/pokemon.json" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		serveFixtures(w, r)
	})
	c := newNetworkCatalog(t)
	ctx := context.Background()

	_, err := c.LoadPokemon(ctx, origin.URL)
	assert.ErrorIs(t, err, ErrLoadFailed)

	moves, err := c.LoadMoves(ctx, origin.URL)
	require.NoError(t, err)
	assert.Equal(t, 3, moves.Len())

	items, err := c.LoadItems(ctx, origin.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, items.Len())

	assert.Equal(t, 1, origin.Hits(KindMoves))
	assert.Equal(t, 1, origin.Hits(KindItems))
}

func TestLoad_InFlightKindDoesNotBlockOthers(t *testing.T) {
	gate := make(chan struct{})
	origin := newFakeOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data/json/pokemon.json" {
			<-gate
		}
		serveFixtures(w, r)
	})
	defer close(gate)
	c := newNetworkCatalog(t)

	pokemonDone := make(chan error, 1)
	go func() {
		_, err := c.LoadPokemon(context.Background(), origin.URL)
		pokemonDone <- err
	}()
	require.Eventually(t, func() bool { return origin.Hits(KindPokemon) == 1 }, 2*time.Second, 5*time.Millisecond)

	movesDone := make(chan error, 1)
	go func() {
		_, err := c.LoadMoves(context.Background(), origin.URL)
		movesDone <- err
	}()

	select {
	case err := <-movesDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("moves load waited for the pokemon load")
	}

	select {
	case <-pokemonDone:
		t.Fatal("pokemon load finished before its response was released")
	default:
	}

	_, ok := c.MoveByID(1)
	assert.True(t, ok)
}

func TestLoad_FailureIsNotCached(t *testing.T) {
	var calls atomic.Int32
	origin := newFakeOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		serveFixtures(w, r)
	})
	c := newNetworkCatalog(t)
	ctx := context.Background()

	_, err := c.LoadPokemon(ctx, origin.URL)
	require.ErrorIs(t, err, ErrLoadFailed)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, KindPokemon, statusErr.Kind)

	_, ok := c.PokemonByID(4)
	assert.False(t, ok)

	idx, err := c.LoadPokemon(ctx, origin.URL)
	require.NoError(t, err)
	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, 2, origin.Hits(KindPokemon))

	_, err = c.LoadPokemon(ctx, origin.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, origin.Hits(KindPokemon))
}

func TestLoad_MalformedBody(t *testing.T) {
	origin := newFakeOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"byId": [`))
	})
	c := newNetworkCatalog(t)

	_, err := c.LoadTypes(context.Background(), origin.URL)
	assert.ErrorIs(t, err, ErrLoadFailed)

	_, ok := c.TypeByID(10)
	assert.False(t, ok)
}

func TestLoad_EmptyOrigin(t *testing.T) {
	c := newNetworkCatalog(t)

	_, err := c.LoadPokemon(context.Background(), "")
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoad_CallerCancellationDoesNotAbortLoad(t *testing.T) {
	gate := make(chan struct{})
	origin := newFakeOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		<-gate
		serveFixtures(w, r)
	})
	c := newNetworkCatalog(t)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := c.LoadMoves(ctx, origin.URL)
		first <- err
	}()
	require.Eventually(t, func() bool { return origin.Hits(KindMoves) == 1 }, 2*time.Second, 5*time.Millisecond)

	second := make(chan error, 1)
	go func() {
		_, err := c.LoadMoves(context.Background(), origin.URL)
		second <- err
	}()

	cancel()
	close(gate)

	assert.NoError(t, <-first)
	assert.NoError(t, <-second)
	assert.Equal(t, 1, origin.Hits(KindMoves))

	_, ok := c.MoveByInternalName("EMBER")
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	origin := newFakeOrigin(t, serveFixtures)
	c := newNetworkCatalog(t)
	ctx := context.Background()

	_, err := c.LoadPokemon(ctx, origin.URL)
	require.NoError(t, err)
	_, ok := c.PokemonByID(1)
	require.True(t, ok)

	c.Clear()

	_, ok = c.PokemonByID(1)
	assert.False(t, ok)

	_, err = c.LoadPokemon(ctx, origin.URL)
	require.NoError(t, err)
	assert.Equal(t, 2, origin.Hits(KindPokemon))
}

func TestClear_InFlightLoadIsNotCached(t *testing.T) {
	gate := make(chan struct{})
	origin := newFakeOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		<-gate
		serveFixtures(w, r)
	})
	c := newNetworkCatalog(t)

	done := make(chan *PokemonIndex, 1)
	go func() {
		idx, _ := c.LoadPokemon(context.Background(), origin.URL)
		done <- idx
	}()
	require.Eventually(t, func() bool { return origin.Hits(KindPokemon) == 1 }, 2*time.Second, 5*time.Millisecond)

	c.Clear()
	close(gate)

	idx := <-done
	require.NotNil(t, idx)
	assert.Equal(t, 4, idx.Len())

	_, ok := c.PokemonByID(4)
	assert.False(t, ok)
}

func TestLoadTournament(t *testing.T) {
	origin := newFakeOrigin(t, serveFixtures)
	c := newNetworkCatalog(t)
	ctx := context.Background()

	idx, err := c.LoadTournament(ctx, "pikacuptr", origin.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())

	cached, ok := c.Tournament("pikacuptr")
	require.True(t, ok)
	assert.Same(t, idx, cached)

	for _, name := range []string{"", "../pokemon", "Pika", "a/b", "pokemon", "trainers"} {
		_, err := c.LoadTournament(ctx, name, origin.URL)
		assert.ErrorIs(t, err, ErrInvalidTournament, name)
	}
	assert.Equal(t, 0, origin.Hits(KindPokemon))
}

func TestStaticMode(t *testing.T) {
	c := newStaticCatalog(t)
	ctx := context.Background()

	first, err := c.LoadPokemon(ctx, "")
	require.NoError(t, err)
	second, err := c.LoadPokemon(ctx, "https://ignored.example.com")
	require.NoError(t, err)
	assert.Same(t, first, second)

	p, ok := c.PokemonByInternalName("SQUIRTLE")
	require.True(t, ok)
	assert.Equal(t, 7, p.ID)

	_, err = c.LoadAbilities(ctx, "")
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestStaticAndNetworkAreEquivalent(t *testing.T) {
	origin := newFakeOrigin(t, serveFixtures)
	network := newNetworkCatalog(t)
	static := newStaticCatalog(t)
	ctx := context.Background()

	np, err := network.LoadPokemon(ctx, origin.URL)
	require.NoError(t, err)
	sp, err := static.LoadPokemon(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, sp, np)

	nt, err := network.LoadTrainers(ctx, origin.URL)
	require.NoError(t, err)
	st, err := static.LoadTrainers(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, st, nt)

	assert.Equal(t, static.SearchPokemon("char"), network.SearchPokemon("char"))
}

func TestLoad_LogsFailures(t *testing.T) {
	origin := newFakeOrigin(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c, err := New(Config{Mode: ModeNetwork}, nil, zap.NewExample())
	require.NoError(t, err)

	_, err = c.LoadEncounters(context.Background(), origin.URL)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "encounters")
}
