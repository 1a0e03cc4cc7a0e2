package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Dataset kinds served under /data/json.
const (
	KindPokemon      = "pokemon"
	KindMoves        = "moves"
	KindItems        = "items"
	KindTrainers     = "trainers"
	KindTrainerTypes = "trainertypes"
	KindEncounters   = "encounters"
	KindTypes        = "types"
	KindAbilities    = "abilities"
)

// Kinds lists the core dataset kinds.
var Kinds = []string{
	KindPokemon,
	KindMoves,
	KindItems,
	KindTrainers,
	KindTrainerTypes,
	KindEncounters,
	KindTypes,
	KindAbilities,
}

// IsCoreKind reports whether kind names one of the core datasets.
func IsCoreKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Catalog is the process-wide dataset cache. The zero value is not usable;
// construct it with New and share the instance.
type Catalog struct {
	mode   string
	bundle fs.FS
	client *http.Client
	logger *zap.Logger

	mu sync.RWMutex
	// entries is the network cache, static the memo of decoded bundle files.
	// Each holds *Index / *TrainerIndex values keyed by kind.
	entries map[string]any
	static  map[string]any
	// gen is bumped by Clear so that flights started before it do not
	// repopulate the cache.
	gen   uint64
	group *singleflight.Group
}

// New creates a catalog. bundle is required in static mode and is the
// directory holding {kind}.json files.
func New(cfg Config, bundle fs.FS, logger *zap.Logger) (*Catalog, error) {
	if !cfg.IsValidMode() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
	if cfg.Mode == ModeStatic && bundle == nil {
		return nil, errors.New("static mode requires a dataset bundle")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Catalog{
		mode:    cfg.Mode,
		bundle:  bundle,
		client:  newHTTPClient(cfg.TimeoutSeconds),
		logger:  logger,
		entries: make(map[string]any),
		static:  make(map[string]any),
		group:   new(singleflight.Group),
	}, nil
}

// Mode returns the execution mode of the catalog.
func (c *Catalog) Mode() string {
	return c.mode
}

// Clear drops every cached dataset and detaches in-flight loads.
// Loads already running still answer their callers but are not cached.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]any)
	c.static = make(map[string]any)
	c.gen++
	c.group = new(singleflight.Group)
}

// DatasetURL builds the fetch target {origin}/data/json/{kind}.json.
func DatasetURL(origin, kind string) (string, error) {
	if origin == "" {
		return "", errors.New("empty origin")
	}
	return url.JoinPath(origin, "data", "json", kind+".json")
}

func newHTTPClient(timeoutSeconds int) *http.Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	timeout := time.Duration(timeoutSeconds) * time.Second

	// Only connection setup and the first response byte are bounded; the
	// body transfer itself is not.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Transport: transport}
}

// lookup returns the dataset visible to accessors: the network cache in
// network mode, the decoded bundle memo in static mode.
func lookup[T any](c *Catalog, kind string) (*T, bool) {
	c.mu.RLock()
	src := c.entries
	if c.mode == ModeStatic {
		src = c.static
	}
	v, ok := src[kind]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	t, ok := v.(*T)
	return t, ok
}

func cachedNetwork[T any](c *Catalog, kind string) (*T, bool) {
	c.mu.RLock()
	v, ok := c.entries[kind]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	t, ok := v.(*T)
	return t, ok
}

// load returns the dataset of kind, loading it at most once per process.
func load[T any](ctx context.Context, c *Catalog, kind, origin string, normalize func(*T)) (*T, error) {
	if c.mode == ModeStatic {
		return loadStatic(c, kind, normalize)
	}

	if v, ok := cachedNetwork[T](c, kind); ok {
		return v, nil
	}

	c.mu.RLock()
	group, gen := c.group, c.gen
	c.mu.RUnlock()

	// Started loads run to completion for every waiter.
	ctx = context.WithoutCancel(ctx)

	res, err, _ := group.Do(kind, func() (any, error) {
		// A flight that finished between our cache miss and Do already stored it.
		if v, ok := cachedNetwork[T](c, kind); ok {
			return v, nil
		}

		start := time.Now()
		c.logger.Debug("Loading dataset", zap.String("kind", kind), zap.String("origin", origin))

		data := new(T)
		if err := c.fetch(ctx, kind, origin, data); err != nil {
			c.logger.Warn("Dataset load failed", zap.String("kind", kind), zap.Error(err))
			return nil, err
		}
		if normalize != nil {
			normalize(data)
		}

		c.mu.Lock()
		if c.gen == gen {
			c.entries[kind] = data
		}
		c.mu.Unlock()

		c.logger.Debug("Dataset loaded",
			zap.String("kind", kind),
			zap.Duration("took", time.Since(start)))
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*T), nil
}

func loadStatic[T any](c *Catalog, kind string, normalize func(*T)) (*T, error) {
	c.mu.RLock()
	v, ok := c.static[kind]
	c.mu.RUnlock()
	if ok {
		if t, ok := v.(*T); ok {
			return t, nil
		}
	}

	f, err := c.bundle.Open(kind + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: open bundled %s: %w", ErrLoadFailed, kind, err)
	}
	defer f.Close()

	data := new(T)
	if err := json.NewDecoder(f).Decode(data); err != nil {
		return nil, fmt.Errorf("%w: decode bundled %s: %w", ErrLoadFailed, kind, err)
	}
	if normalize != nil {
		normalize(data)
	}

	// The first decode to finish wins so every caller shares one value.
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.static[kind]; ok {
		if t, ok := v.(*T); ok {
			return t, nil
		}
	}
	c.static[kind] = data

	return data, nil
}

func (c *Catalog) fetch(ctx context.Context, kind, origin string, out any) error {
	target, err := DatasetURL(origin, kind)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadFailed, kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadFailed, kind, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadFailed, kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %w", ErrLoadFailed, &StatusError{Kind: kind, URL: target, StatusCode: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrLoadFailed, kind, err)
	}
	return nil
}
