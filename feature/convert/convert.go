package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"dex-viewer/core/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StatsFile is written next to the datasets by ConvertDir.
const StatsFile = "conversion-stats.json"

// TournamentFiles are the tournament rosters converted when present.
var TournamentFiles = []string{
	"pikacuptr.txt", "pikacuppm.txt",
	"pokecuptr.txt", "pokecuppm.txt",
	"littlecuptr.txt", "littlecuppm.txt",
	"fancycuptr.txt", "fancycuppm.txt",
	"fancycupsingletr.txt", "fancycupsinglepm.txt",
}

// FileStats describes one converted dataset.
type FileStats struct {
	Count        int   `json:"count"`
	OriginalSize int64 `json:"originalSize"`
	JSONSize     int64 `json:"jsonSize"`
}

// Stats is the content of conversion-stats.json.
type Stats struct {
	Timestamp time.Time            `json:"timestamp"`
	Files     map[string]FileStats `json:"files"`
	Skipped   []string             `json:"skipped,omitempty"`
	Failed    map[string]string    `json:"failed,omitempty"`
}

type parser func(content string) (any, int, error)

type job struct {
	kind  string
	file  string
	parse parser
}

func jobs() []job {
	list := []job{
		{catalog.KindPokemon, "pokemon.txt", wrap(ParsePokemon)},
		{catalog.KindMoves, "moves.txt", wrapErr(ParseMoves)},
		{catalog.KindItems, "items.txt", wrapErr(ParseItems)},
		{catalog.KindTrainers, "trainers.txt", func(c string) (any, int, error) {
			idx := ParseTrainers(c)
			return idx, idx.Len(), nil
		}},
		{catalog.KindTrainerTypes, "trainertypes.txt", wrapErr(ParseTrainerTypes)},
		{catalog.KindEncounters, "encounters.txt", wrap(ParseEncounters)},
		{catalog.KindTypes, "types.txt", wrap(ParseTypes)},
		{catalog.KindAbilities, "abilities.txt", wrapErr(ParseAbilities)},
	}
	for _, file := range TournamentFiles {
		list = append(list, job{file[:len(file)-len(".txt")], file, wrap(ParseTournament)})
	}
	return list
}

func wrap[K comparable, T any](parse func(string) *catalog.Index[K, T]) parser {
	return func(c string) (any, int, error) {
		idx := parse(c)
		return idx, idx.Len(), nil
	}
}

func wrapErr[K comparable, T any](parse func(string) (*catalog.Index[K, T], error)) parser {
	return func(c string) (any, int, error) {
		idx, err := parse(c)
		if err != nil {
			return nil, 0, err
		}
		return idx, idx.Len(), nil
	}
}

// Converter converts a directory of game-data files.
type Converter struct {
	logger *zap.Logger
	// Workers bounds the datasets converted concurrently.
	Workers int
}

// NewConverter creates a converter.
func NewConverter(logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{logger: logger, Workers: 4}
}

// ConvertDir converts every known file of src into dst. A failing dataset
// is logged and recorded in the returned stats; the others still convert.
func (c *Converter) ConvertDir(ctx context.Context, src, dst string) (*Stats, error) {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	stats := &Stats{
		Timestamp: time.Now().UTC(),
		Files:     make(map[string]FileStats),
		Failed:    make(map[string]string),
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Workers, 1))

	for _, j := range jobs() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			st, err := c.convertFile(filepath.Join(src, j.file), filepath.Join(dst, j.kind+".json"), j.parse)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, errSkipped):
				c.logger.Debug("Skipping dataset, input not found", zap.String("kind", j.kind), zap.String("file", j.file))
				stats.Skipped = append(stats.Skipped, j.kind)
			case err != nil:
				c.logger.Error("Dataset conversion failed", zap.String("kind", j.kind), zap.Error(err))
				stats.Failed[j.kind] = err.Error()
			default:
				c.logger.Info("Converted dataset", zap.String("kind", j.kind), zap.Int("count", st.Count))
				stats.Files[j.kind] = st
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(stats.Skipped)

	if err := writeJSON(filepath.Join(dst, StatsFile), stats); err != nil {
		return nil, fmt.Errorf("write %s: %w", StatsFile, err)
	}
	return stats, nil
}

var errSkipped = errors.New("input not found")

func (c *Converter) convertFile(in, out string, parse parser) (FileStats, error) {
	raw, err := os.ReadFile(in)
	if errors.Is(err, fs.ErrNotExist) {
		return FileStats{}, errSkipped
	}
	if err != nil {
		return FileStats{}, err
	}

	data, count, err := parse(string(raw))
	if err != nil {
		return FileStats{}, fmt.Errorf("parse %s: %w", filepath.Base(in), err)
	}
	if err := writeJSON(out, data); err != nil {
		return FileStats{}, err
	}

	info, err := os.Stat(out)
	if err != nil {
		return FileStats{}, err
	}
	return FileStats{Count: count, OriginalSize: int64(len(raw)), JSONSize: info.Size()}, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
