package mirror

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"time"

	"dex-viewer/core/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 100

// Service copies catalog datasets into SQL tables and compares them.
type Service struct {
	db      *gorm.DB
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewService creates a new mirror service.
func NewService(db *gorm.DB, cat *catalog.Catalog, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		catalog: cat,
		logger:  logger,
	}
}

// snapshot holds the rows derived from the catalog.
type snapshot struct {
	pokemon   []PokemonRow
	moves     []MoveRow
	items     []ItemRow
	types     []TypeRow
	abilities []AbilityRow
}

func (s *Service) snapshot(ctx context.Context, origin string) (*snapshot, error) {
	snap := &snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		idx, err := s.catalog.LoadPokemon(ctx, origin)
		if err != nil {
			return err
		}
		snap.pokemon = rows(idx.List, pokemonRow)
		return nil
	})
	g.Go(func() error {
		idx, err := s.catalog.LoadMoves(ctx, origin)
		if err != nil {
			return err
		}
		snap.moves = rows(idx.List, moveRow)
		return nil
	})
	g.Go(func() error {
		idx, err := s.catalog.LoadItems(ctx, origin)
		if err != nil {
			return err
		}
		snap.items = rows(idx.List, itemRow)
		return nil
	})
	g.Go(func() error {
		idx, err := s.catalog.LoadTypes(ctx, origin)
		if err != nil {
			return err
		}
		snap.types = rows(idx.List, typeRow)
		return nil
	})
	g.Go(func() error {
		idx, err := s.catalog.LoadAbilities(ctx, origin)
		if err != nil {
			return err
		}
		snap.abilities = rows(idx.List, abilityRow)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return snap, nil
}

// Migrate creates or updates the mirror tables.
func (s *Service) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate mirror tables: %w", err)
	}
	return nil
}

// SyncReport lists the rows written per table.
type SyncReport struct {
	Tables  map[string]int `json:"tables"`
	Pruned  map[string]int `json:"pruned,omitempty"`
	Took    string         `json:"took"`
	Started time.Time      `json:"started"`
}

// Sync upserts every catalog record into the mirror. With prune, rows whose
// id is no longer in the catalog are deleted.
func (s *Service) Sync(ctx context.Context, origin string, prune bool) (*SyncReport, error) {
	start := time.Now()

	snap, err := s.snapshot(ctx, origin)
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		return nil, err
	}

	report := &SyncReport{
		Tables:  make(map[string]int),
		Started: start,
	}
	if prune {
		report.Pruned = make(map[string]int)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := syncTable(tx, report, snap.pokemon, prune); err != nil {
			return err
		}
		if err := syncTable(tx, report, snap.moves, prune); err != nil {
			return err
		}
		if err := syncTable(tx, report, snap.items, prune); err != nil {
			return err
		}
		if err := syncTable(tx, report, snap.types, prune); err != nil {
			return err
		}
		return syncTable(tx, report, snap.abilities, prune)
	})
	if err != nil {
		return nil, fmt.Errorf("sync mirror: %w", err)
	}

	report.Took = time.Since(start).String()
	s.logger.Info("Mirror synced",
		zap.Any("tables", report.Tables),
		zap.Bool("prune", prune),
		zap.Duration("took", time.Since(start)))
	return report, nil
}

func syncTable[R any](tx *gorm.DB, report *SyncReport, list []R, prune bool) error {
	var zero R
	table := TableName(zero)

	if len(list) > 0 {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(list, batchSize).Error; err != nil {
			return fmt.Errorf("upsert %s: %w", table, err)
		}
	}
	report.Tables[table] = len(list)

	if !prune {
		return nil
	}

	ids := make([]int, 0, len(list))
	for _, r := range list {
		ids = append(ids, rowID(r))
	}
	query := tx.Where("1 = 1")
	if len(ids) > 0 {
		query = tx.Where("id NOT IN ?", ids)
	}
	res := query.Delete(&zero)
	if res.Error != nil {
		return fmt.Errorf("prune %s: %w", table, res.Error)
	}
	report.Pruned[table] = int(res.RowsAffected)
	return nil
}

// Mismatch names the columns of one row that differ from the catalog.
type Mismatch struct {
	ID      int      `json:"id"`
	Columns []string `json:"columns"`
}

// TableDiff compares one mirror table with the catalog.
type TableDiff struct {
	Table      string     `json:"table"`
	Missing    []int      `json:"missing"`
	Extra      []int      `json:"extra"`
	Mismatched []Mismatch `json:"mismatched"`
}

// Clean reports whether the table matches the catalog.
func (d TableDiff) Clean() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Mismatched) == 0
}

// DiffReport is the result of Diff.
type DiffReport struct {
	Matched bool        `json:"matched"`
	Tables  []TableDiff `json:"tables"`
}

// Diff compares every mirror table with the catalog: catalog records
// without a row are missing, rows without a record are extra.
func (s *Service) Diff(ctx context.Context, origin string) (*DiffReport, error) {
	snap, err := s.snapshot(ctx, origin)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	report := &DiffReport{Matched: true}
	add := func(d TableDiff, err error) error {
		if err != nil {
			return err
		}
		report.Tables = append(report.Tables, d)
		if !d.Clean() {
			report.Matched = false
		}
		return nil
	}

	if err := add(diffTable(db, snap.pokemon)); err != nil {
		return nil, err
	}
	if err := add(diffTable(db, snap.moves)); err != nil {
		return nil, err
	}
	if err := add(diffTable(db, snap.items)); err != nil {
		return nil, err
	}
	if err := add(diffTable(db, snap.types)); err != nil {
		return nil, err
	}
	if err := add(diffTable(db, snap.abilities)); err != nil {
		return nil, err
	}
	return report, nil
}

func diffTable[R comparable](db *gorm.DB, want []R) (TableDiff, error) {
	var zero R
	diff := TableDiff{
		Table:      TableName(zero),
		Missing:    []int{},
		Extra:      []int{},
		Mismatched: []Mismatch{},
	}

	var have []R
	if err := db.Find(&have).Error; err != nil {
		return diff, fmt.Errorf("read %s: %w", diff.Table, err)
	}

	stored := make(map[int]R, len(have))
	for _, r := range have {
		stored[rowID(r)] = r
	}

	seen := make(map[int]struct{}, len(want))
	for _, w := range want {
		id := rowID(w)
		seen[id] = struct{}{}
		got, ok := stored[id]
		if !ok {
			diff.Missing = append(diff.Missing, id)
			continue
		}
		if got != w {
			diff.Mismatched = append(diff.Mismatched, Mismatch{ID: id, Columns: changedColumns(w, got)})
		}
	}
	for id := range stored {
		if _, ok := seen[id]; !ok {
			diff.Extra = append(diff.Extra, id)
		}
	}
	sort.Ints(diff.Extra)
	return diff, nil
}

// rowID reads the ID field every mirror row carries.
func rowID(r any) int {
	v := reflect.Indirect(reflect.ValueOf(r))
	return int(v.FieldByName("ID").Int())
}

func changedColumns[R any](want, got R) []string {
	wv := reflect.ValueOf(want)
	gv := reflect.ValueOf(got)
	t := wv.Type()

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		if wv.Field(i).Interface() != gv.Field(i).Interface() {
			cols = append(cols, gormColumn(t.Field(i).Tag.Get("gorm")))
		}
	}
	return cols
}
