package integrity

import (
	"context"
	"errors"
	"fmt"

	"dex-viewer/core/catalog"
	"dex-viewer/core/server"
	"dex-viewer/core/storage"
	"dex-viewer/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrNotConfigured is returned by a check whose backend is not available.
var ErrNotConfigured = errors.New("check not configured")

// Options holds the backends the checks run against. Any of them may be
// nil; checks that need a missing backend return ErrNotConfigured.
type Options struct {
	Client  storage.Client
	Storage storage.Config
	Catalog *catalog.Catalog
	// Origin overrides Server.BaseURL for network mode loads.
	Origin string
	Server server.Config
	DB     *gorm.DB
}

// Service handles integrity checks.
type Service struct {
	opts   Options
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options, logger *zap.Logger) *Service {
	return &Service{
		opts:   opts,
		logger: logger,
	}
}

// Origin returns the configured dataset origin.
func (s *Service) Origin() string {
	return s.opts.Server.OriginFor(s.opts.Origin)
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.opts.Client == nil {
		return nil, fmt.Errorf("structure: %w", ErrNotConfigured)
	}
	return checks.CheckStructure(ctx, s.opts.Client, s.opts.Storage.Bucket, s.opts.Storage.Prefix)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.opts.Client == nil {
		return fmt.Errorf("structure: %w", ErrNotConfigured)
	}
	return checks.FixStructure(ctx, s.opts.Client, s.opts.Storage.Bucket, s.logger, missing)
}

// CheckDatasets returns the dataset files missing from the bucket.
func (s *Service) CheckDatasets(ctx context.Context) ([]string, error) {
	if s.opts.Client == nil {
		return nil, fmt.Errorf("datasets: %w", ErrNotConfigured)
	}
	return checks.CheckDatasets(ctx, s.opts.Client, s.opts.Storage.Bucket, s.opts.Storage.Prefix)
}

// CheckReferences loads every dataset and verifies their cross references.
// A dataset that fails to load fails the check.
func (s *Service) CheckReferences(ctx context.Context, origin string) (*checks.ReferenceReport, error) {
	cat := s.opts.Catalog
	if cat == nil {
		return nil, fmt.Errorf("references: %w", ErrNotConfigured)
	}

	var d checks.Datasets
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Pokemon, err = cat.LoadPokemon(ctx, origin)
		return err
	})
	g.Go(func() (err error) {
		d.Moves, err = cat.LoadMoves(ctx, origin)
		return err
	})
	g.Go(func() (err error) {
		d.Items, err = cat.LoadItems(ctx, origin)
		return err
	})
	g.Go(func() (err error) {
		d.Trainers, err = cat.LoadTrainers(ctx, origin)
		return err
	})
	g.Go(func() (err error) {
		d.TrainerTypes, err = cat.LoadTrainerTypes(ctx, origin)
		return err
	})
	g.Go(func() (err error) {
		d.Encounters, err = cat.LoadEncounters(ctx, origin)
		return err
	})
	g.Go(func() (err error) {
		d.Types, err = cat.LoadTypes(ctx, origin)
		return err
	})
	g.Go(func() (err error) {
		d.Abilities, err = cat.LoadAbilities(ctx, origin)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	report := checks.CheckReferences(d)
	if !report.Matched {
		s.logger.Warn("Broken dataset references", zap.Any("problems", report.Problems))
	}
	return report, nil
}

// CheckMirror validates the mirror table schema.
func (s *Service) CheckMirror() (*checks.MirrorReport, error) {
	if s.opts.DB == nil {
		return nil, fmt.Errorf("mirror: %w", ErrNotConfigured)
	}
	return checks.CheckMirror(s.opts.DB), nil
}
