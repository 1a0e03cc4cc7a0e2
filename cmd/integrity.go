package cmd

import (
	"context"
	"errors"
	"fmt"

	"dex-viewer/core/database"
	"dex-viewer/core/storage"
	"dex-viewer/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

type integrityChecks struct {
	structure  bool
	datasets   bool
	references bool
	mirror     bool
}

var allChecks = integrityChecks{structure: true, datasets: true, references: true, mirror: true}

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage, datasets and mirror",
	Long:  `Checks the bucket layout, the published datasets, the cross references between datasets and the mirror schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), allChecks)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the dataset folders and files in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{structure: true, datasets: true})
	},
}

// referencesCmd represents the integrity references command
var referencesCmd = &cobra.Command{
	Use:   "references",
	Short: "Check cross references between datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{references: true})
	},
}

// mirrorSchemaCmd represents the integrity mirror command
var mirrorSchemaCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Check the mirror database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), integrityChecks{mirror: true})
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, referencesCmd, mirrorSchemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, run integrityChecks) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	// Connect to Database (Optional)
	var db *gorm.DB
	if run.mirror {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}

	cat, origin, err := openCatalog(cfg, logg)
	if err != nil && run.references {
		return err
	}

	svc := integrity.NewService(integrity.Options{
		Client:  store,
		Storage: cfg.Storage,
		Catalog: cat,
		Origin:  cfg.Catalog.Origin,
		Server:  cfg.Server,
		DB:      db,
	}, logg)

	failed := false

	if run.structure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run with --fix to create missing folders.")
				failed = true
			}
		}
	}

	if run.datasets {
		logg.Info("Checking dataset files...")
		missing, err := svc.CheckDatasets(ctx)
		if err != nil {
			return fmt.Errorf("datasets check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Dataset files are present.")
		} else {
			logg.Warn("Missing dataset files detected", zap.Strings("missing", missing))
			logg.Info("Run publish to upload the datasets.")
			failed = true
		}
	}

	if run.references {
		logg.Info("Checking dataset references...")
		report, err := svc.CheckReferences(ctx, origin)
		if err != nil {
			return fmt.Errorf("references check failed: %w", err)
		}

		if report.Matched {
			logg.Info("Dataset references resolve.", zap.Any("checked", report.Checked))
		} else {
			for kind, problems := range report.Problems {
				logg.Warn("Broken references", zap.String("kind", kind), zap.Strings("problems", problems))
			}
			failed = true
		}
	}

	if run.mirror {
		logg.Info("Checking mirror schema integrity...", zap.String("driver", cfg.Database.Driver))
		report, err := svc.CheckMirror()
		switch {
		case errors.Is(err, integrity.ErrNotConfigured):
			logg.Warn("Mirror database not available, skipping schema check")
		case err != nil:
			return fmt.Errorf("mirror schema check failed: %w", err)
		case report.Matched:
			logg.Info("Mirror schema matches expected definition.")
		default:
			logg.Warn("Mirror schema mismatches found")
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			failed = true
		}
	}

	if failed {
		return errors.New("integrity checks reported problems")
	}
	return nil
}
