package cmd

import (
	"fmt"

	"dex-viewer/core/database"
	"dex-viewer/feature/mirror"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mirrorCmd represents the mirror command
var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Copy catalog datasets into the SQL mirror",
	Long:  `Maintains the relational mirror of pokemon, moves, items, types and abilities.`,
}

// mirrorSyncCmd represents the mirror sync command
var mirrorSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upsert every catalog record into the mirror",
	RunE: func(cmd *cobra.Command, args []string) error {
		prune, _ := cmd.Flags().GetBool("prune")

		svc, origin, logg, err := mirrorService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		report, err := svc.Sync(cmd.Context(), origin, prune)
		if err != nil {
			return err
		}
		logg.Info("Mirror sync completed",
			zap.Any("tables", report.Tables),
			zap.Any("pruned", report.Pruned),
			zap.String("execution_time", report.Took),
		)
		return nil
	},
}

// mirrorDiffCmd represents the mirror diff command
var mirrorDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the mirror with the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, origin, logg, err := mirrorService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		report, err := svc.Diff(cmd.Context(), origin)
		if err != nil {
			return err
		}

		if report.Matched {
			logg.Info("Mirror matches the catalog.")
			return nil
		}
		for _, d := range report.Tables {
			if d.Clean() {
				continue
			}
			logg.Warn("Mirror table differs",
				zap.String("table", d.Table),
				zap.Ints("missing", d.Missing),
				zap.Ints("extra", d.Extra),
				zap.Int("mismatched", len(d.Mismatched)),
			)
		}
		return fmt.Errorf("mirror differs from the catalog")
	},
}

func mirrorService() (*mirror.Service, string, *zap.Logger, error) {
	cfg, logg, err := setup()
	if err != nil {
		return nil, "", nil, err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, "", nil, fmt.Errorf("database connection required: %w", err)
	}

	cat, origin, err := openCatalog(cfg, logg)
	if err != nil {
		return nil, "", nil, err
	}
	return mirror.NewService(db, cat, logg), origin, logg, nil
}

func init() {
	RootCmd.AddCommand(mirrorCmd)
	mirrorCmd.AddCommand(mirrorSyncCmd, mirrorDiffCmd)
	mirrorSyncCmd.Flags().Bool("prune", false, "Delete rows whose id is no longer in the catalog")
}
