package cmd

import (
	"fmt"
	"time"

	"dex-viewer/feature/convert"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert game-data text files into dataset JSON",
	Long: `Reads pokemon.txt, moves.txt, items.txt and the other game-data files from --src
and writes one indexed {kind}.json per dataset into --dst, plus conversion-stats.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		src, _ := cmd.Flags().GetString("src")
		dst, _ := cmd.Flags().GetString("dst")
		workers, _ := cmd.Flags().GetInt("workers")

		_, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		conv := convert.NewConverter(logg)
		conv.Workers = workers

		stats, err := conv.ConvertDir(cmd.Context(), src, dst)
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}

		logg.Info("Conversion completed",
			zap.String("src", src),
			zap.String("dst", dst),
			zap.Int("converted", len(stats.Files)),
			zap.Strings("skipped", stats.Skipped),
			zap.Int("failed", len(stats.Failed)),
			zap.Duration("execution_time", time.Since(start)),
		)
		if len(stats.Failed) > 0 {
			return fmt.Errorf("%d datasets failed to convert", len(stats.Failed))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(convertCmd)
	convertCmd.Flags().String("src", "PBS", "Directory holding the game-data text files")
	convertCmd.Flags().String("dst", "assets/json", "Output directory for the JSON datasets")
	convertCmd.Flags().Int("workers", 4, "Datasets converted concurrently")
}
