package cmd

import (
	"fmt"

	"dex-viewer/core/storage"
	"dex-viewer/feature/assets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload dataset JSON files to the storage bucket",
	Long:  `Uploads every *.json file of --dir to the configured bucket under the storage prefix (data/json by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		prune, _ := cmd.Flags().GetBool("prune")

		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		report, err := assets.Publish(cmd.Context(), client, cfg.Storage, dir, prune, logg)
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}

		logg.Info("Datasets published",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.Int("uploaded", len(report.Uploaded)),
			zap.Strings("removed", report.Removed),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
	publishCmd.Flags().String("dir", "assets/json", "Directory holding the dataset JSON files")
	publishCmd.Flags().Bool("prune", false, "Remove JSON objects that have no local file")
}
