package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"dex-viewer/core/catalog"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:       "search <pokemon|moves|items|trainers> <query>",
	Short:     "Search a dataset and print the matches as JSON",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{catalog.KindPokemon, catalog.KindMoves, catalog.KindItems, catalog.KindTrainers},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, query := args[0], args[1]

		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		cat, origin, err := openCatalog(cfg, logg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		var result any
		switch kind {
		case catalog.KindPokemon:
			if _, err := cat.LoadPokemon(ctx, origin); err != nil {
				return err
			}
			result = cat.SearchPokemon(query)
		case catalog.KindMoves:
			if _, err := cat.LoadMoves(ctx, origin); err != nil {
				return err
			}
			result = cat.SearchMoves(query)
		case catalog.KindItems:
			if _, err := cat.LoadItems(ctx, origin); err != nil {
				return err
			}
			result = cat.SearchItems(query)
		case catalog.KindTrainers:
			if _, err := cat.LoadTrainers(ctx, origin); err != nil {
				return err
			}
			result = cat.SearchTrainers(query)
		default:
			return fmt.Errorf("unknown kind %q, expected one of %s", kind, strings.Join(cmd.ValidArgs, ", "))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
}
