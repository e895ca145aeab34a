package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

var queriesCmd = &cobra.Command{
	Use:   "queries <domain>",
	Short: "Show the validated query set for a domain",
	Long: `Queries loads and validates the curated query set for the given
domain and prints each query on its own line, in file order. The same
validation rules apply as during discovery, so a domain that prints
here will also pass the query stage of a discovery run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if queryService == nil {
			return fmt.Errorf("%w: query service not configured", domain.ErrConfiguration)
		}

		qs, err := queryService.Load(cmd.Context(), domain.Domain(args[0]))
		if err != nil {
			return err
		}

		for i, q := range qs.Queries() {
			cmd.Printf("%d. %s\n", i+1, q)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queriesCmd)
}
