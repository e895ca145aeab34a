package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

var discoverJSON bool

var discoverCmd = &cobra.Command{
	Use:   "discover <domain>",
	Short: "Run the discovery pipeline for a domain",
	Long: `Discover loads the curated queries for the given domain, runs each
query against the configured search provider, ranks the merged results,
and persists the ranked candidate set as a new artifact.

On success it prints a one-line summary with the domain, the number of
ranked candidates, and the key of the persisted artifact.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if discoveryService == nil {
			return fmt.Errorf("%w: discovery service not configured", domain.ErrConfiguration)
		}

		d := domain.Domain(args[0])
		artifact, key, err := discoveryService.Discover(cmd.Context(), d)
		if err != nil {
			return err
		}

		if discoverJSON {
			out, err := json.MarshalIndent(artifact, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding artifact: %w", err)
			}
			cmd.Println(string(out))
			return nil
		}

		cmd.Printf("domain=%s candidates=%d artifact=%s\n", artifact.Domain, len(artifact.Candidates), key)
		return nil
	},
}

func init() {
	discoverCmd.Flags().BoolVar(&discoverJSON, "json", false, "print the full artifact as JSON")
	rootCmd.AddCommand(discoverCmd)
}
