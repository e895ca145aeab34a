package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
)

var artifactsJSON bool

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Browse persisted discovery artifacts",
}

var artifactsListCmd = &cobra.Command{
	Use:   "list <domain>",
	Short: "List artifact keys for a domain, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if artifactService == nil {
			return fmt.Errorf("%w: artifact service not configured", domain.ErrConfiguration)
		}

		keys, err := artifactService.List(cmd.Context(), domain.Domain(args[0]))
		if err != nil {
			return err
		}

		for _, key := range keys {
			cmd.Println(key.String())
		}
		return nil
	},
}

var artifactsShowCmd = &cobra.Command{
	Use:   "show <domain> [seq]",
	Short: "Show one artifact, or the latest when seq is omitted",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if artifactService == nil {
			return fmt.Errorf("%w: artifact service not configured", domain.ErrConfiguration)
		}

		var seq int64
		if len(args) == 2 {
			parsed, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || parsed <= 0 {
				return fmt.Errorf("%w: seq must be a positive integer, got %q", domain.ErrInvalidInput, args[1])
			}
			seq = parsed
		}

		artifact, key, err := artifactService.Get(cmd.Context(), domain.Domain(args[0]), seq)
		if err != nil {
			return err
		}

		if artifactsJSON {
			out, err := json.MarshalIndent(artifact, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding artifact: %w", err)
			}
			cmd.Println(string(out))
			return nil
		}

		cmd.Printf("artifact %s (run %s, created %s)\n", key, artifact.RunID, artifact.CreatedAt.Format("2006-01-02 15:04:05 UTC"))
		for _, c := range artifact.Candidates {
			cmd.Printf("%3d. [%.3f] %s\n", c.Rank, c.Score, c.URL)
			if c.Title != "" {
				cmd.Printf("     %s\n", c.Title)
			}
		}
		return nil
	},
}

func init() {
	artifactsShowCmd.Flags().BoolVar(&artifactsJSON, "json", false, "print the artifact as JSON")
	artifactsCmd.AddCommand(artifactsListCmd)
	artifactsCmd.AddCommand(artifactsShowCmd)
	rootCmd.AddCommand(artifactsCmd)
}
