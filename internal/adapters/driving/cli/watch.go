package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/logger"
	"github.com/custodia-labs/apiscout-cli/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <domain>",
	Short: "Re-run discovery whenever the domain's queries file changes",
	Long: `Watch runs discovery for the given domain immediately, then watches
its queries file and re-runs discovery after each change. Every run
persists a new artifact; earlier artifacts are never overwritten.

The command blocks until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if discoveryService == nil {
			return fmt.Errorf("%w: discovery service not configured", domain.ErrConfiguration)
		}
		if queriesPath == nil {
			return fmt.Errorf("%w: queries path resolver not configured", domain.ErrConfiguration)
		}

		d := domain.Domain(args[0])
		if err := d.Validate(); err != nil {
			return err
		}

		run := func() {
			artifact, key, err := discoveryService.Discover(cmd.Context(), d)
			if err != nil {
				logger.Warn("discovery failed: %v", err)
				return
			}
			cmd.Printf("domain=%s candidates=%d artifact=%s\n", artifact.Domain, len(artifact.Candidates), key)
		}

		run()

		path := queriesPath(d)
		logger.Info("watching %s", path)
		return watcher.New(path, run).Watch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
