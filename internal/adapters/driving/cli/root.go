// Package cli implements the cobra command surface for apiscout.
// Commands are thin: they parse flags, call driving ports, and format
// output. All wiring happens in cmd/apiscout before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/apiscout-cli/internal/core/domain"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/apiscout-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Services injected by the composition root.
var (
	discoveryService driving.DiscoveryService
	queryService     driving.QueryService
	artifactService  driving.ArtifactService

	// queriesPath resolves a domain to its queries file, used by the
	// watch command.
	queriesPath func(domain.Domain) string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "apiscout",
	Short: "Discover candidate public API providers for a domain",
	Long: `apiscout runs the API discovery pipeline: it loads the curated
search queries for a domain, dispatches them to the configured search
provider, ranks the returned candidates by relevance and authority
signals, and persists the ranked result set as a versioned artifact.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetDiscoveryService injects the discovery orchestrator.
func SetDiscoveryService(s driving.DiscoveryService) {
	discoveryService = s
}

// SetQueryService injects the query loader.
func SetQueryService(s driving.QueryService) {
	queryService = s
}

// SetArtifactService injects the artifact browser.
func SetArtifactService(s driving.ArtifactService) {
	artifactService = s
}

// SetQueriesPathResolver injects the queries file resolver used by the
// watch command.
func SetQueriesPathResolver(fn func(domain.Domain) string) {
	queriesPath = fn
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
