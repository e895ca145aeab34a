// Command apiscout discovers candidate public API providers for a
// domain and persists ranked result sets as versioned artifacts.
package main

import (
	"fmt"
	"os"

	configfile "github.com/custodia-labs/apiscout-cli/internal/adapters/driven/config/file"
	querystorefile "github.com/custodia-labs/apiscout-cli/internal/adapters/driven/querystore/file"
	"github.com/custodia-labs/apiscout-cli/internal/adapters/driven/search/ratelimit"
	"github.com/custodia-labs/apiscout-cli/internal/adapters/driven/search/static"
	"github.com/custodia-labs/apiscout-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/apiscout-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/apiscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apiscout-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := configfile.LoadSettings(os.Getenv("APISCOUT_CONFIG_DIR"))
	if err != nil {
		return err
	}

	queryStore := querystorefile.NewQueryStore(settings.Discovery.DomainsDir, "")

	var provider driven.SearchProvider = static.NewProvider()
	if settings.Discovery.RequestsPerSecond > 0 {
		provider = ratelimit.NewProvider(provider, ratelimit.Config{
			RequestsPerSecond: settings.Discovery.RequestsPerSecond,
			BurstSize:         settings.Discovery.BurstSize,
		})
	}

	artifactStore, err := sqlite.NewStore(os.Getenv("APISCOUT_DATA_DIR"))
	if err != nil {
		return err
	}
	defer artifactStore.Close()

	discoverySettings := settings.DiscoverySettings()
	loader := services.NewQueryLoader(queryStore, discoverySettings.MaxQueries)
	ranker := services.NewRanker(services.NewWeightedScorer(settings.ScoringWeights()))
	discovery := services.NewDiscoveryService(loader, provider, ranker, artifactStore, discoverySettings)

	cli.SetQueryService(loader)
	cli.SetDiscoveryService(discovery)
	cli.SetArtifactService(services.NewArtifactBrowser(artifactStore))
	cli.SetQueriesPathResolver(queryStore.Path)

	return cli.Execute()
}
