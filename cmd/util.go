package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/tranvictor/enslens/config"
	"github.com/tranvictor/enslens/networks"
	"github.com/tranvictor/enslens/profile"
	"github.com/tranvictor/enslens/util/explorers"
	"github.com/tranvictor/enslens/util/portfolio"
	"github.com/tranvictor/enslens/util/pricer"
	"github.com/tranvictor/enslens/util/resolver"
)

func currentNetwork() (networks.Network, error) {
	return networks.GetNetwork(config.Network)
}

// resolverNodes returns the JSON-RPC endpoints used for ENS resolution. ENS
// lives on Ethereum mainnet regardless of which chain profile data is
// fetched from, so this always uses mainnet nodes. A custom node set via the
// mainnet node env var takes precedence over the defaults.
func resolverNodes() map[string]string {
	mainnet := networks.EthereumMainnet
	if custom := strings.Trim(os.Getenv(mainnet.GetNodeVariableName()), " "); custom != "" {
		return map[string]string{"custom-node": custom}
	}
	return mainnet.GetDefaultNodes()
}

// newAggregator wires the aggregator for the given network. The price and
// portfolio providers are only attached when their API keys are configured;
// without them the corresponding profile fields report "not configured"
// instead of failing.
func newAggregator(network networks.Network) (*profile.Aggregator, error) {
	ensResolver, err := resolver.NewResolver(resolverNodes())
	if err != nil {
		return nil, fmt.Errorf("couldn't create ENS resolver: %w", err)
	}
	explorer := explorers.NewExplorerForNetwork(network)

	var prices profile.PriceProvider
	if key := config.CoinMarketCapAPIKey(); key != "" {
		prices = pricer.NewCoinMarketCap(key)
	}
	var holdings profile.PortfolioProvider
	if key := config.SimAPIKey(); key != "" {
		holdings = portfolio.NewSimClient(network.GetChainID(), key)
	}

	return profile.NewAggregator(
		network,
		ensResolver,
		explorer,
		explorer,
		explorer,
		prices,
		holdings,
		config.TxLimit,
		resolver.DefaultTextKeys,
	), nil
}
