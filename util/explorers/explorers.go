package explorers

import (
	"math/big"
	"os"
	"strings"

	enscommon "github.com/tranvictor/enslens/common"
	"github.com/tranvictor/enslens/networks"
)

// BlockExplorer is the read surface the profile aggregator needs from a
// block explorer service.
type BlockExplorer interface {
	NativeBalance(address string) (*big.Int, error)
	InternalTransactions(address string, limit int) ([]enscommon.Transaction, error)
	AddressNametag(address string) (string, error)
}

// Etherscan's default shared key, rate-limited. Set the network's API key env
// var to use your own.
const defaultEtherscanAPIKey = "UBB257TI824FC7HUSPT66KZUMGBPRN3IWV"

// NewExplorerForNetwork builds an etherscan-V2-alike client for the given
// network, taking the API key from the network's env var when set.
func NewExplorerForNetwork(network networks.Network) *EtherscanLikeExplorer {
	apiKey := strings.Trim(os.Getenv(network.GetBlockExplorerAPIKeyVariableName()), " ")
	if apiKey == "" {
		apiKey = defaultEtherscanAPIKey
	}
	return NewEtherscanLikeExplorer(network.GetChainID(), network.GetBlockExplorerAPIURL(), apiKey)
}
