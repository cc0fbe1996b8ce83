package networks

var BSCMainnet Network = bscMainnet{}

// bscMainnet goes through the same etherscan V2 endpoint as mainnet, only the
// chainid query param differs.
type bscMainnet struct{}

func (self bscMainnet) GetName() string {
	return "bsc"
}

func (self bscMainnet) GetChainID() uint64 {
	return 56
}

func (self bscMainnet) GetAlternativeNames() []string {
	return []string{"binance"}
}

func (self bscMainnet) GetNativeTokenSymbol() string {
	return "BNB"
}

func (self bscMainnet) GetNativeTokenDecimal() uint64 {
	return 18
}

func (self bscMainnet) GetNodeVariableName() string {
	return "BSC_MAINNET_NODE"
}

func (self bscMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"binance": "https://bsc-dataseed.binance.org",
	}
}

func (self bscMainnet) GetBlockExplorerAPIKeyVariableName() string {
	return "ETHERSCAN_API_KEY"
}

func (self bscMainnet) GetBlockExplorerAPIURL() string {
	return "https://api.etherscan.io/v2/api"
}
