package networks

var EthereumMainnet Network = ethereumMainnet{}

type ethereumMainnet struct{}

func (self ethereumMainnet) GetName() string {
	return "mainnet"
}

func (self ethereumMainnet) GetChainID() uint64 {
	return 1
}

func (self ethereumMainnet) GetAlternativeNames() []string {
	return []string{"ethereum", "eth"}
}

func (self ethereumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self ethereumMainnet) GetNativeTokenDecimal() uint64 {
	return 18
}

func (self ethereumMainnet) GetNodeVariableName() string {
	return "ETHEREUM_MAINNET_NODE"
}

func (self ethereumMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-cloudflare": "https://cloudflare-eth.com",
		"mainnet-public":     "https://ethereum-rpc.publicnode.com",
	}
}

func (self ethereumMainnet) GetBlockExplorerAPIKeyVariableName() string {
	return "ETHERSCAN_API_KEY"
}

func (self ethereumMainnet) GetBlockExplorerAPIURL() string {
	return "https://api.etherscan.io/v2/api"
}
