package networks

var Matic Network = matic{}

type matic struct{}

func (self matic) GetName() string {
	return "polygon"
}

func (self matic) GetChainID() uint64 {
	return 137
}

func (self matic) GetAlternativeNames() []string {
	return []string{"matic"}
}

func (self matic) GetNativeTokenSymbol() string {
	return "POL"
}

func (self matic) GetNativeTokenDecimal() uint64 {
	return 18
}

func (self matic) GetNodeVariableName() string {
	return "POLYGON_MAINNET_NODE"
}

func (self matic) GetDefaultNodes() map[string]string {
	return map[string]string{
		"polygon-rpc": "https://polygon-rpc.com",
	}
}

func (self matic) GetBlockExplorerAPIKeyVariableName() string {
	return "ETHERSCAN_API_KEY"
}

func (self matic) GetBlockExplorerAPIURL() string {
	return "https://api.etherscan.io/v2/api"
}
