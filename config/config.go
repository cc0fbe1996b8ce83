package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Flag-backed vars shared by all commands.
var (
	Network    string
	TxLimit    int // max recent transactions per profile
	GraphWidth int // concurrent per-name lookups while building a graph
	Debug      bool
)

const (
	DefaultTxLimit    = 10
	DefaultGraphWidth = 4
)

// Env var names for credentials that gate optional capabilities. A missing
// key means the capability is skipped (not configured), never an error.
const (
	CoinMarketCapAPIKeyVar = "COINMARKETCAP_API_KEY"
	SimAPIKeyVar           = "SIM_API_KEY"
)

// LoadEnvFile loads a .env file from the working directory when present so
// API keys can live next to the binary during development. Missing files are
// fine — real deployments set env vars directly.
func LoadEnvFile() {
	godotenv.Load()
}

func CoinMarketCapAPIKey() string {
	return strings.Trim(os.Getenv(CoinMarketCapAPIKeyVar), " ")
}

func SimAPIKey() string {
	return strings.Trim(os.Getenv(SimAPIKeyVar), " ")
}
