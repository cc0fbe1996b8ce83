package portfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	enscommon "github.com/tranvictor/enslens/common"
)

const TIMEOUT time.Duration = 4 * time.Second

// SimClient fetches token holdings from the Sim (Dune) balances API. Like the
// price provider it is an optional capability gated on an API key.
type SimClient struct {
	ChainID uint64
	Domain  string
	APIKey  string

	client *http.Client
}

func NewSimClient(chainID uint64, apiKey string) *SimClient {
	return &SimClient{
		ChainID: chainID,
		Domain:  "https://api.sim.dune.com/v1/evm",
		APIKey:  apiKey,
		client:  &http.Client{Timeout: TIMEOUT},
	}
}

func (s *SimClient) BalancesAPIURL(address string, excludeSpam bool) string {
	return fmt.Sprintf(
		"%s/balances/%s?chain_ids=%d&exclude_spam_tokens=%t",
		s.Domain,
		address,
		s.ChainID,
		excludeSpam,
	)
}

type simBalanceRecord struct {
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Amount   string   `json:"amount"`
	Decimals *uint64  `json:"decimals"`
	ValueUSD *float64 `json:"value_usd"`
	PriceUSD *float64 `json:"price_usd"`
}

type simBalancesResponse struct {
	Balances []simBalanceRecord `json:"balances"`
}

// Holdings returns the address's token balances. Records without an amount
// are dropped; records without decimals keep their raw amount as the display
// amount (the provider already scaled those).
func (s *SimClient) Holdings(address string, excludeSpam bool) ([]enscommon.TokenBalance, error) {
	req, err := http.NewRequest(http.MethodGet, s.BalancesAPIURL(address, excludeSpam), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Sim-Api-Key", s.APIKey)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holdings lookup failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("balances api returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	response := simBalancesResponse{}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf(
			"couldn't unmarshal %s to balances response, err: %w",
			string(body),
			err,
		)
	}

	holdings := []enscommon.TokenBalance{}
	for _, r := range response.Balances {
		if r.Amount == "" {
			enscommon.DebugPrintf("dropping malformed balance record for %s: %+v\n", address, r)
			continue
		}
		raw, ok := new(big.Int).SetString(r.Amount, 10)
		if !ok {
			enscommon.DebugPrintf("dropping non-numeric balance record for %s: %+v\n", address, r)
			continue
		}
		holdings = append(holdings, enscommon.NewTokenBalance(
			r.Symbol, r.Name, raw, r.Decimals, r.PriceUSD, r.ValueUSD,
		))
	}
	return holdings, nil
}
