package pricer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const TIMEOUT time.Duration = 4 * time.Second

// CoinMarketCap fetches spot prices from the CoinMarketCap pro API. The
// aggregator treats it as optional: with no API key configured the price
// capability is skipped entirely.
type CoinMarketCap struct {
	Domain string
	APIKey string

	client *http.Client
}

func NewCoinMarketCap(apiKey string) *CoinMarketCap {
	return &CoinMarketCap{
		Domain: "https://pro-api.coinmarketcap.com",
		APIKey: apiKey,
		client: &http.Client{Timeout: TIMEOUT},
	}
}

func (c *CoinMarketCap) QuoteAPIURL(symbol string) string {
	return fmt.Sprintf(
		"%s/v1/cryptocurrency/quotes/latest?symbol=%s",
		c.Domain,
		symbol,
	)
}

// the price sits at data.<SYMBOL>.quote.USD.price
type quoteResponse struct {
	Data map[string]struct {
		Quote map[string]struct {
			Price *float64 `json:"price"`
		} `json:"quote"`
	} `json:"data"`
}

// Price returns the current USD price for symbol.
func (c *CoinMarketCap) Price(symbol string) (float64, error) {
	req, err := http.NewRequest(http.MethodGet, c.QuoteAPIURL(symbol), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("X-CMC_PRO_API_KEY", c.APIKey)
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("price lookup failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("price api returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	quotes := quoteResponse{}
	if err := json.Unmarshal(body, &quotes); err != nil {
		return 0, fmt.Errorf(
			"couldn't unmarshal %s to quote response, err: %w",
			string(body),
			err,
		)
	}
	entry, found := quotes.Data[symbol]
	if !found {
		return 0, fmt.Errorf("price api has no quote for %s", symbol)
	}
	usd, found := entry.Quote["USD"]
	if !found || usd.Price == nil {
		return 0, fmt.Errorf("price api has no USD quote for %s", symbol)
	}
	return *usd.Price, nil
}
