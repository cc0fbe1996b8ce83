package explorers

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sort"
	"time"

	enscommon "github.com/tranvictor/enslens/common"
)

const TIMEOUT time.Duration = 4 * time.Second

type EtherscanLikeExplorer struct {
	ChainID uint64

	Domain string
	APIKey string

	client *http.Client
}

func NewEtherscanLikeExplorer(chainID uint64, domain string, apiKey string) *EtherscanLikeExplorer {
	return &EtherscanLikeExplorer{
		ChainID: chainID,
		Domain:  domain,
		APIKey:  apiKey,
		client:  &http.Client{Timeout: TIMEOUT},
	}
}

// etherscanResponse is the V2 JSON envelope. Result is either a string-encoded
// integer (balance), a list (tx history), or an object (nametag), so it stays
// raw until the caller knows what to expect.
type etherscanResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func (ee *EtherscanLikeExplorer) get(url string) (*etherscanResponse, error) {
	resp, err := ee.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("explorer returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	response := etherscanResponse{}
	err = json.Unmarshal(body, &response)
	if err != nil {
		return nil, fmt.Errorf(
			"couldn't unmarshal %s to explorer response, err: %w",
			string(body),
			err,
		)
	}
	return &response, nil
}

func (ee *EtherscanLikeExplorer) BalanceAPIURL(address string) string {
	return fmt.Sprintf(
		"%s?chainid=%d&module=account&action=balance&address=%s&tag=latest&apikey=%s",
		ee.Domain,
		ee.ChainID,
		address,
		ee.APIKey,
	)
}

// NativeBalance returns the address's balance in the chain's smallest unit.
// An empty or missing result field means a fresh address with no history and
// reports 0, not an error. Transport failures and non-2xx responses are
// returned as errors for the aggregator to classify.
func (ee *EtherscanLikeExplorer) NativeBalance(address string) (*big.Int, error) {
	response, err := ee.get(ee.BalanceAPIURL(address))
	if err != nil {
		return nil, fmt.Errorf("explorer balance lookup failed: %w", err)
	}
	var result string
	if len(response.Result) > 0 {
		if err := json.Unmarshal(response.Result, &result); err != nil {
			return nil, fmt.Errorf("unexpected balance result %s: %w", string(response.Result), err)
		}
	}
	if result == "" {
		return big.NewInt(0), nil
	}
	balance, ok := big.NewInt(0).SetString(result, 10)
	if !ok {
		return nil, fmt.Errorf("explorer returned non-numeric balance %q: %s", result, response.Message)
	}
	return balance, nil
}

func (ee *EtherscanLikeExplorer) InternalTxAPIURL(address string, limit int) string {
	return fmt.Sprintf(
		"%s?chainid=%d&module=account&action=txlistinternal&address=%s&startblock=0&endblock=99999999&page=1&offset=%d&sort=desc&apikey=%s",
		ee.Domain,
		ee.ChainID,
		address,
		limit,
		ee.APIKey,
	)
}

type internalTxRecord struct {
	Hash      string `json:"hash"`
	From      string `json:"from"`
	To        string `json:"to"`
	Value     string `json:"value"`
	TimeStamp string `json:"timeStamp"`
}

// InternalTransactions returns up to limit internal transactions for the
// address, newest first. An empty history is a valid empty result. Entries
// missing hash, from or to are dropped rather than failing the whole fetch.
func (ee *EtherscanLikeExplorer) InternalTransactions(address string, limit int) ([]enscommon.Transaction, error) {
	response, err := ee.get(ee.InternalTxAPIURL(address, limit))
	if err != nil {
		return nil, fmt.Errorf("explorer tx history lookup failed: %w", err)
	}
	records := []internalTxRecord{}
	if err := json.Unmarshal(response.Result, &records); err != nil {
		// status 0 with a non-list result is how etherscan says "no
		// transactions found" (and also how it reports rate limits —
		// an empty history is indistinguishable only when status is 0
		// with an empty list, which unmarshals fine above)
		if response.Status == "0" && response.Message == "No transactions found" {
			return []enscommon.Transaction{}, nil
		}
		return nil, fmt.Errorf("explorer tx history error: %s", response.Message)
	}

	txs := []enscommon.Transaction{}
	for _, r := range records {
		if r.Hash == "" || r.From == "" || r.To == "" {
			enscommon.DebugPrintf("dropping malformed tx record for %s: %+v\n", address, r)
			continue
		}
		txs = append(txs, enscommon.Transaction{
			Hash:      r.Hash,
			From:      r.From,
			To:        r.To,
			Value:     enscommon.StringToBig(r.Value),
			Timestamp: enscommon.StringToBig(r.TimeStamp).Int64(),
		})
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp > txs[j].Timestamp
	})
	if len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

func (ee *EtherscanLikeExplorer) NametagAPIURL(address string) string {
	return fmt.Sprintf(
		"%s?chainid=%d&module=nametag&action=getaddresstag&address=%s&apikey=%s",
		ee.Domain,
		ee.ChainID,
		address,
		ee.APIKey,
	)
}

type nametagResult struct {
	NameTag string `json:"nameTag"`
}

// AddressNametag returns the explorer's public name tag for the address, or
// "" when there is none. The endpoint needs a PRO key; callers treat any
// error as "no tag" rather than a profile failure.
func (ee *EtherscanLikeExplorer) AddressNametag(address string) (string, error) {
	response, err := ee.get(ee.NametagAPIURL(address))
	if err != nil {
		return "", fmt.Errorf("explorer nametag lookup failed: %w", err)
	}
	result := nametagResult{}
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return "", fmt.Errorf("explorer nametag error: %s", response.Message)
	}
	return result.NameTag, nil
}
