package profile

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"

	enscommon "github.com/tranvictor/enslens/common"
	"github.com/tranvictor/enslens/networks"
)

// NameResolver resolves a human-readable name to an address and, optionally,
// its text records. Resolve returns *common.NameNotFoundError for names with
// no usable address. TextRecords never fails as a whole: unreachable
// resolvers yield an empty map.
type NameResolver interface {
	Resolve(name string) (string, error)
	TextRecords(name string, keys []string) map[string]string
}

type BalanceProvider interface {
	NativeBalance(address string) (*big.Int, error)
}

type ActivityProvider interface {
	InternalTransactions(address string, limit int) ([]enscommon.Transaction, error)
}

type NametagProvider interface {
	AddressNametag(address string) (string, error)
}

type PriceProvider interface {
	Price(symbol string) (float64, error)
}

type PortfolioProvider interface {
	Holdings(address string, excludeSpam bool) ([]enscommon.TokenBalance, error)
}

// Aggregator fans out to the independent data providers for one address and
// merges whatever came back into a single Profile. Providers fail (or are
// left unconfigured) independently; only name resolution is fatal.
//
// An Aggregator holds no per-lookup state, so one instance can serve
// concurrent BuildProfile calls for different names.
type Aggregator struct {
	network  networks.Network
	resolver NameResolver
	balances BalanceProvider
	activity ActivityProvider
	nametags NametagProvider

	// optional capabilities, nil when no credential is configured
	prices    PriceProvider
	portfolio PortfolioProvider

	txLimit  int
	textKeys []string
}

func NewAggregator(
	network networks.Network,
	resolver NameResolver,
	balances BalanceProvider,
	activity ActivityProvider,
	nametags NametagProvider,
	prices PriceProvider,
	portfolio PortfolioProvider,
	txLimit int,
	textKeys []string,
) *Aggregator {
	if txLimit <= 0 {
		txLimit = 10
	}
	return &Aggregator{
		network:   network,
		resolver:  resolver,
		balances:  balances,
		activity:  activity,
		nametags:  nametags,
		prices:    prices,
		portfolio: portfolio,
		txLimit:   txLimit,
		textKeys:  textKeys,
	}
}

// Resolve exposes bare name resolution for callers that only need the
// address (e.g. the graph builder).
func (a *Aggregator) Resolve(name string) (string, error) {
	addr, err := a.resolver.Resolve(name)
	if err != nil {
		return "", err
	}
	if !enscommon.IsAddress(addr) || enscommon.IsZeroAddress(addr) {
		return "", &enscommon.NameNotFoundError{Name: name}
	}
	return enscommon.ChecksumAddress(addr), nil
}

// NativeBalance exposes the balance provider for per-node summary fetches.
func (a *Aggregator) NativeBalance(address string) (*big.Int, error) {
	return a.balances.NativeBalance(address)
}

// BuildProfile resolves name and merges all provider results into one
// Profile. The only error it ever returns is a failed resolution — every
// other provider outcome is recorded in Profile.Sources and reflected as a
// populated or absent field.
//
// All provider calls run in parallel; the whole build takes as long as the
// slowest single provider, not the sum.
func (a *Aggregator) BuildProfile(name string) (*enscommon.Profile, error) {
	address, err := a.Resolve(name)
	if err != nil {
		if enscommon.IsNameNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("resolving %s: %w", name, err)
	}

	var (
		balance    *big.Int
		balanceErr error

		price    float64
		priceErr error

		txs    []enscommon.Transaction
		txsErr error

		holdings    []enscommon.TokenBalance
		holdingsErr error

		nametag    string
		nametagErr error

		records map[string]string
	)

	// every task records its outcome in its own variables and always
	// returns nil: a provider failure must never look like a build failure
	tasks := []func() error{
		func() error {
			balance, balanceErr = a.balances.NativeBalance(address)
			return nil
		},
		func() error {
			txs, txsErr = a.activity.InternalTransactions(address, a.txLimit)
			return nil
		},
		func() error {
			nametag, nametagErr = a.nametags.AddressNametag(address)
			return nil
		},
		func() error {
			records = a.resolver.TextRecords(name, a.textKeys)
			return nil
		},
	}
	if a.prices != nil {
		tasks = append(tasks, func() error {
			price, priceErr = a.prices.Price(a.network.GetNativeTokenSymbol())
			return nil
		})
	}
	if a.portfolio != nil {
		tasks = append(tasks, func() error {
			holdings, holdingsErr = a.portfolio.Holdings(address, true)
			return nil
		})
	}
	enscommon.RunParallel(tasks...)

	p := &enscommon.Profile{
		LookupID:      uuid.New(),
		Name:          name,
		Address:       address,
		ChainID:       a.network.GetChainID(),
		NativeSymbol:  a.network.GetNativeTokenSymbol(),
		NativeDecimal: a.network.GetNativeTokenDecimal(),
		TextRecords:   records,
		Sources:       map[enscommon.Source]enscommon.SourceResult{},
	}

	if balanceErr != nil {
		p.Sources[enscommon.SourceBalance] = enscommon.SourceResult{Status: enscommon.SourceUnavailable, Err: balanceErr}
	} else {
		p.BalanceWei = balance
		p.Sources[enscommon.SourceBalance] = enscommon.SourceResult{Status: enscommon.SourceOK}
	}

	switch {
	case a.prices == nil:
		p.Sources[enscommon.SourcePrice] = enscommon.SourceResult{Status: enscommon.SourceNotConfigured}
	case priceErr != nil:
		p.Sources[enscommon.SourcePrice] = enscommon.SourceResult{Status: enscommon.SourceUnavailable, Err: priceErr}
	default:
		p.FiatPrice = &price
		p.Sources[enscommon.SourcePrice] = enscommon.SourceResult{Status: enscommon.SourceOK}
	}

	if txsErr != nil {
		p.Sources[enscommon.SourceActivity] = enscommon.SourceResult{Status: enscommon.SourceUnavailable, Err: txsErr}
	} else {
		p.RecentTxs = txs
		p.Sources[enscommon.SourceActivity] = enscommon.SourceResult{Status: enscommon.SourceOK}
	}

	switch {
	case a.portfolio == nil:
		p.Sources[enscommon.SourceHoldings] = enscommon.SourceResult{Status: enscommon.SourceNotConfigured}
	case holdingsErr != nil:
		p.Sources[enscommon.SourceHoldings] = enscommon.SourceResult{Status: enscommon.SourceUnavailable, Err: holdingsErr}
	default:
		p.Holdings = holdings
		p.Sources[enscommon.SourceHoldings] = enscommon.SourceResult{Status: enscommon.SourceOK}
	}

	if nametagErr != nil {
		p.Sources[enscommon.SourceNametag] = enscommon.SourceResult{Status: enscommon.SourceUnavailable, Err: nametagErr}
	} else {
		p.Nametag = nametag
		p.Sources[enscommon.SourceNametag] = enscommon.SourceResult{Status: enscommon.SourceOK}
	}

	p.Sources[enscommon.SourceTextRecords] = enscommon.SourceResult{Status: enscommon.SourceOK}

	// fiat value needs both operands; a missing price must not hide the
	// native balance
	if display, known := p.BalanceDisplay(); known && p.FiatPrice != nil {
		value := display * *p.FiatPrice
		p.FiatValue = &value
	}

	return p, nil
}
