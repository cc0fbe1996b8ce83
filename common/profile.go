package common

import (
	"math/big"

	"github.com/google/uuid"
)

// Transaction is one internal transaction from the block explorer's history
// listing. Values are immutable once fetched.
type Transaction struct {
	Hash      string
	From      string
	To        string
	Value     *big.Int // native smallest unit (wei)
	Timestamp int64    // unix seconds
}

// TokenBalance is one entry of an address's token holdings.
//
// DisplayAmount follows the portfolio provider's scaling rule: when Decimals
// is present the raw amount is divided by 10^decimals, otherwise the raw
// amount already is in display units. Getting this wrong misscales holdings
// by orders of magnitude, so the derivation lives in one place (NewTokenBalance).
type TokenBalance struct {
	Symbol        string
	Name          string
	RawAmount     *big.Int
	Decimals      *uint64 // nil when the provider didn't report decimals
	DisplayAmount float64
	PriceUSD      *float64 // nil when unknown
	ValueUSD      *float64 // nil when unknown
}

// NewTokenBalance derives DisplayAmount from the raw amount and optional
// decimals.
func NewTokenBalance(symbol, name string, raw *big.Int, decimals *uint64, priceUSD, valueUSD *float64) TokenBalance {
	display := BigToFloat(raw, 0)
	if decimals != nil {
		display = BigToFloat(raw, *decimals)
	}
	return TokenBalance{
		Symbol:        symbol,
		Name:          name,
		RawAmount:     raw,
		Decimals:      decimals,
		DisplayAmount: display,
		PriceUSD:      priceUSD,
		ValueUSD:      valueUSD,
	}
}

// Profile is the merged record for one resolved name. It is built fresh per
// lookup, never mutated after the aggregator returns it and never cached.
//
// Optional fields are nil pointers (or nil slices/maps) when their source
// failed or was never configured — a populated zero is always a real zero.
// Sources records which of the two applies for each absent field.
type Profile struct {
	LookupID uuid.UUID
	Name     string
	Address  string
	ChainID  uint64

	NativeSymbol  string
	NativeDecimal uint64

	BalanceWei *big.Int // nil = unknown, big.NewInt(0) = real zero balance
	FiatPrice  *float64 // native token price in USD
	FiatValue  *float64 // BalanceDisplay() * FiatPrice, only when both known

	Nametag     string // public explorer tag, empty when none
	TextRecords map[string]string
	RecentTxs   []Transaction
	Holdings    []TokenBalance

	Sources map[Source]SourceResult
}

// BalanceDisplay returns the native balance in display units (e.g. ETH).
// The second return is false when the balance is unknown.
func (p *Profile) BalanceDisplay() (float64, bool) {
	if p.BalanceWei == nil {
		return 0, false
	}
	return BigToFloat(p.BalanceWei, p.NativeDecimal), true
}

// SourceStatus returns the recorded outcome for src, defaulting to
// SourceNotConfigured when the aggregator never touched it.
func (p *Profile) SourceStatus(src Source) SourceStatus {
	if r, ok := p.Sources[src]; ok {
		return r.Status
	}
	return SourceNotConfigured
}
