package profile_test

import (
	"fmt"
	"math/big"
	"testing"

	enscommon "github.com/tranvictor/enslens/common"
	"github.com/tranvictor/enslens/networks"
	"github.com/tranvictor/enslens/profile"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
	addrC = "0x3333333333333333333333333333333333333333"
)

type fakeResolver struct {
	addrs   map[string]string
	records map[string]string
}

func (f *fakeResolver) Resolve(name string) (string, error) {
	addr, found := f.addrs[name]
	if !found {
		return "", &enscommon.NameNotFoundError{Name: name}
	}
	return addr, nil
}

func (f *fakeResolver) TextRecords(name string, keys []string) map[string]string {
	records := map[string]string{}
	for _, key := range keys {
		if v, found := f.records[key]; found {
			records[key] = v
		}
	}
	return records
}

type fakeBalances struct {
	balances map[string]*big.Int
	err      error
}

func (f *fakeBalances) NativeBalance(address string) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}
	if b, found := f.balances[address]; found {
		return b, nil
	}
	return big.NewInt(0), nil
}

type fakeActivity struct {
	txs []enscommon.Transaction
	err error
}

func (f *fakeActivity) InternalTransactions(address string, limit int) ([]enscommon.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.txs) > limit {
		return f.txs[:limit], nil
	}
	return f.txs, nil
}

type fakeNametags struct {
	tag string
	err error
}

func (f *fakeNametags) AddressNametag(address string) (string, error) {
	return f.tag, f.err
}

type fakePrices struct {
	price float64
	err   error
}

func (f *fakePrices) Price(symbol string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.price, nil
}

type fakePortfolio struct {
	holdings []enscommon.TokenBalance
	err      error
}

func (f *fakePortfolio) Holdings(address string, excludeSpam bool) ([]enscommon.TokenBalance, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.holdings, nil
}

func wei(eth float64) *big.Int {
	w, _ := big.NewFloat(eth * 1e18).Int(nil)
	return w
}

func newTestAggregator(prices profile.PriceProvider, portfolio profile.PortfolioProvider, balances *fakeBalances) *profile.Aggregator {
	return profile.NewAggregator(
		networks.EthereumMainnet,
		&fakeResolver{
			addrs:   map[string]string{"vitalik.eth": addrA, "a.eth": addrA, "b.eth": addrB, "c.eth": addrC},
			records: map[string]string{"twitter": "VitalikButerin", "url": "https://vitalik.ca"},
		},
		balances,
		&fakeActivity{txs: []enscommon.Transaction{
			{Hash: "0xaaa", From: addrB, To: addrA, Value: big.NewInt(1), Timestamp: 1700000000},
		}},
		&fakeNametags{tag: "Vitalik Buterin"},
		prices,
		portfolio,
		10,
		[]string{"twitter", "url", "avatar"},
	)
}

func TestBuildProfileAllSourcesUp(t *testing.T) {
	agg := newTestAggregator(
		&fakePrices{price: 3000},
		&fakePortfolio{holdings: []enscommon.TokenBalance{{Symbol: "USDC"}}},
		&fakeBalances{balances: map[string]*big.Int{addrA: wei(2.5)}},
	)
	p, err := agg.BuildProfile("vitalik.eth")
	if err != nil {
		t.Fatalf("BuildProfile returned error: %s", err)
	}
	if p.Address != addrA {
		t.Errorf("address = %s, expected %s", p.Address, addrA)
	}
	if p.BalanceWei == nil || p.BalanceWei.Cmp(wei(2.5)) != 0 {
		t.Errorf("balance = %v, expected 2.5 ETH in wei", p.BalanceWei)
	}
	if p.FiatPrice == nil || *p.FiatPrice != 3000 {
		t.Errorf("fiat price missing or wrong")
	}
	if p.FiatValue == nil || *p.FiatValue != 7500 {
		t.Errorf("fiat value = %v, expected 7500", p.FiatValue)
	}
	if p.TextRecords["twitter"] != "VitalikButerin" {
		t.Errorf("text records not populated: %v", p.TextRecords)
	}
	if _, found := p.TextRecords["avatar"]; found {
		t.Errorf("unset record key must be omitted")
	}
	if p.Nametag != "Vitalik Buterin" {
		t.Errorf("nametag = %q", p.Nametag)
	}
	if len(p.RecentTxs) != 1 || len(p.Holdings) != 1 {
		t.Errorf("activity/holdings not populated")
	}
	for _, src := range []enscommon.Source{
		enscommon.SourceBalance, enscommon.SourcePrice, enscommon.SourceActivity,
		enscommon.SourceHoldings, enscommon.SourceNametag, enscommon.SourceTextRecords,
	} {
		if p.SourceStatus(src) != enscommon.SourceOK {
			t.Errorf("source %s status = %s, expected ok", src, p.SourceStatus(src))
		}
	}
	if p.LookupID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Errorf("lookup id not assigned")
	}
}

func TestBuildProfileNameNotFound(t *testing.T) {
	agg := newTestAggregator(nil, nil, &fakeBalances{})
	p, err := agg.BuildProfile("nosuchname.eth")
	if err == nil {
		t.Fatalf("expected NameNotFound, got profile %+v", p)
	}
	if !enscommon.IsNameNotFound(err) {
		t.Errorf("error is not a NameNotFoundError: %s", err)
	}
}

func TestBuildProfilePriceFailureIsIndependent(t *testing.T) {
	// the price source dying must not hide the balance
	agg := newTestAggregator(
		&fakePrices{err: fmt.Errorf("quote api down")},
		&fakePortfolio{holdings: []enscommon.TokenBalance{}},
		&fakeBalances{balances: map[string]*big.Int{addrA: wei(2.5)}},
	)
	p, err := agg.BuildProfile("vitalik.eth")
	if err != nil {
		t.Fatalf("BuildProfile returned error: %s", err)
	}
	if p.BalanceWei == nil {
		t.Errorf("balance lost when price failed")
	}
	if p.FiatPrice != nil || p.FiatValue != nil {
		t.Errorf("fiat fields must be absent when the price source failed")
	}
	if p.SourceStatus(enscommon.SourcePrice) != enscommon.SourceUnavailable {
		t.Errorf("price status = %s, expected unavailable", p.SourceStatus(enscommon.SourcePrice))
	}
	if p.SourceStatus(enscommon.SourceBalance) != enscommon.SourceOK {
		t.Errorf("balance status = %s, expected ok", p.SourceStatus(enscommon.SourceBalance))
	}
}

func TestBuildProfileUnconfiguredCapabilities(t *testing.T) {
	agg := newTestAggregator(nil, nil, &fakeBalances{balances: map[string]*big.Int{addrA: wei(1)}})
	p, err := agg.BuildProfile("vitalik.eth")
	if err != nil {
		t.Fatalf("BuildProfile returned error: %s", err)
	}
	// not configured is a different state than unavailable
	if p.SourceStatus(enscommon.SourcePrice) != enscommon.SourceNotConfigured {
		t.Errorf("price status = %s, expected not configured", p.SourceStatus(enscommon.SourcePrice))
	}
	if p.SourceStatus(enscommon.SourceHoldings) != enscommon.SourceNotConfigured {
		t.Errorf("holdings status = %s, expected not configured", p.SourceStatus(enscommon.SourceHoldings))
	}
	if p.FiatValue != nil {
		t.Errorf("fiat value must be absent without a price source")
	}
}

func TestBuildProfileZeroBalanceIsARealZero(t *testing.T) {
	agg := newTestAggregator(nil, nil, &fakeBalances{})
	p, err := agg.BuildProfile("vitalik.eth")
	if err != nil {
		t.Fatalf("BuildProfile returned error: %s", err)
	}
	if p.BalanceWei == nil || p.BalanceWei.Sign() != 0 {
		t.Errorf("fresh address must report a real 0 balance, got %v", p.BalanceWei)
	}
	if p.SourceStatus(enscommon.SourceBalance) != enscommon.SourceOK {
		t.Errorf("zero balance must still be an ok source")
	}
}

func TestBuildProfileBalanceFailure(t *testing.T) {
	agg := newTestAggregator(
		&fakePrices{price: 3000},
		nil,
		&fakeBalances{err: fmt.Errorf("explorer down")},
	)
	p, err := agg.BuildProfile("vitalik.eth")
	if err != nil {
		t.Fatalf("a dead balance source must not fail the build: %s", err)
	}
	if p.BalanceWei != nil {
		t.Errorf("unknown balance must be nil, not zero")
	}
	if p.FiatValue != nil {
		t.Errorf("fiat value needs a known balance")
	}
	if p.SourceStatus(enscommon.SourceBalance) != enscommon.SourceUnavailable {
		t.Errorf("balance status = %s, expected unavailable", p.SourceStatus(enscommon.SourceBalance))
	}
	if p.FiatPrice == nil {
		t.Errorf("price must survive a balance failure")
	}
}
