package cmd

import (
	"math/big"
	"testing"

	enscommon "github.com/tranvictor/enslens/common"
	"github.com/tranvictor/enslens/networks"
	"github.com/tranvictor/enslens/profile"
	"github.com/tranvictor/enslens/ui"
)

type stubResolver map[string]string

func (s stubResolver) Resolve(name string) (string, error) {
	addr, found := s[name]
	if !found {
		return "", &enscommon.NameNotFoundError{Name: name}
	}
	return addr, nil
}

func (s stubResolver) TextRecords(name string, keys []string) map[string]string {
	return map[string]string{}
}

type stubBalances struct{}

func (stubBalances) NativeBalance(address string) (*big.Int, error) {
	return big.NewInt(1000000000000000000), nil
}

type stubActivity struct{}

func (stubActivity) InternalTransactions(address string, limit int) ([]enscommon.Transaction, error) {
	return nil, nil
}

type stubNametags struct{}

func (stubNametags) AddressNametag(address string) (string, error) {
	return "", nil
}

func TestExploreGraph(t *testing.T) {
	agg := profile.NewAggregator(
		networks.EthereumMainnet,
		stubResolver{
			"a.eth": "0x1111111111111111111111111111111111111111",
			"b.eth": "0x2222222222222222222222222222222222222222",
		},
		stubBalances{},
		stubActivity{},
		stubNametags{},
		nil, nil,
		10,
		nil,
	)
	builder := profile.NewGraphBuilder(agg, 2)
	g := builder.BuildGraph([]string{"a.eth", "b.eth"})
	if len(g.Nodes) != 2 {
		t.Fatalf("got %d nodes, expected 2", len(g.Nodes))
	}

	// pick the first node, then the trailing "done" option
	u := ui.NewRecordingUI("1", "3")
	exploreGraph(u, builder, g)

	if !u.HasMessage("View node profile: a.eth | b.eth | done") {
		t.Errorf("chooser options wrong, entries: %+v", u.Entries())
	}
	if !u.HasMessage("Profile: a.eth") {
		t.Errorf("selected node profile not rendered, entries: %+v", u.Entries())
	}
	if !u.HasMessage("ETH Balance: 1.000000 ETH") {
		t.Errorf("profile balance missing, entries: %+v", u.Entries())
	}
}
