package networks_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tranvictor/enslens/networks"
)

func TestGetNetwork(t *testing.T) {
	for _, name := range []string{"mainnet", "ethereum", "eth"} {
		n, err := networks.GetNetwork(name)
		if err != nil {
			t.Fatalf("GetNetwork(%q) returned error: %s", name, err)
		}
		if n.GetChainID() != 1 {
			t.Errorf("GetNetwork(%q) chain id = %d, expected 1", name, n.GetChainID())
		}
	}

	n, err := networks.GetNetwork("bsc")
	if err != nil {
		t.Fatalf("GetNetwork(bsc) returned error: %s", err)
	}
	if n.GetNativeTokenSymbol() != "BNB" {
		t.Errorf("bsc native symbol = %s", n.GetNativeTokenSymbol())
	}
}

func TestGetNetworkByID(t *testing.T) {
	n, err := networks.GetNetworkByID(137)
	if err != nil {
		t.Fatalf("GetNetworkByID(137) returned error: %s", err)
	}
	if n.GetName() != "polygon" {
		t.Errorf("network 137 = %s, expected polygon", n.GetName())
	}
	if _, err := networks.GetNetworkByID(99999); err == nil {
		t.Errorf("expected error for unsupported chain id")
	}
}

func TestGetNetworkSuggestsOnTypo(t *testing.T) {
	_, err := networks.GetNetwork("mainet")
	if err == nil {
		t.Fatalf("expected error for unknown network name")
	}
	if !errors.Is(err, networks.ErrNetworkNotFound) {
		t.Errorf("error is not ErrNetworkNotFound: %s", err)
	}
	if !strings.Contains(err.Error(), "did you mean") {
		t.Errorf("expected a suggestion in the error, got: %s", err)
	}
}
