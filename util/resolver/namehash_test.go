package resolver_test

import (
	"testing"

	"github.com/tranvictor/enslens/util/resolver"
)

// vectors from EIP-137
func TestNameHash(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{"eth", "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{"foo.eth", "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
	}
	for _, tc := range tests {
		if got := resolver.NameHash(tc.name).Hex(); got != tc.expected {
			t.Errorf("NameHash(%q) = %s, expected %s", tc.name, got, tc.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := resolver.Normalize("  Vitalik.ETH "); got != "vitalik.eth" {
		t.Errorf("Normalize = %q, expected vitalik.eth", got)
	}
}
