package resolver

import (
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// NameHash implements the EIP-137 recursive name hashing algorithm.
// NameHash("") is the zero hash; each label is keccak-folded from the
// right-most label (the TLD) inward.
func NameHash(name string) ethcommon.Hash {
	node := make([]byte, 32)
	if name == "" {
		return ethcommon.BytesToHash(node)
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256(node, labelHash)
	}
	return ethcommon.BytesToHash(node)
}
