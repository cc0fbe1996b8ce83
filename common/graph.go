package common

import "math/big"

// Node is one resolved name in a social graph, carrying just the summary
// metrics the renderer needs up front. A full Profile for a node is fetched
// lazily when the user selects it.
type Node struct {
	Name       string
	Address    string
	BalanceWei *big.Int // nil when the balance fetch failed
}

// Edge is an unordered pair of node names.
type Edge struct {
	A string
	B string
}

// Graph is the multi-name lookup result. Nodes are exactly the names that
// resolved; names that didn't are listed in Excluded with their reason and
// never abort the whole build. Edges form the complete graph over Nodes —
// a placeholder topology until real relationship data is wired in.
type Graph struct {
	Nodes    []Node
	Edges    []Edge
	Excluded map[string]error
}

// Node returns the node with the given name, or nil.
func (g *Graph) Node(name string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].Name == name {
			return &g.Nodes[i]
		}
	}
	return nil
}
