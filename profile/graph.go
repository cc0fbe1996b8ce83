package profile

import (
	"math/big"
	"sync"

	"golang.org/x/sync/errgroup"

	enscommon "github.com/tranvictor/enslens/common"
	"github.com/tranvictor/enslens/util/resolver"
)

// GraphBuilder turns a list of names into a social graph for the renderer.
// Each name resolves independently with a bounded fan-out width; names that
// fail to resolve are excluded from the node set with their reason, never
// aborting the build. Edges connect every pair of resolved names — a
// placeholder topology until real relationship data replaces it.
type GraphBuilder struct {
	agg   *Aggregator
	width int
}

func NewGraphBuilder(agg *Aggregator, width int) *GraphBuilder {
	if width <= 0 {
		width = 4
	}
	return &GraphBuilder{agg: agg, width: width}
}

// ProfileFor is the secondary entry point for drilling into a single node
// after the graph is built. It runs the full per-address flow.
func (g *GraphBuilder) ProfileFor(name string) (*enscommon.Profile, error) {
	return g.agg.BuildProfile(name)
}

// BuildGraph resolves every name and attaches a summary balance per node.
// An empty name list yields an empty graph; individual resolution failures
// land in Graph.Excluded.
func (g *GraphBuilder) BuildGraph(names []string) *enscommon.Graph {
	type nodeResult struct {
		node enscommon.Node
		err  error
	}

	// dedupe normalized names, preserving input order
	seen := map[string]bool{}
	ordered := []string{}
	for _, raw := range names {
		name := resolver.Normalize(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		ordered = append(ordered, name)
	}

	var mu sync.Mutex
	results := map[string]nodeResult{}

	group := errgroup.Group{}
	group.SetLimit(g.width)
	for _, name := range ordered {
		group.Go(func() error {
			address, err := g.agg.Resolve(name)
			if err != nil {
				mu.Lock()
				results[name] = nodeResult{err: err}
				mu.Unlock()
				return nil
			}
			// summary metric only — the expensive text-record and
			// portfolio calls wait until the node is selected
			var balance *big.Int
			if b, err := g.agg.NativeBalance(address); err == nil {
				balance = b
			} else {
				enscommon.DebugPrintf("graph node %s balance: %s\n", name, err)
			}
			mu.Lock()
			results[name] = nodeResult{node: enscommon.Node{
				Name:       name,
				Address:    address,
				BalanceWei: balance,
			}}
			mu.Unlock()
			return nil
		})
	}
	group.Wait()

	graph := &enscommon.Graph{
		Excluded: map[string]error{},
	}
	for _, name := range ordered {
		r := results[name]
		if r.err != nil {
			graph.Excluded[name] = r.err
			continue
		}
		graph.Nodes = append(graph.Nodes, r.node)
	}
	for i := 0; i < len(graph.Nodes); i++ {
		for j := i + 1; j < len(graph.Nodes); j++ {
			graph.Edges = append(graph.Edges, enscommon.Edge{
				A: graph.Nodes[i].Name,
				B: graph.Nodes[j].Name,
			})
		}
	}
	return graph
}
