package cmd

import (
	"github.com/spf13/cobra"

	enscommon "github.com/tranvictor/enslens/common"
	"github.com/tranvictor/enslens/config"
	"github.com/tranvictor/enslens/profile"
	"github.com/tranvictor/enslens/ui"
)

var selectNodes bool

var graphCmd = &cobra.Command{
	Use:   "graph <name> [<name>...]",
	Short: "Build a social graph over a list of ENS names",
	Long: `Resolve a list of ENS names and build a social graph: one node per
resolved name with its address and balance, every pair of nodes connected.
Names that fail to resolve are reported and left out without failing the
whole graph.

With --select you can then pick nodes one by one for a full profile lookup.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := ui.NewTerminalUI()
		network, err := currentNetwork()
		if err != nil {
			return err
		}
		agg, err := newAggregator(network)
		if err != nil {
			return err
		}
		builder := profile.NewGraphBuilder(agg, config.GraphWidth)

		stop := u.Spinner("Resolving names and building graph...")
		g := builder.BuildGraph(args)
		stop()
		renderGraph(u, g, network)

		if !selectNodes || len(g.Nodes) == 0 {
			return nil
		}
		exploreGraph(u, builder, g)
		return nil
	},
}

// exploreGraph runs the select-a-node loop: each resolved name can be drilled
// into for a full profile, reusing the same per-address flow as the profile
// command.
func exploreGraph(u ui.UI, builder *profile.GraphBuilder, g *enscommon.Graph) {
	options := []string{}
	for _, node := range g.Nodes {
		options = append(options, node.Name)
	}
	options = append(options, "done")
	for {
		choice := u.Choose("View node profile", options)
		if choice == len(g.Nodes) {
			return
		}
		name := g.Nodes[choice].Name
		stop := u.Spinner("Fetching profile for " + name + "...")
		p, err := builder.ProfileFor(name)
		stop()
		if err != nil {
			u.Error("couldn't fetch profile for %s: %s", name, err)
			continue
		}
		renderProfile(u.Indent(), p)
	}
}

func init() {
	graphCmd.PersistentFlags().BoolVarP(&selectNodes, "select", "s", false, "interactively pick nodes for a full profile lookup after the graph is built.")
	graphCmd.PersistentFlags().IntVarP(&config.GraphWidth, "width", "w", config.DefaultGraphWidth, "max concurrent name lookups while building the graph.")
	rootCmd.AddCommand(graphCmd)
}
