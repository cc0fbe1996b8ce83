package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	enscommon "github.com/tranvictor/enslens/common"
	"github.com/tranvictor/enslens/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile <name>",
	Short: "Resolve an ENS name and show everything public about it",
	Long: `Resolve an ENS name to its address and show the aggregated profile:
native balance, USD value, text records, recent internal transactions and
token holdings. Fields whose data source is down or unconfigured are shown
as unavailable instead of failing the lookup.`,
	Args: cobra.ExactArgs(1),
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

		stop := u.Spinner(fmt.Sprintf("Resolving %s and fetching data...", args[0]))
		p, err := agg.BuildProfile(args[0])
		stop()
		if err != nil {
			if enscommon.IsNameNotFound(err) {
				u.Error("ENS name not found: %s", args[0])
				return nil
			}
			return err
		}
		renderProfile(u, p)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
