// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/enslens/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enslens",
	Short: "Look up on-chain profiles behind ENS names",
	Long: fmt.Sprintf(`Enslens resolves ENS names and aggregates public data about the
addresses behind them: native balance, USD value, recent internal
transactions, profile text records and token holdings. It can also take a
list of names and build a social graph you can explore name by name.

Enslens is strictly read-only: it never signs, sends or stores anything.

Data comes from four independent services and each can be down or left
unconfigured without breaking a lookup — the affected fields are simply
reported as unavailable:

	1. An Ethereum node for ENS resolution and text records
	   (override with the network's node env var, e.g. ETHEREUM_MAINNET_NODE)
	2. An etherscan-compatible explorer for balances and tx history
	   (set %s for your own key)
	3. CoinMarketCap for the native token USD price
	   (optional, enabled by setting %s)
	4. The Sim balances API for token holdings
	   (optional, enabled by setting %s)

Env vars can also be put in a .env file in the working directory.`,
		"ETHERSCAN_API_KEY",
		config.CoinMarketCapAPIKeyVar,
		config.SimAPIKeyVar,
	),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnvFile()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "mainnet", "network to fetch balances and history on. Valid values: \"mainnet\", \"bsc\", \"polygon\".")
	rootCmd.PersistentFlags().IntVarP(&config.TxLimit, "tx-limit", "l", config.DefaultTxLimit, "max recent internal transactions to fetch per profile.")
	rootCmd.PersistentFlags().BoolVarP(&config.Debug, "debug", "d", false, "print debug information during lookups.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
