// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unifiedusdc/gateway-client/app"
	"github.com/unifiedusdc/gateway-client/config"
)

var (
	balancesCMD = &cobra.Command{
		Use:   "balances",
		Short: "Query escrowed Gateway balances",
		Long:  "Query the escrowed Gateway balances of a depositor across all configured domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunBalances()
		},
	}
)

func init() {
	balancesCMD.Flags().String(config.DepositorFlagName, "", "depositor address to query")
	_ = viper.BindPFlag(config.DepositorFlagName, balancesCMD.Flags().Lookup(config.DepositorFlagName))

	_ = balancesCMD.MarkFlagRequired(config.DepositorFlagName)
}
