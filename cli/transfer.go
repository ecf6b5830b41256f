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
	transferCMD = &cobra.Command{
		Use:   "transfer",
		Short: "Transfer USDC between chains",
		Long:  "Transfer USDC from the source chain to the destination chain through the Gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunTransfer()
		},
	}
)

func init() {
	transferCMD.Flags().Uint32(config.SourceFlagName, 0, "source chain domain id")
	_ = viper.BindPFlag(config.SourceFlagName, transferCMD.Flags().Lookup(config.SourceFlagName))

	transferCMD.Flags().Uint32(config.DestinationFlagName, 0, "destination chain domain id")
	_ = viper.BindPFlag(config.DestinationFlagName, transferCMD.Flags().Lookup(config.DestinationFlagName))

	transferCMD.Flags().String(config.AmountFlagName, "", "amount of USDC to transfer, e.g. 0.01")
	_ = viper.BindPFlag(config.AmountFlagName, transferCMD.Flags().Lookup(config.AmountFlagName))

	transferCMD.Flags().String(config.RecipientFlagName, "", "recipient address on the destination chain")
	_ = viper.BindPFlag(config.RecipientFlagName, transferCMD.Flags().Lookup(config.RecipientFlagName))

	_ = transferCMD.MarkFlagRequired(config.SourceFlagName)
	_ = transferCMD.MarkFlagRequired(config.DestinationFlagName)
	_ = transferCMD.MarkFlagRequired(config.AmountFlagName)
	_ = transferCMD.MarkFlagRequired(config.RecipientFlagName)
}
