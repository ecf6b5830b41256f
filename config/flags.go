// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName      = "config"
	ConfigURLFlagName   = "config-url"
	KeyFlagName         = "key"
	SolanaKeyFlagName   = "solana-key"
	SourceFlagName      = "source"
	DestinationFlagName = "destination"
	AmountFlagName      = "amount"
	RecipientFlagName   = "recipient"
	DepositorFlagName   = "depositor"
)

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "config.json", "path to the configuration file or 'env' to load configuration from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(ConfigURLFlagName, "", "URL of shared configuration")
	_ = viper.BindPFlag(ConfigURLFlagName, rootCMD.PersistentFlags().Lookup(ConfigURLFlagName))

	rootCMD.PersistentFlags().String(KeyFlagName, "", "hex encoded private key of the EVM depositor account")
	_ = viper.BindPFlag(KeyFlagName, rootCMD.PersistentFlags().Lookup(KeyFlagName))

	rootCMD.PersistentFlags().String(SolanaKeyFlagName, "", "base58 encoded private key of the Solana payer account")
	_ = viper.BindPFlag(SolanaKeyFlagName, rootCMD.PersistentFlags().Lookup(SolanaKeyFlagName))
}
