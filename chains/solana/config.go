// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mitchellh/mapstructure"
)

// MinterAccountsConfig holds the deployment-specific accounts of the Gateway
// Minter program that every mint instruction references. Decoded from the
// raw chain config alongside the generic chain facts.
type MinterAccountsConfig struct {
	MinterConfig       solana.PublicKey
	AuxiliaryAccount   solana.PublicKey
	SourceTokenAccount solana.PublicKey
	StateAccount       solana.PublicKey
}

type rawMinterAccountsConfig struct {
	MinterConfig       string `mapstructure:"minterConfig"`
	AuxiliaryAccount   string `mapstructure:"auxiliaryAccount"`
	SourceTokenAccount string `mapstructure:"sourceTokenAccount"`
	StateAccount       string `mapstructure:"stateAccount"`
}

func NewMinterAccountsConfig(rawConfig map[string]interface{}) (*MinterAccountsConfig, error) {
	var raw rawMinterAccountsConfig
	if err := mapstructure.Decode(rawConfig, &raw); err != nil {
		return nil, err
	}

	accounts := map[string]string{
		"minterConfig":       raw.MinterConfig,
		"auxiliaryAccount":   raw.AuxiliaryAccount,
		"sourceTokenAccount": raw.SourceTokenAccount,
		"stateAccount":       raw.StateAccount,
	}
	keys := make(map[string]solana.PublicKey)
	for name, encoded := range accounts {
		if encoded == "" {
			return nil, fmt.Errorf("required field chain.%s empty for solana chain", name)
		}
		key, err := solana.PublicKeyFromBase58(encoded)
		if err != nil {
			return nil, fmt.Errorf("invalid %s account: %w", name, err)
		}
		keys[name] = key
	}

	return &MinterAccountsConfig{
		MinterConfig:       keys["minterConfig"],
		AuxiliaryAccount:   keys["auxiliaryAccount"],
		SourceTokenAccount: keys["sourceTokenAccount"],
		StateAccount:       keys["stateAccount"],
	}, nil
}
