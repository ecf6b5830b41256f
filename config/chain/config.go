// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
	"math/big"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"
)

type Family string

const (
	FamilyEVM    Family = "evm"
	FamilySolana Family = "solana"
)

// ChainConfig holds the static per-chain facts required to run a transfer
// through the Gateway: protocol domain id, RPC endpoint, token and Gateway
// contract addresses, decimal places and the minimum fee estimate. Loaded
// once at startup and never mutated.
type ChainConfig struct {
	Name          string
	DomainID      uint32
	Family        Family
	Endpoint      string
	Token         string
	Decimals      uint8
	GatewayWallet string
	GatewayMinter string
	MinFee        *big.Int
}

type RawChainConfig struct {
	Name          string  `mapstructure:"name"`
	DomainID      *uint32 `mapstructure:"domain"`
	Family        string  `mapstructure:"family"`
	Endpoint      string  `mapstructure:"endpoint"`
	Token         string  `mapstructure:"token"`
	Decimals      uint8   `mapstructure:"decimals" default:"6"`
	GatewayWallet string  `mapstructure:"gatewayWallet"`
	GatewayMinter string  `mapstructure:"gatewayMinter"`
	MinFee        string  `mapstructure:"minFee" default:"2000000"`
}

func (c *RawChainConfig) Validate() error {
	// viper defaults to 0 for not specified ints
	if c.DomainID == nil {
		return fmt.Errorf("required field chain.Domain empty for chain %s", c.Name)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %d", *c.DomainID)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %d", *c.DomainID)
	}
	if c.Family != string(FamilyEVM) && c.Family != string(FamilySolana) {
		return fmt.Errorf("invalid chain family '%s' for chain %d", c.Family, *c.DomainID)
	}
	if c.Token == "" || c.GatewayWallet == "" || c.GatewayMinter == "" {
		return fmt.Errorf("token and gateway addresses required for chain %d", *c.DomainID)
	}
	return nil
}

// NewChainConfig decodes and validates an instance of a ChainConfig from
// raw chain config
func NewChainConfig(rawConfig map[string]interface{}) (*ChainConfig, error) {
	var c RawChainConfig
	err := mapstructure.Decode(rawConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	minFee, ok := new(big.Int).SetString(c.MinFee, 10)
	if !ok {
		return nil, fmt.Errorf("invalid minFee '%s' for chain %d", c.MinFee, *c.DomainID)
	}

	return &ChainConfig{
		Name:          c.Name,
		DomainID:      *c.DomainID,
		Family:        Family(c.Family),
		Endpoint:      c.Endpoint,
		Token:         c.Token,
		Decimals:      c.Decimals,
		GatewayWallet: c.GatewayWallet,
		GatewayMinter: c.GatewayMinter,
		MinFee:        minFee,
	}, nil
}
