// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/unifiedusdc/gateway-client/config/chain"
)

type UnknownChainError struct {
	Domain uint32
}

func (e *UnknownChainError) Error() string {
	return fmt.Sprintf("no chain configured with domain %d", e.Domain)
}

// Registry is a static lookup table of the configured chains keyed by
// Gateway domain id. No mutation after load.
type Registry struct {
	chains map[uint32]*chain.ChainConfig
}

func NewRegistry(configs []*chain.ChainConfig) *Registry {
	chains := make(map[uint32]*chain.ChainConfig)
	for _, c := range configs {
		chains[c.DomainID] = c
	}

	return &Registry{
		chains: chains,
	}
}

func (r *Registry) Get(domain uint32) (*chain.ChainConfig, error) {
	c, ok := r.chains[domain]
	if !ok {
		return nil, &UnknownChainError{Domain: domain}
	}

	return c, nil
}

func (r *Registry) Domains() []uint32 {
	domains := make([]uint32, 0, len(r.chains))
	for domain := range r.chains {
		domains = append(domains, domain)
	}

	return domains
}
