// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/unifiedusdc/gateway-client/config"
	"github.com/unifiedusdc/gateway-client/config/chain"
)

type RegistryTestSuite struct {
	suite.Suite

	registry *config.Registry
}

func TestRunRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.registry = config.NewRegistry([]*chain.ChainConfig{
		{Name: "ethereum", DomainID: 0, Family: chain.FamilyEVM},
		{Name: "solana", DomainID: 5, Family: chain.FamilySolana},
	})
}

func (s *RegistryTestSuite) Test_Get_KnownDomain() {
	c, err := s.registry.Get(5)

	s.Nil(err)
	s.Equal("solana", c.Name)
	s.Equal(chain.FamilySolana, c.Family)
}

func (s *RegistryTestSuite) Test_Get_UnknownDomain() {
	_, err := s.registry.Get(99)

	s.NotNil(err)
	s.IsType(&config.UnknownChainError{}, err)
}

func (s *RegistryTestSuite) Test_Domains() {
	domains := s.registry.Domains()

	s.Len(domains, 2)
	s.Contains(domains, uint32(0))
	s.Contains(domains, uint32(5))
}
