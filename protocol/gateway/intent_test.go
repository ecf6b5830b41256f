package gateway_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/unifiedusdc/gateway-client/config"
	"github.com/unifiedusdc/gateway-client/config/chain"
	"github.com/unifiedusdc/gateway-client/protocol/gateway"
	mock_gateway "github.com/unifiedusdc/gateway-client/protocol/gateway/mock"
)

type IntentBuilderTestSuite struct {
	suite.Suite

	mockInfo *mock_gateway.MockDomainInfoSource

	builder *gateway.IntentBuilder
}

func TestRunIntentBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(IntentBuilderTestSuite))
}

func (s *IntentBuilderTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockInfo = mock_gateway.NewMockDomainInfoSource(ctrl)

	registry := config.NewRegistry([]*chain.ChainConfig{
		{
			Name:          "ethereum",
			DomainID:      0,
			Family:        chain.FamilyEVM,
			Endpoint:      "http://localhost:8545",
			Token:         "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238",
			Decimals:      6,
			GatewayWallet: "0x0077777d7EBA4688BDeF3E311b846F25870A19B9",
			GatewayMinter: "0x0022222ABE238Cc6C7Bb1f17003CEBF197Bbf195",
			MinFee:        big.NewInt(2000000),
		},
		{
			Name:          "solana",
			DomainID:      5,
			Family:        chain.FamilySolana,
			Endpoint:      "http://localhost:8899",
			Token:         "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
			Decimals:      6,
			GatewayWallet: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
			GatewayMinter: "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL",
			MinFee:        big.NewInt(3000000),
		},
	})
	s.builder = gateway.NewIntentBuilder(registry, s.mockInfo)
}

func (s *IntentBuilderTestSuite) Test_Build_SameChain() {
	_, err := s.builder.Build(
		context.Background(),
		0,
		0,
		"1",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		gateway.BuildOpts{},
	)

	s.NotNil(err)
	s.IsType(&gateway.InvalidTransferError{}, err)
}

func (s *IntentBuilderTestSuite) Test_Build_UnknownChain() {
	_, err := s.builder.Build(
		context.Background(),
		0,
		99,
		"1",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		gateway.BuildOpts{},
	)

	s.NotNil(err)
	s.IsType(&config.UnknownChainError{}, err)
}

func (s *IntentBuilderTestSuite) Test_Build_InvalidAmount() {
	_, err := s.builder.Build(
		context.Background(),
		0,
		5,
		"0.0000001",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		gateway.BuildOpts{},
	)

	s.NotNil(err)
	s.IsType(&gateway.InvalidTransferError{}, err)
}

func (s *IntentBuilderTestSuite) Test_Build_DomainInfoError() {
	s.mockInfo.EXPECT().DomainInfo(gomock.Any()).Return(nil, errors.New("error"))

	_, err := s.builder.Build(
		context.Background(),
		0,
		5,
		"0.01",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		gateway.BuildOpts{},
	)

	s.NotNil(err)
}

func (s *IntentBuilderTestSuite) Test_Build_ValidIntent() {
	s.mockInfo.EXPECT().DomainInfo(gomock.Any()).Return([]gateway.DomainInfo{
		{Domain: 0, ProcessedHeight: 22000000, BurnIntentExpirationHeight: 22000100},
		{Domain: 5, ProcessedHeight: 300000000, BurnIntentExpirationHeight: 300000200},
	}, nil)

	intent, err := s.builder.Build(
		context.Background(),
		0,
		5,
		"0.01",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		gateway.BuildOpts{},
	)

	s.Nil(err)
	s.Equal(uint32(gateway.SpecVersion), intent.Spec.Version)
	s.Equal(uint32(0), intent.Spec.SourceDomain)
	s.Equal(uint32(5), intent.Spec.DestinationDomain)
	s.Equal(big.NewInt(10000), intent.Spec.Value)
	s.Equal(big.NewInt(22000100+gateway.DEFAULT_EXPIRATION_BUFFER), intent.MaxBlockHeight)
	s.Equal(big.NewInt(3000000), intent.MaxFee)
	s.Equal(intent.Spec.SourceDepositor, intent.Spec.SourceSigner)
	s.True(intent.Spec.DestinationCaller.IsZero())
	s.False(intent.Spec.Salt.IsZero())
}

func (s *IntentBuilderTestSuite) Test_Build_Overrides() {
	s.mockInfo.EXPECT().DomainInfo(gomock.Any()).Return([]gateway.DomainInfo{
		{Domain: 0, ProcessedHeight: 22000000, BurnIntentExpirationHeight: 22000100},
	}, nil)

	intent, err := s.builder.Build(
		context.Background(),
		0,
		5,
		"0.01",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		gateway.BuildOpts{
			MaxFee:            big.NewInt(5000000),
			ExpirationBuffer:  100,
			DestinationCaller: "So11111111111111111111111111111111111111112",
		},
	)

	s.Nil(err)
	s.Equal(big.NewInt(22000200), intent.MaxBlockHeight)
	s.Equal(big.NewInt(5000000), intent.MaxFee)
	s.False(intent.Spec.DestinationCaller.IsZero())
}

func (s *IntentBuilderTestSuite) Test_Build_UniqueSalts() {
	s.mockInfo.EXPECT().DomainInfo(gomock.Any()).Return([]gateway.DomainInfo{
		{Domain: 0, ProcessedHeight: 22000000, BurnIntentExpirationHeight: 22000100},
	}, nil).Times(2)

	first, err := s.builder.Build(
		context.Background(),
		0,
		5,
		"0.01",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		gateway.BuildOpts{},
	)
	s.Nil(err)
	second, err := s.builder.Build(
		context.Background(),
		0,
		5,
		"0.01",
		"0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		gateway.BuildOpts{},
	)
	s.Nil(err)

	s.NotEqual(first.Spec.Salt, second.Spec.Salt)
}

func (s *IntentBuilderTestSuite) Test_ToBaseUnits() {
	tests := []struct {
		amount   string
		decimals uint8
		want     *big.Int
		wantErr  bool
	}{
		{amount: "1", decimals: 6, want: big.NewInt(1000000)},
		{amount: "0.01", decimals: 6, want: big.NewInt(10000)},
		{amount: "0.000001", decimals: 6, want: big.NewInt(1)},
		{amount: "0.0000001", decimals: 6, wantErr: true},
		{amount: "0", decimals: 6, wantErr: true},
		{amount: "-1", decimals: 6, wantErr: true},
		{amount: "abc", decimals: 6, wantErr: true},
	}

	for _, tc := range tests {
		got, err := gateway.ToBaseUnits(tc.amount, tc.decimals)
		if tc.wantErr {
			s.NotNil(err, tc.amount)
		} else {
			s.Nil(err, tc.amount)
			s.Equal(tc.want, got, tc.amount)
		}
	}
}
