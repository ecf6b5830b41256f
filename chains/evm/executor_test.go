package evm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/unifiedusdc/gateway-client/chains/evm"
	mock_evm "github.com/unifiedusdc/gateway-client/chains/evm/mock"
	"github.com/unifiedusdc/gateway-client/transfer"
)

type MintExecutorTestSuite struct {
	suite.Suite

	mockMinter *mock_evm.MockMinterContract

	executor *evm.MintExecutor
}

func TestRunMintExecutorTestSuite(t *testing.T) {
	suite.Run(t, new(MintExecutorTestSuite))
}

func (s *MintExecutorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockMinter = mock_evm.NewMockMinterContract(ctrl)
	s.executor = evm.NewMintExecutor(6, s.mockMinter)
}

func (s *MintExecutorTestSuite) Test_ExecuteMint_Successful() {
	s.mockMinter.EXPECT().GatewayMint(gomock.Any(), []byte{0x01}, []byte{0x02}).Return(&types.Receipt{}, nil)

	err := s.executor.ExecuteMint(context.Background(), []byte{0x01}, []byte{0x02})

	s.Nil(err)
}

func (s *MintExecutorTestSuite) Test_ExecuteMint_Failed() {
	s.mockMinter.EXPECT().GatewayMint(gomock.Any(), []byte{0x01}, []byte{0x02}).Return(nil, errors.New("execution reverted"))

	err := s.executor.ExecuteMint(context.Background(), []byte{0x01}, []byte{0x02})

	s.NotNil(err)
	var mintErr *transfer.MintExecutionError
	s.True(errors.As(err, &mintErr))
	s.Equal(uint32(6), mintErr.Domain)
}
