package transfer_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	"go.uber.org/mock/gomock"

	"github.com/unifiedusdc/gateway-client/cache"
	"github.com/unifiedusdc/gateway-client/config"
	"github.com/unifiedusdc/gateway-client/config/chain"
	"github.com/unifiedusdc/gateway-client/metrics"
	"github.com/unifiedusdc/gateway-client/protocol/gateway"
	mock_gateway "github.com/unifiedusdc/gateway-client/protocol/gateway/mock"
	"github.com/unifiedusdc/gateway-client/transfer"
	mock_transfer "github.com/unifiedusdc/gateway-client/transfer/mock"
)

const RECIPIENT_ADDRESS = "0x1886a1EB051C10F20C7386576A6a0716B20B2734"

type OrchestratorTestSuite struct {
	suite.Suite

	mockAPI       *mock_transfer.MockGatewayAPI
	mockBuilder   *mock_transfer.MockIntentBuilder
	mockSigner    *mock_gateway.MockTypedDataSigner
	mockBalances  *mock_transfer.MockBalanceSource
	mockDepositor *mock_transfer.MockDepositor
	mockExecutor  *mock_transfer.MockMintExecutor

	attestations *cache.AttestationCache
	orchestrator *transfer.Orchestrator
}

func TestRunOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.mockAPI = mock_transfer.NewMockGatewayAPI(ctrl)
	s.mockBuilder = mock_transfer.NewMockIntentBuilder(ctrl)
	s.mockSigner = mock_gateway.NewMockTypedDataSigner(ctrl)
	s.mockBalances = mock_transfer.NewMockBalanceSource(ctrl)
	s.mockExecutor = mock_transfer.NewMockMintExecutor(ctrl)

	s.mockDepositor = mock_transfer.NewMockDepositor(ctrl)
	s.mockDepositor.EXPECT().Address().Return(DEPOSITOR_ADDRESS).AnyTimes()

	registry := config.NewRegistry([]*chain.ChainConfig{
		{
			Name:     "ethereum",
			DomainID: 0,
			Family:   chain.FamilyEVM,
			Decimals: 6,
			MinFee:   big.NewInt(2000000),
		},
		{
			Name:     "base",
			DomainID: 6,
			Family:   chain.FamilyEVM,
			Decimals: 6,
			MinFee:   big.NewInt(2000000),
		},
	})

	m, err := metrics.NewTransferMetrics(otel.Meter("test"), "test")
	s.Nil(err)

	s.attestations = cache.NewAttestationCache()
	s.orchestrator = transfer.NewOrchestrator(
		registry,
		s.mockAPI,
		s.mockBuilder,
		s.mockSigner,
		transfer.NewDepositCoordinator(s.mockBalances, 1, 2),
		map[chain.Family]transfer.MintExecutor{
			chain.FamilyEVM: s.mockExecutor,
		},
		s.attestations,
		m,
	)
	s.orchestrator.RelayerFallbackWait = 0
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.attestations.Stop()
}

func (s *OrchestratorTestSuite) request() transfer.Request {
	return transfer.Request{
		Source:      0,
		Destination: 6,
		Amount:      "0.01",
		Depositor:   s.mockDepositor,
		Recipient:   RECIPIENT_ADDRESS,
	}
}

func (s *OrchestratorTestSuite) intent() *gateway.BurnIntent {
	return &gateway.BurnIntent{
		MaxBlockHeight: big.NewInt(22005100),
		MaxFee:         big.NewInt(2000000),
		Spec: gateway.TransferSpec{
			Version:           gateway.SpecVersion,
			SourceDomain:      0,
			DestinationDomain: 6,
			Value:             big.NewInt(10000),
		},
	}
}

func (s *OrchestratorTestSuite) expectDeposit() {
	gomock.InOrder(
		s.mockBalances.EXPECT().Balances(gomock.Any(), transfer.USDC_TOKEN, gomock.Any()).Return([]gateway.DomainBalance{
			{Domain: 0, Balance: big.NewInt(0)},
		}, nil),
		s.mockBalances.EXPECT().Balances(gomock.Any(), transfer.USDC_TOKEN, gomock.Any()).Return([]gateway.DomainBalance{
			{Domain: 0, Balance: big.NewInt(10000)},
		}, nil),
	)
	s.mockDepositor.EXPECT().Deposit(gomock.Any(), big.NewInt(10000)).Return("0xtxhash", nil)
}

func (s *OrchestratorTestSuite) expectAttestation(issuedAt time.Time) {
	s.mockBuilder.EXPECT().Build(
		gomock.Any(), uint32(0), uint32(6), "0.01", DEPOSITOR_ADDRESS, RECIPIENT_ADDRESS, gomock.Any(),
	).Return(s.intent(), nil)
	s.mockSigner.EXPECT().SignTypedData(gomock.Any(), gomock.Any()).Return(make([]byte, 65), nil)
	s.mockAPI.EXPECT().SubmitTransfer(gomock.Any(), gomock.Any()).Return(&gateway.TransferResult{
		TransferID:        "transfer-1",
		Attestation:       []byte{0x01},
		OperatorSignature: []byte{0x02},
		IssuedAt:          issuedAt,
	}, nil)
}

func (s *OrchestratorTestSuite) Test_Transfer_SameChain() {
	req := s.request()
	req.Destination = 0

	_, err := s.orchestrator.Transfer(context.Background(), req)

	s.NotNil(err)
	s.IsType(&gateway.InvalidTransferError{}, err)
}

func (s *OrchestratorTestSuite) Test_Transfer_UnknownChain() {
	req := s.request()
	req.Destination = 99

	_, err := s.orchestrator.Transfer(context.Background(), req)

	s.NotNil(err)
	s.IsType(&config.UnknownChainError{}, err)
}

func (s *OrchestratorTestSuite) Test_Transfer_DepositNotFinalized() {
	s.mockBalances.EXPECT().Balances(gomock.Any(), transfer.USDC_TOKEN, gomock.Any()).Return([]gateway.DomainBalance{
		{Domain: 0, Balance: big.NewInt(0)},
	}, nil).Times(3)
	s.mockDepositor.EXPECT().Deposit(gomock.Any(), big.NewInt(10000)).Return("0xtxhash", nil)

	outcome, err := s.orchestrator.Transfer(context.Background(), s.request())

	s.Nil(err)
	s.Equal(transfer.DepositPending, outcome.State)
	s.False(outcome.Deposit.Finalized)
}

func (s *OrchestratorTestSuite) Test_Transfer_Minted() {
	s.expectDeposit()
	s.expectAttestation(time.Now())
	s.mockExecutor.EXPECT().ExecuteMint(gomock.Any(), []byte{0x01}, []byte{0x02}).Return(nil)

	outcome, err := s.orchestrator.Transfer(context.Background(), s.request())

	s.Nil(err)
	s.Equal(transfer.Minted, outcome.State)
	s.Equal("transfer-1", outcome.TransferID)
	s.True(outcome.Deposit.Finalized)

	cached, err := s.attestations.Attestation("transfer-1")
	s.Nil(err)
	s.Equal([]byte{0x01}, cached.Attestation)
}

func (s *OrchestratorTestSuite) Test_Transfer_MintFailsAwaitingRelayer() {
	s.expectDeposit()
	s.expectAttestation(time.Now())
	s.mockExecutor.EXPECT().ExecuteMint(gomock.Any(), []byte{0x01}, []byte{0x02}).Return(&transfer.MintExecutionError{
		Domain: 6,
		Err:    errors.New("out of compute"),
	}).Times(2)

	outcome, err := s.orchestrator.Transfer(context.Background(), s.request())

	s.Nil(err)
	s.Equal(transfer.MintFailedAwaitingRelayer, outcome.State)
	s.Equal("transfer-1", outcome.TransferID)
}

func (s *OrchestratorTestSuite) Test_Transfer_MintRetrySucceeds() {
	s.expectDeposit()
	s.expectAttestation(time.Now())
	gomock.InOrder(
		s.mockExecutor.EXPECT().ExecuteMint(gomock.Any(), []byte{0x01}, []byte{0x02}).Return(&transfer.MintExecutionError{
			Domain: 6,
			Err:    errors.New("out of compute"),
		}),
		s.mockExecutor.EXPECT().ExecuteMint(gomock.Any(), []byte{0x01}, []byte{0x02}).Return(nil),
	)

	outcome, err := s.orchestrator.Transfer(context.Background(), s.request())

	s.Nil(err)
	s.Equal(transfer.Minted, outcome.State)
	s.Equal("transfer-1", outcome.TransferID)
}

func (s *OrchestratorTestSuite) Test_Transfer_NonMintErrorPropagates() {
	s.expectDeposit()
	s.expectAttestation(time.Now())
	s.mockExecutor.EXPECT().ExecuteMint(gomock.Any(), []byte{0x01}, []byte{0x02}).Return(errors.New("error"))

	_, err := s.orchestrator.Transfer(context.Background(), s.request())

	s.NotNil(err)
}

func (s *OrchestratorTestSuite) Test_Transfer_ExpiredAttestation() {
	s.expectDeposit()
	s.expectAttestation(time.Now().Add(-11 * time.Minute))

	_, err := s.orchestrator.Transfer(context.Background(), s.request())

	s.NotNil(err)
	s.IsType(&transfer.ExpiryError{}, err)
}

func (s *OrchestratorTestSuite) Test_Transfer_SigningErrorPropagates() {
	s.expectDeposit()
	s.mockBuilder.EXPECT().Build(
		gomock.Any(), uint32(0), uint32(6), "0.01", DEPOSITOR_ADDRESS, RECIPIENT_ADDRESS, gomock.Any(),
	).Return(s.intent(), nil)
	s.mockSigner.EXPECT().SignTypedData(gomock.Any(), gomock.Any()).Return(nil, errors.New("rejected"))

	_, err := s.orchestrator.Transfer(context.Background(), s.request())

	s.NotNil(err)
	s.IsType(&gateway.SigningError{}, err)
}

func (s *OrchestratorTestSuite) Test_RetryMint_MissingAttestation() {
	err := s.orchestrator.RetryMint(context.Background(), 6, "unknown")

	s.NotNil(err)
}

func (s *OrchestratorTestSuite) Test_RetryMint_ExpiredAttestation() {
	s.attestations.Set(&gateway.TransferResult{
		TransferID:        "transfer-1",
		Attestation:       []byte{0x01},
		OperatorSignature: []byte{0x02},
		IssuedAt:          time.Now().Add(-11 * time.Minute),
	})

	err := s.orchestrator.RetryMint(context.Background(), 6, "transfer-1")

	s.NotNil(err)
	s.IsType(&transfer.ExpiryError{}, err)
}

func (s *OrchestratorTestSuite) Test_RetryMint_Successful() {
	s.attestations.Set(&gateway.TransferResult{
		TransferID:        "transfer-1",
		Attestation:       []byte{0x01},
		OperatorSignature: []byte{0x02},
		IssuedAt:          time.Now(),
	})
	s.mockExecutor.EXPECT().ExecuteMint(gomock.Any(), []byte{0x01}, []byte{0x02}).Return(nil)

	err := s.orchestrator.RetryMint(context.Background(), 6, "transfer-1")

	s.Nil(err)
}

func Test_CheckAttestationWindow(t *testing.T) {
	now := time.Now()

	err := transfer.CheckAttestationWindow(&gateway.TransferResult{IssuedAt: now.Add(-time.Minute)}, now)
	if err != nil {
		t.Errorf("expected attestation inside the window to pass, got %v", err)
	}

	err = transfer.CheckAttestationWindow(&gateway.TransferResult{IssuedAt: now.Add(-transfer.ATTESTATION_TTL)}, now)
	var expiryErr *transfer.ExpiryError
	if !errors.As(err, &expiryErr) {
		t.Errorf("expected ExpiryError, got %v", err)
	}
}
