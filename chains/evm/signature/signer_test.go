package signature_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/unifiedusdc/gateway-client/chains/evm/signature"
	"github.com/unifiedusdc/gateway-client/protocol/gateway"
)

type LocalSignerTestSuite struct {
	suite.Suite

	signer *signature.LocalSigner
}

func TestRunLocalSignerTestSuite(t *testing.T) {
	suite.Run(t, new(LocalSignerTestSuite))
}

func (s *LocalSignerTestSuite) SetupTest() {
	signer, err := signature.NewLocalSigner("cb68b25ff3d517e3d9e0a40e31ef3bca3efc54adf1af1ff4f11f9c0a0a945b6f")
	s.Nil(err)
	s.signer = signer
}

func (s *LocalSignerTestSuite) Test_NewLocalSigner_InvalidKey() {
	_, err := signature.NewLocalSigner("not-a-key")

	s.NotNil(err)
}

func (s *LocalSignerTestSuite) Test_SignTypedData_Recoverable() {
	intent := &gateway.BurnIntent{
		MaxBlockHeight: big.NewInt(22005100),
		MaxFee:         big.NewInt(2000000),
		Spec: gateway.TransferSpec{
			Version:              gateway.SpecVersion,
			SourceDomain:         0,
			DestinationDomain:    6,
			SourceContract:       gateway.Bytes32{0x01},
			DestinationContract:  gateway.Bytes32{0x02},
			SourceToken:          gateway.Bytes32{0x03},
			DestinationToken:     gateway.Bytes32{0x04},
			SourceDepositor:      gateway.Bytes32{0x05},
			DestinationRecipient: gateway.Bytes32{0x06},
			SourceSigner:         gateway.Bytes32{0x05},
			Value:                big.NewInt(10000),
			Salt:                 gateway.Bytes32{0x07},
		},
	}
	data := gateway.IntentTypedData(intent)

	sig, err := s.signer.SignTypedData(context.Background(), data)
	s.Nil(err)
	s.Equal(65, len(sig))

	digest, err := signature.TypedDataDigest(data)
	s.Nil(err)

	recovery := make([]byte, 65)
	copy(recovery, sig)
	recovery[64] -= 27
	pub, err := crypto.SigToPub(digest, recovery)
	s.Nil(err)
	s.Equal(s.signer.Address(), crypto.PubkeyToAddress(*pub))
}

func (s *LocalSignerTestSuite) Test_SignIntent_WrapsSignature() {
	intent := &gateway.BurnIntent{
		MaxBlockHeight: big.NewInt(22005100),
		MaxFee:         big.NewInt(2000000),
		Spec: gateway.TransferSpec{
			Version: gateway.SpecVersion,
			Value:   big.NewInt(1),
		},
	}

	signed, err := gateway.SignIntent(context.Background(), s.signer, intent)

	s.Nil(err)
	s.Equal(*intent, signed.Intent)
	s.Equal(65, len(signed.Signature))
}
