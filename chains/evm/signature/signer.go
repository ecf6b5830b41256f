package signature

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// LocalSigner signs typed data with an in-memory secp256k1 private key. It
// is the simplest implementation of the signer capability; managed-wallet
// integrations substitute their own.
type LocalSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewLocalSigner(hexKey string) (*LocalSigner, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &LocalSigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *LocalSigner) Address() common.Address {
	return s.address
}

func (s *LocalSigner) PrivateKey() *ecdsa.PrivateKey {
	return s.key
}

func (s *LocalSigner) SignTypedData(_ context.Context, data apitypes.TypedData) ([]byte, error) {
	digest, err := TypedDataDigest(data)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, err
	}

	// contracts expect the legacy recovery id
	sig[64] += 27
	return sig, nil
}

// TypedDataDigest calculates the EIP-712 digest that has to be signed and
// verified on-chain.
func TypedDataDigest(data apitypes.TypedData) ([]byte, error) {
	domainSeparator, err := data.HashStruct("EIP712Domain", data.Domain.Map())
	if err != nil {
		return []byte{}, err
	}

	messageHash, err := data.HashStruct(data.PrimaryType, data.Message)
	if err != nil {
		return []byte{}, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(messageHash)))
	return crypto.Keccak256(rawData), nil
}
