package gateway

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DOMAIN_NAME = "GatewayWallet"
	VERSION     = "1"
)

type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signer rejected burn intent: %s", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// TypedDataSigner is the external signing capability (private key holder,
// hardware wallet or managed-wallet signer) used to authorize burn intents.
type TypedDataSigner interface {
	Address() common.Address
	SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error)
}

// IntentTypedData lays the burn intent out as EIP-712 typed data the way the
// Gateway Wallet verifies it: two nested record types with fixed field order
// under the GatewayWallet domain. The domain deliberately binds neither
// chainId nor verifyingContract; a burn intent authorizes a cross-chain
// movement and is not scoped to a single chain.
func IntentTypedData(intent *BurnIntent) apitypes.TypedData {
	spec := intent.Spec
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
			},
			"TransferSpec": []apitypes.Type{
				{Name: "version", Type: "uint32"},
				{Name: "sourceDomain", Type: "uint32"},
				{Name: "destinationDomain", Type: "uint32"},
				{Name: "sourceContract", Type: "bytes32"},
				{Name: "destinationContract", Type: "bytes32"},
				{Name: "sourceToken", Type: "bytes32"},
				{Name: "destinationToken", Type: "bytes32"},
				{Name: "sourceDepositor", Type: "bytes32"},
				{Name: "destinationRecipient", Type: "bytes32"},
				{Name: "sourceSigner", Type: "bytes32"},
				{Name: "destinationCaller", Type: "bytes32"},
				{Name: "value", Type: "uint256"},
				{Name: "salt", Type: "bytes32"},
				{Name: "hookData", Type: "bytes"},
			},
			"BurnIntent": []apitypes.Type{
				{Name: "maxBlockHeight", Type: "uint256"},
				{Name: "maxFee", Type: "uint256"},
				{Name: "spec", Type: "TransferSpec"},
			},
		},
		PrimaryType: "BurnIntent",
		Domain: apitypes.TypedDataDomain{
			Name:    DOMAIN_NAME,
			Version: VERSION,
		},
		Message: apitypes.TypedDataMessage{
			"maxBlockHeight": intent.MaxBlockHeight,
			"maxFee":         intent.MaxFee,
			"spec": map[string]interface{}{
				"version":              new(big.Int).SetUint64(uint64(spec.Version)),
				"sourceDomain":         new(big.Int).SetUint64(uint64(spec.SourceDomain)),
				"destinationDomain":    new(big.Int).SetUint64(uint64(spec.DestinationDomain)),
				"sourceContract":       hexutil.Encode(spec.SourceContract[:]),
				"destinationContract":  hexutil.Encode(spec.DestinationContract[:]),
				"sourceToken":          hexutil.Encode(spec.SourceToken[:]),
				"destinationToken":     hexutil.Encode(spec.DestinationToken[:]),
				"sourceDepositor":      hexutil.Encode(spec.SourceDepositor[:]),
				"destinationRecipient": hexutil.Encode(spec.DestinationRecipient[:]),
				"sourceSigner":         hexutil.Encode(spec.SourceSigner[:]),
				"destinationCaller":    hexutil.Encode(spec.DestinationCaller[:]),
				"value":                spec.Value,
				"salt":                 hexutil.Encode(spec.Salt[:]),
				"hookData":             hexutil.Encode(spec.HookData),
			},
		},
	}
}

// SignIntent produces a signed burn intent using the provided signing
// capability.
func SignIntent(ctx context.Context, signer TypedDataSigner, intent *BurnIntent) (*SignedBurnIntent, error) {
	signature, err := signer.SignTypedData(ctx, IntentTypedData(intent))
	if err != nil {
		return nil, &SigningError{Err: err}
	}

	return &SignedBurnIntent{
		Intent:    *intent,
		Signature: signature,
	}, nil
}
