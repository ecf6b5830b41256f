package evm

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/unifiedusdc/gateway-client/transfer"
)

type MinterContract interface {
	GatewayMint(ctx context.Context, attestation, operatorSignature []byte) (*types.Receipt, error)
}

// MintExecutor redeems an attestation through the destination Gateway
// Minter contract.
type MintExecutor struct {
	domain uint32
	minter MinterContract
}

func NewMintExecutor(domain uint32, minter MinterContract) *MintExecutor {
	return &MintExecutor{
		domain: domain,
		minter: minter,
	}
}

func (e *MintExecutor) ExecuteMint(ctx context.Context, attestation, operatorSignature []byte) error {
	if _, err := e.minter.GatewayMint(ctx, attestation, operatorSignature); err != nil {
		return &transfer.MintExecutionError{Domain: e.domain, Err: err}
	}

	return nil
}
