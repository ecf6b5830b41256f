package contracts

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/unifiedusdc/gateway-client/chains/evm"
)

const gatewayMinterABI = `[
	{"name":"gatewayMint","type":"function","stateMutability":"nonpayable","inputs":[{"name":"attestation","type":"bytes"},{"name":"operatorSignature","type":"bytes"}],"outputs":[]}
]`

// GatewayMinterContract redeems attestations into minted funds on the
// destination chain.
type GatewayMinterContract struct {
	transactor *evm.Transactor
	address    common.Address
	abi        abi.ABI
}

func NewGatewayMinterContract(transactor *evm.Transactor, address common.Address) (*GatewayMinterContract, error) {
	a, err := abi.JSON(strings.NewReader(gatewayMinterABI))
	if err != nil {
		return nil, err
	}

	return &GatewayMinterContract{
		transactor: transactor,
		address:    address,
		abi:        a,
	}, nil
}

func (c *GatewayMinterContract) GatewayMint(ctx context.Context, attestation, operatorSignature []byte) (*types.Receipt, error) {
	data, err := c.abi.Pack("gatewayMint", attestation, operatorSignature)
	if err != nil {
		return nil, err
	}

	return c.transactor.Transact(ctx, c.address, data)
}
