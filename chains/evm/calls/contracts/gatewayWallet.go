package contracts

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/unifiedusdc/gateway-client/chains/evm"
)

const gatewayWalletABI = `[
	{"name":"deposit","type":"function","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"value","type":"uint256"}],"outputs":[]}
]`

// GatewayWalletContract escrows source-chain funds for the Gateway.
type GatewayWalletContract struct {
	transactor *evm.Transactor
	address    common.Address
	abi        abi.ABI
}

func NewGatewayWalletContract(transactor *evm.Transactor, address common.Address) (*GatewayWalletContract, error) {
	a, err := abi.JSON(strings.NewReader(gatewayWalletABI))
	if err != nil {
		return nil, err
	}

	return &GatewayWalletContract{
		transactor: transactor,
		address:    address,
		abi:        a,
	}, nil
}

func (c *GatewayWalletContract) Address() common.Address {
	return c.address
}

func (c *GatewayWalletContract) Deposit(ctx context.Context, token common.Address, value *big.Int) (*types.Receipt, error) {
	data, err := c.abi.Pack("deposit", token, value)
	if err != nil {
		return nil, err
	}

	return c.transactor.Transact(ctx, c.address, data)
}
