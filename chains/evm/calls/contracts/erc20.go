package contracts

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/unifiedusdc/gateway-client/chains/evm"
)

const erc20ABI = `[
	{"name":"allowance","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"approve","type":"function","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

type ERC20Contract struct {
	client     evm.Client
	transactor *evm.Transactor
	address    common.Address
	abi        abi.ABI
}

func NewERC20Contract(client evm.Client, transactor *evm.Transactor, address common.Address) (*ERC20Contract, error) {
	a, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, err
	}

	return &ERC20Contract{
		client:     client,
		transactor: transactor,
		address:    address,
		abi:        a,
	}, nil
}

func (c *ERC20Contract) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	data, err := c.abi.Pack("allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	res, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, err
	}

	out, err := c.abi.Unpack("allowance", res)
	if err != nil {
		return nil, err
	}

	allowance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("cannot convert allowance result")
	}
	return allowance, nil
}

func (c *ERC20Contract) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	data, err := c.abi.Pack("balanceOf", account)
	if err != nil {
		return nil, err
	}

	res, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, err
	}

	out, err := c.abi.Unpack("balanceOf", res)
	if err != nil {
		return nil, err
	}

	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("cannot convert balance result")
	}
	return balance, nil
}

func (c *ERC20Contract) Approve(ctx context.Context, spender common.Address, value *big.Int) (*types.Receipt, error) {
	data, err := c.abi.Pack("approve", spender, value)
	if err != nil {
		return nil, err
	}

	return c.transactor.Transact(ctx, c.address, data)
}
