package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/unifiedusdc/gateway-client/transfer"
)

type TokenContract interface {
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	Approve(ctx context.Context, spender common.Address, value *big.Int) (*types.Receipt, error)
}

type WalletContract interface {
	Address() common.Address
	Deposit(ctx context.Context, token common.Address, value *big.Int) (*types.Receipt, error)
}

// Depositor escrows USDC into the source chain's Gateway Wallet contract:
// approve when the current allowance is insufficient, then deposit.
type Depositor struct {
	domain    uint32
	from      common.Address
	token     TokenContract
	wallet    WalletContract
	tokenAddr common.Address
}

func NewDepositor(
	domain uint32,
	from common.Address,
	token TokenContract,
	wallet WalletContract,
	tokenAddr common.Address,
) *Depositor {
	return &Depositor{
		domain:    domain,
		from:      from,
		token:     token,
		wallet:    wallet,
		tokenAddr: tokenAddr,
	}
}

func (d *Depositor) Address() string {
	return d.from.Hex()
}

func (d *Depositor) Deposit(ctx context.Context, amount *big.Int) (string, error) {
	allowance, err := d.token.Allowance(ctx, d.from, d.wallet.Address())
	if err != nil {
		return "", &transfer.DepositFailure{Domain: d.domain, Err: err}
	}

	if allowance.Cmp(amount) < 0 {
		log.Debug().Uint32("domain", d.domain).Msgf("Allowance %s below deposit amount %s, approving", allowance, amount)
		if _, err := d.token.Approve(ctx, d.wallet.Address(), amount); err != nil {
			return "", &transfer.DepositFailure{Domain: d.domain, Err: err}
		}
	}

	receipt, err := d.wallet.Deposit(ctx, d.tokenAddr, amount)
	if err != nil {
		return "", &transfer.DepositFailure{Domain: d.domain, Err: err}
	}

	return receipt.TxHash.Hex(), nil
}
