package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
)

const RECEIPT_POLL_INTERVAL = 3 * time.Second

// Transactor signs and submits dynamic-fee transactions for a single
// account and waits for their receipts. Calls on the same account must be
// serialized by the caller; concurrent submissions risk nonce conflicts.
type Transactor struct {
	client  Client
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
}

func NewTransactor(ctx context.Context, client Client, key *ecdsa.PrivateKey) (*Transactor, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain id: %w", err)
	}

	return &Transactor{
		client:  client,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

func (t *Transactor) From() common.Address {
	return t.from
}

// Transact submits a contract call and blocks until its receipt is
// available or the context is done.
func (t *Transactor) Transact(ctx context.Context, to common.Address, data []byte) (*types.Receipt, error) {
	nonce, err := t.client.PendingNonceAt(ctx, t.from)
	if err != nil {
		return nil, err
	}

	tip, err := t.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, err
	}
	head, err := t.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	gas, err := t.client.EstimateGas(ctx, ethereum.CallMsg{
		From: t.from,
		To:   &to,
		Data: data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   t.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Data:      data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(t.chainID), t.key)
	if err != nil {
		return nil, err
	}

	if err := t.client.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}
	log.Debug().Str("tx", signed.Hash().Hex()).Msgf("Submitted transaction to %s", to.Hex())

	return t.waitMined(ctx, signed.Hash())
}

func (t *Transactor) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(RECEIPT_POLL_INTERVAL)
	defer ticker.Stop()

	for {
		receipt, err := t.client.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, fmt.Errorf("transaction %s reverted", hash.Hex())
			}
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
