package transfer

import (
	"context"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unifiedusdc/gateway-client/config/chain"
	"github.com/unifiedusdc/gateway-client/protocol/gateway"
)

const (
	USDC_TOKEN = "USDC"

	DEFAULT_BALANCE_POLL_INTERVAL = 30 * time.Second
	// DEFAULT_BALANCE_POLL_ATTEMPTS is a safety ceiling, not an expected
	// duration. Chains requiring deep confirmation may need most of it.
	DEFAULT_BALANCE_POLL_ATTEMPTS = 20
)

// Depositor escrows funds into the source chain's Gateway Wallet and
// reports the depositor's chain-native address.
type Depositor interface {
	Address() string
	Deposit(ctx context.Context, amount *big.Int) (string, error)
}

// BalanceSource reports the per-domain escrowed balances the attestation
// service currently recognizes.
type BalanceSource interface {
	Balances(ctx context.Context, token string, sources []gateway.DepositSource) ([]gateway.DomainBalance, error)
}

// DepositRecord is ephemeral, created for a deposit transaction and
// discarded once the transfer using it completes.
type DepositRecord struct {
	Domain    uint32
	Depositor string
	Amount    *big.Int
	TxHash    string
	Finalized bool
}

// DepositCoordinator ensures funds are escrowed on the source chain and
// waits for the attestation service to recognize the deposit as finalized.
type DepositCoordinator struct {
	balances     BalanceSource
	pollInterval time.Duration
	maxAttempts  int
}

func NewDepositCoordinator(balances BalanceSource, pollInterval time.Duration, maxAttempts int) *DepositCoordinator {
	if pollInterval == 0 {
		pollInterval = DEFAULT_BALANCE_POLL_INTERVAL
	}
	if maxAttempts == 0 {
		maxAttempts = DEFAULT_BALANCE_POLL_ATTEMPTS
	}

	return &DepositCoordinator{
		balances:     balances,
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
	}
}

// EnsureDeposited submits the deposit and polls the service until the
// reported balance reflects it. Exceeding the poll ceiling is a soft
// condition: the record comes back with Finalized=false and the deposit
// stays on-chain, eventually usable.
func (c *DepositCoordinator) EnsureDeposited(
	ctx context.Context,
	cfg *chain.ChainConfig,
	depositor Depositor,
	amount *big.Int,
) (*DepositRecord, error) {
	canonicalDepositor, err := gateway.ToCanonical(depositor.Address(), cfg.Family)
	if err != nil {
		return nil, err
	}
	sources := []gateway.DepositSource{
		{Domain: cfg.DomainID, Depositor: canonicalDepositor},
	}

	baseline, err := c.recognizedBalance(ctx, cfg.DomainID, sources)
	if err != nil {
		return nil, err
	}
	target := new(big.Int).Add(baseline, amount)

	txHash, err := depositor.Deposit(ctx, amount)
	if err != nil {
		return nil, err
	}

	record := &DepositRecord{
		Domain:    cfg.DomainID,
		Depositor: depositor.Address(),
		Amount:    amount,
		TxHash:    txHash,
	}

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		balance, err := c.recognizedBalance(ctx, cfg.DomainID, sources)
		if err != nil {
			return nil, err
		}
		if balance.Cmp(target) >= 0 {
			record.Finalized = true
			return record, nil
		}

		log.Debug().
			Uint32("domain", cfg.DomainID).
			Msgf("Deposit not finalized after attempt %d/%d, recognized balance %s of %s", attempt, c.maxAttempts, balance, target)

		if attempt == c.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}

	return record, nil
}

func (c *DepositCoordinator) recognizedBalance(ctx context.Context, domain uint32, sources []gateway.DepositSource) (*big.Int, error) {
	balances, err := c.balances.Balances(ctx, USDC_TOKEN, sources)
	if err != nil {
		return nil, err
	}

	for _, b := range balances {
		if b.Domain == domain {
			return b.Balance, nil
		}
	}

	return big.NewInt(0), nil
}
