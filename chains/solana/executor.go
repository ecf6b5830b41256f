package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog/log"

	"github.com/unifiedusdc/gateway-client/transfer"
)

const (
	CONFIRMATION_POLL_INTERVAL = 2 * time.Second
	CONFIRMATION_TIMEOUT       = 90 * time.Second
)

// MintExecutor redeems an attestation through the Gateway Minter program.
// The mint is permissionless, so the payer doubles as destination caller.
type MintExecutor struct {
	domain    uint32
	client    *rpc.Client
	payer     solana.PrivateKey
	program   solana.PublicKey
	mint      solana.PublicKey
	recipient solana.PublicKey
	accounts  *MinterAccountsConfig
}

func NewMintExecutor(
	domain uint32,
	client *rpc.Client,
	payer solana.PrivateKey,
	program solana.PublicKey,
	mint solana.PublicKey,
	recipient solana.PublicKey,
	accounts *MinterAccountsConfig,
) *MintExecutor {
	return &MintExecutor{
		domain:    domain,
		client:    client,
		payer:     payer,
		program:   program,
		mint:      mint,
		recipient: recipient,
		accounts:  accounts,
	}
}

func (e *MintExecutor) ExecuteMint(ctx context.Context, attestation, operatorSignature []byte) error {
	recipientATA, createATA, err := e.ensureTokenAccount(ctx)
	if err != nil {
		return &transfer.MintExecutionError{Domain: e.domain, Err: err}
	}

	instructions := make([]solana.Instruction, 0, 2)
	if createATA != nil {
		instructions = append(instructions, createATA)
	}
	instructions = append(instructions, NewMintInstruction(MintAccounts{
		Payer:                 e.payer.PublicKey(),
		DestinationCaller:     e.payer.PublicKey(),
		MinterConfig:          e.accounts.MinterConfig,
		SystemProgram:         solana.SystemProgramID,
		TokenProgram:          solana.TokenProgramID,
		AuxiliaryAccount:      e.accounts.AuxiliaryAccount,
		MinterProgram:         e.program,
		SourceTokenAccount:    e.accounts.SourceTokenAccount,
		RecipientTokenAccount: recipientATA,
		StateAccount:          e.accounts.StateAccount,
	}, attestation, operatorSignature))

	blockhash, err := e.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return &transfer.MintExecutionError{Domain: e.domain, Err: err}
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash.Value.Blockhash,
		solana.TransactionPayer(e.payer.PublicKey()),
	)
	if err != nil {
		return &transfer.MintExecutionError{Domain: e.domain, Err: err}
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(e.payer.PublicKey()) {
			return &e.payer
		}
		return nil
	})
	if err != nil {
		return &transfer.MintExecutionError{Domain: e.domain, Err: err}
	}

	sig, err := e.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return &transfer.MintExecutionError{Domain: e.domain, Err: err}
	}
	log.Debug().Uint32("domain", e.domain).Msgf("Submitted mint transaction %s", sig)

	if err := e.confirm(ctx, sig); err != nil {
		return &transfer.MintExecutionError{
			Domain: e.domain,
			Logs:   e.transactionLogs(ctx, sig),
			Err:    err,
		}
	}

	return nil
}

func (e *MintExecutor) ensureTokenAccount(ctx context.Context) (solana.PublicKey, solana.Instruction, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(e.recipient, e.mint)
	if err != nil {
		return solana.PublicKey{}, nil, err
	}

	_, err = e.client.GetAccountInfo(ctx, ata)
	if err == nil {
		return ata, nil, nil
	}
	if !errors.Is(err, rpc.ErrNotFound) {
		return solana.PublicKey{}, nil, err
	}

	create, err := associatedtokenaccount.NewCreateInstruction(
		e.payer.PublicKey(),
		e.recipient,
		e.mint,
	).ValidateAndBuild()
	if err != nil {
		return solana.PublicKey{}, nil, err
	}

	return ata, create, nil
}

func (e *MintExecutor) confirm(ctx context.Context, sig solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, CONFIRMATION_TIMEOUT)
	defer cancel()

	ticker := time.NewTicker(CONFIRMATION_POLL_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("confirmation timed out for %s: %w", sig, ctx.Err())
		case <-ticker.C:
		}

		statuses, err := e.client.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			continue
		}
		if len(statuses.Value) == 0 || statuses.Value[0] == nil {
			continue
		}

		status := statuses.Value[0]
		if status.Err != nil {
			return fmt.Errorf("transaction %s failed: %v", sig, status.Err)
		}
		if status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
			status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
			return nil
		}
	}
}

func (e *MintExecutor) transactionLogs(ctx context.Context, sig solana.Signature) []string {
	tx, err := e.client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding: solana.EncodingBase64,
	})
	if err != nil || tx.Meta == nil {
		return nil
	}

	return tx.Meta.LogMessages
}
