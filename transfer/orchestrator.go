package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unifiedusdc/gateway-client/cache"
	"github.com/unifiedusdc/gateway-client/config"
	"github.com/unifiedusdc/gateway-client/config/chain"
	"github.com/unifiedusdc/gateway-client/metrics"
	"github.com/unifiedusdc/gateway-client/protocol/gateway"
)

type State string

const (
	Init                      State = "Init"
	DepositPending            State = "DepositPending"
	DepositFinalized          State = "DepositFinalized"
	IntentSigned              State = "IntentSigned"
	Submitted                 State = "Submitted"
	Attested                  State = "Attested"
	MintPending               State = "MintPending"
	Minted                    State = "Minted"
	MintFailedAwaitingRelayer State = "MintFailedAwaitingRelayer"
)

// GatewayAPI is the attestation service surface the orchestrator drives.
type GatewayAPI interface {
	DomainInfo(ctx context.Context) ([]gateway.DomainInfo, error)
	Balances(ctx context.Context, token string, sources []gateway.DepositSource) ([]gateway.DomainBalance, error)
	SubmitTransfer(ctx context.Context, intents []gateway.SignedBurnIntent) (*gateway.TransferResult, error)
}

// IntentBuilder builds burn intents out of transfer parameters.
type IntentBuilder interface {
	Build(
		ctx context.Context,
		sourceDomain uint32,
		destinationDomain uint32,
		amount string,
		depositor string,
		recipient string,
		opts gateway.BuildOpts,
	) (*gateway.BurnIntent, error)
}

type Request struct {
	Source      uint32
	Destination uint32
	// Amount is a decimal string in token units, e.g. "0.01".
	Amount    string
	Depositor Depositor
	Recipient string
	Opts      gateway.BuildOpts
}

// Outcome reports the terminal state of a transfer attempt. Both Minted and
// MintFailedAwaitingRelayer leave no funds at risk; the latter defers
// completion to the service's own relayer.
type Outcome struct {
	State      State
	TransferID string
	Deposit    *DepositRecord
	Result     *gateway.TransferResult
}

// Orchestrator sequences one end-to-end transfer: escrow the deposit, build
// and sign the burn intent, submit it for attestation and execute the
// destination mint. There is no cancellation once an intent is submitted;
// the attestation exists server-side regardless of client behavior.
type Orchestrator struct {
	registry     *config.Registry
	api          GatewayAPI
	builder      IntentBuilder
	signer       gateway.TypedDataSigner
	coordinator  *DepositCoordinator
	executors    map[chain.Family]MintExecutor
	attestations *cache.AttestationCache
	metrics      *metrics.TransferMetrics

	// RelayerFallbackWait bounds the post-failure wait before handing the
	// mint over to the service relayer.
	RelayerFallbackWait time.Duration
}

func NewOrchestrator(
	registry *config.Registry,
	api GatewayAPI,
	builder IntentBuilder,
	signer gateway.TypedDataSigner,
	coordinator *DepositCoordinator,
	executors map[chain.Family]MintExecutor,
	attestations *cache.AttestationCache,
	m *metrics.TransferMetrics,
) *Orchestrator {
	return &Orchestrator{
		registry:            registry,
		api:                 api,
		builder:             builder,
		signer:              signer,
		coordinator:         coordinator,
		executors:           executors,
		attestations:        attestations,
		metrics:             m,
		RelayerFallbackWait: DEFAULT_RELAYER_FALLBACK_WAIT,
	}
}

// Transfer drives a single transfer attempt through the state machine
// Init -> DepositPending -> DepositFinalized -> IntentSigned -> Submitted ->
// Attested -> MintPending -> {Minted | MintFailedAwaitingRelayer}.
func (o *Orchestrator) Transfer(ctx context.Context, req Request) (*Outcome, error) {
	start := time.Now()
	l := log.With().
		Str("attempt", uuid.NewString()).
		Uint32("source", req.Source).
		Uint32("destination", req.Destination).
		Logger()
	o.metrics.TrackStart(ctx)

	// transfer parameters are validated before any funds move
	if req.Source == req.Destination {
		return nil, &gateway.InvalidTransferError{Reason: "source and destination chain are the same"}
	}
	src, err := o.registry.Get(req.Source)
	if err != nil {
		return nil, err
	}
	dst, err := o.registry.Get(req.Destination)
	if err != nil {
		return nil, err
	}
	executor, ok := o.executors[dst.Family]
	if !ok {
		return nil, &gateway.InvalidTransferError{
			Reason: "no mint executor for chain family '" + string(dst.Family) + "'",
		}
	}
	value, err := gateway.ToBaseUnits(req.Amount, src.Decimals)
	if err != nil {
		return nil, err
	}

	o.logState(l, DepositPending)
	record, err := o.coordinator.EnsureDeposited(ctx, src, req.Depositor, value)
	if err != nil {
		return nil, err
	}
	if !record.Finalized {
		l.Warn().Msgf("Deposit %s not recognized by the service within the poll ceiling", record.TxHash)
		return &Outcome{State: DepositPending, Deposit: record}, nil
	}
	o.logState(l, DepositFinalized)

	// the expiration height is read after the deposit wait so the intent
	// validity window starts from the current chain state
	intent, err := o.builder.Build(ctx, req.Source, req.Destination, req.Amount, req.Depositor.Address(), req.Recipient, req.Opts)
	if err != nil {
		return nil, err
	}

	signed, err := gateway.SignIntent(ctx, o.signer, intent)
	if err != nil {
		return nil, err
	}
	o.logState(l, IntentSigned)

	o.logState(l, Submitted)
	result, err := o.api.SubmitTransfer(ctx, []gateway.SignedBurnIntent{*signed})
	if err != nil {
		return nil, err
	}
	o.attestations.Set(result)
	o.logState(l, Attested)
	l.Info().Msgf("Transfer %s attested", result.TransferID)

	o.logState(l, MintPending)
	if err := CheckAttestationWindow(result, time.Now()); err != nil {
		return nil, err
	}

	err = executor.ExecuteMint(ctx, result.Attestation, result.OperatorSignature)
	if err != nil {
		var mintErr *MintExecutionError
		if !errors.As(err, &mintErr) {
			return nil, err
		}

		// the attestation is not lost; the service relayer can still
		// complete the mint asynchronously
		l.Warn().Err(mintErr).Msgf("Mint failed, waiting %s for the service relayer", o.RelayerFallbackWait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(o.RelayerFallbackWait):
		}

		if retryErr := o.RetryMint(ctx, req.Destination, result.TransferID); retryErr != nil {
			l.Warn().Err(retryErr).Msgf("Mint retry for transfer %s failed", result.TransferID)

			o.metrics.TrackRelayerFallback(ctx)
			o.logState(l, MintFailedAwaitingRelayer)
			return &Outcome{
				State:      MintFailedAwaitingRelayer,
				TransferID: result.TransferID,
				Deposit:    record,
				Result:     result,
			}, nil
		}
	}

	o.metrics.TrackMinted(ctx, start)
	o.logState(l, Minted)
	return &Outcome{
		State:      Minted,
		TransferID: result.TransferID,
		Deposit:    record,
		Result:     result,
	}, nil
}

// RetryMint re-executes the destination mint for an already attested
// transfer, reusing the cached attestation while it is inside its validity
// window. A transfer past the window has to be restarted with a fresh
// intent.
func (o *Orchestrator) RetryMint(ctx context.Context, destination uint32, transferID string) error {
	dst, err := o.registry.Get(destination)
	if err != nil {
		return err
	}
	executor, ok := o.executors[dst.Family]
	if !ok {
		return &gateway.InvalidTransferError{
			Reason: "no mint executor for chain family '" + string(dst.Family) + "'",
		}
	}

	result, err := o.attestations.Attestation(transferID)
	if err != nil {
		return err
	}
	if err := CheckAttestationWindow(result, time.Now()); err != nil {
		return err
	}

	return executor.ExecuteMint(ctx, result.Attestation, result.OperatorSignature)
}

func (o *Orchestrator) logState(l zerolog.Logger, state State) {
	l.Debug().Msgf("Transfer state: %s", state)
}
