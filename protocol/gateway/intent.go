package gateway

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/unifiedusdc/gateway-client/config"
)

const (
	// DEFAULT_EXPIRATION_BUFFER is added to the source domain's reported
	// burn-intent expiration height so the intent stays valid while the
	// transaction is still in flight.
	DEFAULT_EXPIRATION_BUFFER = 5000
)

type InvalidTransferError struct {
	Reason string
}

func (e *InvalidTransferError) Error() string {
	return fmt.Sprintf("invalid transfer: %s", e.Reason)
}

// DomainInfoSource provides the current per-domain state of the attestation
// service.
type DomainInfoSource interface {
	DomainInfo(ctx context.Context) ([]DomainInfo, error)
}

type BuildOpts struct {
	// MaxFee overrides the destination chain's minimum fee estimate.
	MaxFee *big.Int
	// ExpirationBuffer overrides DEFAULT_EXPIRATION_BUFFER.
	ExpirationBuffer uint64
	// DestinationCaller restricts the destination mint to a specific
	// caller. Empty means permissionless.
	DestinationCaller string
	HookData          []byte
}

// IntentBuilder builds burn intents out of transfer parameters, resolving
// chain facts through the registry and validity heights through the
// attestation service.
type IntentBuilder struct {
	registry *config.Registry
	info     DomainInfoSource
}

func NewIntentBuilder(registry *config.Registry, info DomainInfoSource) *IntentBuilder {
	return &IntentBuilder{
		registry: registry,
		info:     info,
	}
}

// Build constructs a burn intent moving amount (a decimal string in token
// units) from the depositor on the source domain to the recipient on the
// destination domain. Validation happens before any network call.
func (b *IntentBuilder) Build(
	ctx context.Context,
	sourceDomain uint32,
	destinationDomain uint32,
	amount string,
	depositor string,
	recipient string,
	opts BuildOpts,
) (*BurnIntent, error) {
	if sourceDomain == destinationDomain {
		return nil, &InvalidTransferError{Reason: "source and destination chain are the same"}
	}

	src, err := b.registry.Get(sourceDomain)
	if err != nil {
		return nil, err
	}
	dst, err := b.registry.Get(destinationDomain)
	if err != nil {
		return nil, err
	}

	value, err := ToBaseUnits(amount, src.Decimals)
	if err != nil {
		return nil, err
	}

	sourceDepositor, err := ToCanonical(depositor, src.Family)
	if err != nil {
		return nil, err
	}
	destinationRecipient, err := ToCanonical(recipient, dst.Family)
	if err != nil {
		return nil, err
	}
	sourceContract, err := ToCanonical(src.GatewayWallet, src.Family)
	if err != nil {
		return nil, err
	}
	destinationContract, err := ToCanonical(dst.GatewayMinter, dst.Family)
	if err != nil {
		return nil, err
	}
	sourceToken, err := ToCanonical(src.Token, src.Family)
	if err != nil {
		return nil, err
	}
	destinationToken, err := ToCanonical(dst.Token, dst.Family)
	if err != nil {
		return nil, err
	}

	var destinationCaller Bytes32
	if opts.DestinationCaller != "" {
		destinationCaller, err = ToCanonical(opts.DestinationCaller, dst.Family)
		if err != nil {
			return nil, err
		}
	}

	maxBlockHeight, err := b.maxBlockHeight(ctx, sourceDomain, opts.ExpirationBuffer)
	if err != nil {
		return nil, err
	}

	maxFee := opts.MaxFee
	if maxFee == nil {
		maxFee = dst.MinFee
	}

	var salt Bytes32
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	return &BurnIntent{
		MaxBlockHeight: maxBlockHeight,
		MaxFee:         maxFee,
		Spec: TransferSpec{
			Version:              SpecVersion,
			SourceDomain:         sourceDomain,
			DestinationDomain:    destinationDomain,
			SourceContract:       sourceContract,
			DestinationContract:  destinationContract,
			SourceToken:          sourceToken,
			DestinationToken:     destinationToken,
			SourceDepositor:      sourceDepositor,
			DestinationRecipient: destinationRecipient,
			SourceSigner:         sourceDepositor,
			DestinationCaller:    destinationCaller,
			Value:                value,
			Salt:                 salt,
			HookData:             opts.HookData,
		},
	}, nil
}

func (b *IntentBuilder) maxBlockHeight(ctx context.Context, sourceDomain uint32, buffer uint64) (*big.Int, error) {
	if buffer == 0 {
		buffer = DEFAULT_EXPIRATION_BUFFER
	}

	infos, err := b.info.DomainInfo(ctx)
	if err != nil {
		return nil, err
	}

	for _, info := range infos {
		if info.Domain == sourceDomain {
			return new(big.Int).SetUint64(info.BurnIntentExpirationHeight + buffer), nil
		}
	}

	return nil, fmt.Errorf("no domain info for domain %d", sourceDomain)
}

// ToBaseUnits converts a decimal token amount into chain base units.
func ToBaseUnits(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, &InvalidTransferError{Reason: fmt.Sprintf("invalid amount '%s'", amount)}
	}
	if !d.IsPositive() {
		return nil, &InvalidTransferError{Reason: fmt.Sprintf("amount '%s' is not positive", amount)}
	}

	base := d.Shift(int32(decimals))
	if !base.IsInteger() {
		return nil, &InvalidTransferError{
			Reason: fmt.Sprintf("amount '%s' has more than %d decimal places", amount, decimals),
		}
	}

	return base.BigInt(), nil
}
