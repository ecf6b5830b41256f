package transfer

import (
	"context"
	"time"

	"github.com/unifiedusdc/gateway-client/protocol/gateway"
)

const (
	// ATTESTATION_TTL is the validity window of an attestation and
	// operator signature pair after issuance.
	ATTESTATION_TTL = 10 * time.Minute

	// DEFAULT_RELAYER_FALLBACK_WAIT bounds how long the client waits for
	// the service's own relayer after its mint attempt failed.
	DEFAULT_RELAYER_FALLBACK_WAIT = time.Minute
)

// MintExecutor executes the destination-side mint for one chain family.
type MintExecutor interface {
	ExecuteMint(ctx context.Context, attestation, operatorSignature []byte) error
}

// CheckAttestationWindow rejects attestations past their validity window
// before any call is attempted.
func CheckAttestationWindow(result *gateway.TransferResult, now time.Time) error {
	if now.Sub(result.IssuedAt) >= ATTESTATION_TTL {
		return &ExpiryError{IssuedAt: result.IssuedAt}
	}

	return nil
}
