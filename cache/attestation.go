package cache

import (
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/unifiedusdc/gateway-client/protocol/gateway"
)

const (
	ATTESTATION_TTL = time.Minute * 10
)

// AttestationCache keeps issued attestations for the duration of their
// validity window so a mint retry inside the window reuses the attestation
// and a retry after it misses.
type AttestationCache struct {
	attestations *ttlcache.Cache[string, *gateway.TransferResult]
}

func NewAttestationCache() *AttestationCache {
	c := ttlcache.New(
		ttlcache.WithTTL[string, *gateway.TransferResult](ATTESTATION_TTL),
	)
	go c.Start()

	return &AttestationCache{
		attestations: c,
	}
}

func (c *AttestationCache) Set(result *gateway.TransferResult) {
	c.attestations.Set(result.TransferID, result, ttlcache.DefaultTTL)
}

func (c *AttestationCache) Attestation(transferID string) (*gateway.TransferResult, error) {
	item := c.attestations.Get(transferID)
	if item == nil {
		return nil, fmt.Errorf("no attestation found for transfer %s", transferID)
	}

	return item.Value(), nil
}

func (c *AttestationCache) Stop() {
	c.attestations.Stop()
}
