// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import (
	"fmt"
	"strings"
	"time"
)

// DepositFailure is an on-chain revert or failed receipt wait while
// escrowing source-chain funds. Finality delay is not a DepositFailure; a
// deposit the service has not recognized yet is reported through
// DepositRecord.Finalized instead.
type DepositFailure struct {
	Domain uint32
	Err    error
}

func (e *DepositFailure) Error() string {
	return fmt.Sprintf("deposit on domain %d failed: %s", e.Domain, e.Err)
}

func (e *DepositFailure) Unwrap() error {
	return e.Err
}

// MintExecutionError is a destination contract or program revert. Logs are
// attached when the chain returned them.
type MintExecutionError struct {
	Domain uint32
	Logs   []string
	Err    error
}

func (e *MintExecutionError) Error() string {
	if len(e.Logs) == 0 {
		return fmt.Sprintf("mint on domain %d failed: %s", e.Domain, e.Err)
	}
	return fmt.Sprintf("mint on domain %d failed: %s\nlogs:\n%s", e.Domain, e.Err, strings.Join(e.Logs, "\n"))
}

func (e *MintExecutionError) Unwrap() error {
	return e.Err
}

// ExpiryError is returned when an attestation is used after its validity
// window has elapsed. The escrowed funds stay on the source chain, spendable
// by a fresh intent.
type ExpiryError struct {
	IssuedAt time.Time
}

func (e *ExpiryError) Error() string {
	return fmt.Sprintf("attestation issued at %s is past its validity window", e.IssuedAt.Format(time.RFC3339))
}
