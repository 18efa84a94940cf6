// Package txerr defines the tagged error kinds the codec and signing
// pipeline return at every API boundary. No exceptions, no partial
// results: every failing operation returns one of these, and a failure
// never yields a usable partial transaction.
package txerr

import (
	"fmt"

	"github.com/ledgerkit/txcodec/pkg/ids"
)

// Truncated reports insufficient bytes remaining in the input to satisfy
// the next read.
type Truncated struct {
	Expected  int
	Available int
}

func (e *Truncated) Error() string {
	return fmt.Sprintf("txcodec: truncated: need %d bytes, have %d", e.Expected, e.Available)
}

// TrailingBytes reports a successful parse that left bytes unconsumed.
type TrailingBytes struct {
	Remaining int
}

func (e *TrailingBytes) Error() string {
	return fmt.Sprintf("txcodec: trailing bytes: %d unread", e.Remaining)
}

// UnknownTypeID reports a type tag absent from the relevant registry.
type UnknownTypeID struct {
	Domain string
	ID     uint32
}

func (e *UnknownTypeID) Error() string {
	return fmt.Sprintf("txcodec: unknown %s type id 0x%08x", e.Domain, e.ID)
}

// InvalidDenomination reports a create-asset denomination outside [0, 32].
type InvalidDenomination struct {
	Value uint8
}

func (e *InvalidDenomination) Error() string {
	return fmt.Sprintf("txcodec: invalid denomination %d (must be 0..32)", e.Value)
}

// InvalidUTF8 reports a name/symbol field that failed to decode as UTF-8.
type InvalidUTF8 struct{}

func (e *InvalidUTF8) Error() string { return "txcodec: invalid utf-8" }

// ChecksumMismatch reports a base-58-check decode whose checksum (or
// charset) didn't validate.
type ChecksumMismatch struct{}

func (e *ChecksumMismatch) Error() string { return "txcodec: base58check checksum mismatch" }

// MissingKey reports a keychain lookup that found no signer for an address.
type MissingKey struct {
	Address ids.ShortID
}

func (e *MissingKey) Error() string {
	return fmt.Sprintf("txcodec: missing key for address %s", e.Address)
}

// SignerFailure wraps an error returned by the abstract signer capability.
type SignerFailure struct {
	Err error
}

func (e *SignerFailure) Error() string { return fmt.Sprintf("txcodec: signer failure: %v", e.Err) }

func (e *SignerFailure) Unwrap() error { return e.Err }

// InvariantViolation reports an internal consistency failure that should
// be unreachable and indicates a bug rather than bad input.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("txcodec: invariant violation: %s", e.Detail)
}
