// Package b58check implements the base-58-with-checksum string codec used
// to print a SignedTx as a human-copyable string and read it back.
//
// This mirrors the teacher's wallet address encoding
// (wallet/wallet.go: Address/ValidateAddress/Checksum), generalized from a
// fixed 25-byte address payload to an arbitrary-length payload, and backed
// by the same github.com/mr-tron/base58 library rather than a hand-rolled
// base-58 alphabet walk.
package b58check

import (
	"bytes"
	"crypto/sha256"

	"github.com/mr-tron/base58"

	"github.com/ledgerkit/txcodec/pkg/txerr"
)

// checksumLen is the number of checksum bytes appended before encoding.
const checksumLen = 4

// checksum is the first 4 bytes of SHA-256(SHA-256(payload)).
func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLen]
}

// Encode returns the base-58 encoding of payload with a trailing 4-byte
// double-SHA-256 checksum.
func Encode(payload []byte) string {
	full := make([]byte, 0, len(payload)+checksumLen)
	full = append(full, payload...)
	full = append(full, checksum(payload)...)
	return base58.Encode(full)
}

// Decode reverses Encode, verifying the checksum before returning the
// payload. Any failure — invalid base-58 characters, a too-short decode, or
// a checksum that doesn't match — is reported as ChecksumMismatch; the
// spec does not distinguish a malformed charset from a corrupted payload,
// both indicate the string wasn't produced by Encode.
func Decode(s string) ([]byte, error) {
	full, err := base58.Decode(s)
	if err != nil {
		return nil, &txerr.ChecksumMismatch{}
	}
	if len(full) < checksumLen {
		return nil, &txerr.ChecksumMismatch{}
	}
	payload := full[:len(full)-checksumLen]
	given := full[len(full)-checksumLen:]
	if !bytes.Equal(given, checksum(payload)) {
		return nil, &txerr.ChecksumMismatch{}
	}
	return payload, nil
}
