// Package ids holds the fixed-width identifiers that flow through the
// transaction codec: network/blockchain/asset ids, UTXO ids, short ids
// (addresses), and recoverable signatures. Every type here is a value type
// with no shared mutable state, per the data model's ownership rules.
package ids

import (
	"bytes"
	"encoding/hex"
)

// Fixed widths, all big-endian on the wire.
const (
	BlockchainIDLen = 32
	AssetIDLen      = 32
	ShortIDLen      = 20
	SignatureLen    = 65
)

// NetworkID identifies which network a transaction targets. Parties must
// agree; a mismatch is rejected by the network, not by this codec.
type NetworkID uint32

// BlockchainID identifies the target chain a transaction was built for.
type BlockchainID [BlockchainIDLen]byte

func (id BlockchainID) String() string { return hex.EncodeToString(id[:]) }

// AssetID is the immutable identifier of an asset.
type AssetID [AssetIDLen]byte

func (id AssetID) String() string { return hex.EncodeToString(id[:]) }

// Compare orders two AssetIDs by their raw bytes.
func (id AssetID) Compare(other AssetID) int {
	return bytes.Compare(id[:], other[:])
}

// ShortID is a 20-byte address. It is used both as a wire-level owner
// address (inside outputs) and as the local-only signer lookup key carried
// by a SigIdx.
type ShortID [ShortIDLen]byte

func (id ShortID) String() string { return hex.EncodeToString(id[:]) }

func (id ShortID) Compare(other ShortID) int {
	return bytes.Compare(id[:], other[:])
}

// Signature is a 65-byte recoverable ECDSA signature.
type Signature [SignatureLen]byte

// UTXOID names a single consumable output: the transaction that produced
// it, plus the index of the output within that transaction.
type UTXOID struct {
	TxID        [32]byte
	OutputIndex uint32
}

// InputID returns a deterministic txID||be32(index) byte string naming this
// UTXO, mirroring the pack's avax.UTXOID.InputID() pattern. The codec does
// not use this for wire encoding (UTXOID's fields are written out in full,
// see pkg/txs), but it's a convenient opaque key for callers that need one
// (e.g. accounting for imported funds).
func (u UTXOID) InputID() [36]byte {
	var out [36]byte
	copy(out[:32], u.TxID[:])
	out[32] = byte(u.OutputIndex >> 24)
	out[33] = byte(u.OutputIndex >> 16)
	out[34] = byte(u.OutputIndex >> 8)
	out[35] = byte(u.OutputIndex)
	return out
}

// Compare orders two UTXOIDs by txID then output index, matching the wire
// order those fields are written in.
func (u UTXOID) Compare(other UTXOID) int {
	if c := bytes.Compare(u.TxID[:], other.TxID[:]); c != 0 {
		return c
	}
	switch {
	case u.OutputIndex < other.OutputIndex:
		return -1
	case u.OutputIndex > other.OutputIndex:
		return 1
	default:
		return 0
	}
}
