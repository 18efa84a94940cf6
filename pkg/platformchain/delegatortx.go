// Package platformchain implements the platform chain's single
// transaction kind in this codec's scope: AddDefaultSubnetDelegatorTx
// (spec.md §4.3 "Platform-chain kind"). Unlike the asset chain, this tx
// has a fixed field layout (no input/output vectors) and a single
// recoverable signature rather than a credentials array.
package platformchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/hashing"
	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/signer"
	"github.com/ledgerkit/txcodec/pkg/txerr"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

// AddDefaultSubnetDelegatorTx delegates stake to a validator for a fixed
// period, paid out to Destination on expiry (spec.md §4.3, open question
// 2: Weight/StartTime/EndTime/Nonce are accepted and written as full u64
// values — Go has no implicit narrowing to worry about, so there is no
// precision-loss path to reject).
type AddDefaultSubnetDelegatorTx struct {
	NodeID      ids.ShortID
	Weight      uint64
	StartTime   uint64
	EndTime     uint64
	NetworkID   ids.NetworkID
	Nonce       uint64
	Destination ids.ShortID
}

// Bytes is this tx's complete, fixed-layout wire form: no type tag, no
// length prefix — the body's width is implicit in its field widths
// (spec.md §4.3).
func (tx *AddDefaultSubnetDelegatorTx) Bytes() []byte {
	var buf bytes.Buffer
	buf.Write(tx.NodeID[:])
	wire.WriteUint64(&buf, tx.Weight)
	wire.WriteUint64(&buf, tx.StartTime)
	wire.WriteUint64(&buf, tx.EndTime)
	wire.WriteUint32(&buf, uint32(tx.NetworkID))
	wire.WriteUint64(&buf, tx.Nonce)
	buf.Write(tx.Destination[:])
	return buf.Bytes()
}

// Decode reads a fixed-layout AddDefaultSubnetDelegatorTx from a framed
// slice; any leftover bytes are TrailingBytes.
func Decode(b []byte) (*AddDefaultSubnetDelegatorTx, error) {
	tx, offset, err := decodeBody(b, 0)
	if err != nil {
		return nil, err
	}
	if offset != len(b) {
		return nil, &txerr.TrailingBytes{Remaining: len(b) - offset}
	}
	return tx, nil
}

func decodeBody(b []byte, offset int) (*AddDefaultSubnetDelegatorTx, int, error) {
	nodeRaw, offset, err := wire.ReadFixed(b, offset, ids.ShortIDLen)
	if err != nil {
		return nil, offset, err
	}
	weight, offset, err := wire.ReadUint64(b, offset)
	if err != nil {
		return nil, offset, err
	}
	start, offset, err := wire.ReadUint64(b, offset)
	if err != nil {
		return nil, offset, err
	}
	end, offset, err := wire.ReadUint64(b, offset)
	if err != nil {
		return nil, offset, err
	}
	networkID, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	nonce, offset, err := wire.ReadUint64(b, offset)
	if err != nil {
		return nil, offset, err
	}
	destRaw, offset, err := wire.ReadFixed(b, offset, ids.ShortIDLen)
	if err != nil {
		return nil, offset, err
	}
	var nodeID, dest ids.ShortID
	copy(nodeID[:], nodeRaw)
	copy(dest[:], destRaw)
	return &AddDefaultSubnetDelegatorTx{
		NodeID:      nodeID,
		Weight:      weight,
		StartTime:   start,
		EndTime:     end,
		NetworkID:   ids.NetworkID(networkID),
		Nonce:       nonce,
		Destination: dest,
	}, offset, nil
}

// SignedDelegatorTx is the tx plus the single 65-byte signature the
// platform chain's envelope carries directly, rather than a credentials
// array (spec.md §4.3, open question 1).
type SignedDelegatorTx struct {
	Unsigned  *AddDefaultSubnetDelegatorTx
	Signature ids.Signature
}

// Bytes is Unsigned.Bytes() || Signature.
func (s *SignedDelegatorTx) Bytes() []byte {
	var buf bytes.Buffer
	buf.Write(s.Unsigned.Bytes())
	buf.Write(s.Signature[:])
	return buf.Bytes()
}

// DecodeSigned reads a SignedDelegatorTx from a framed slice.
func DecodeSigned(b []byte) (*SignedDelegatorTx, error) {
	tx, offset, err := decodeBody(b, 0)
	if err != nil {
		return nil, err
	}
	sigRaw, offset, err := wire.ReadFixed(b, offset, ids.SignatureLen)
	if err != nil {
		return nil, err
	}
	if offset != len(b) {
		return nil, &txerr.TrailingBytes{Remaining: len(b) - offset}
	}
	var sig ids.Signature
	copy(sig[:], sigRaw)
	return &SignedDelegatorTx{Unsigned: tx, Signature: sig}, nil
}

// Sign produces a SignedDelegatorTx: digest = hash(tx.Bytes()), signed by
// payer (spec.md open question 3: the apparent intent behind the source's
// commented-out signing path — sign the encoded unsigned body with the
// payer's key, a single signature, no SigIdx indirection since this chain
// has no referenced-output address list to index into).
func Sign(tx *AddDefaultSubnetDelegatorTx, payer signer.Signer, hash hashing.Hasher) (*SignedDelegatorTx, error) {
	digest := hash(tx.Bytes())
	sig, err := payer.Sign(digest)
	if err != nil {
		return nil, &txerr.SignerFailure{Err: err}
	}
	return &SignedDelegatorTx{Unsigned: tx, Signature: sig}, nil
}
