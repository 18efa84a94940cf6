package assetchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/b58check"
	"github.com/ledgerkit/txcodec/pkg/txerr"
	"github.com/ledgerkit/txcodec/pkg/txs"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

// SignedTx is an UnsignedTx plus one Credential per signable element, in
// the same canonical order SignableElements() returns (spec.md §3, §4.4).
type SignedTx struct {
	Unsigned    UnsignedTx
	Credentials []txs.Credential
}

// Bytes is the full wire form: UnsignedTx envelope || u32 num_creds ||
// (u32 cred type id || credential payload) × num_creds.
func (s *SignedTx) Bytes() []byte {
	var buf bytes.Buffer
	buf.Write(Encode(s.Unsigned))
	wire.WriteUint32(&buf, uint32(len(s.Credentials)))
	for _, c := range s.Credentials {
		wire.WriteUint32(&buf, c.TypeID)
		buf.Write(c.Encode())
	}
	return buf.Bytes()
}

// String is the base-58-with-checksum form of Bytes (spec.md §6 "String
// form").
func (s *SignedTx) String() string {
	return b58check.Encode(s.Bytes())
}

// DecodeSigned reads a full SignedTx from a framed byte slice: the
// UnsignedTx envelope (whose body decoder already knows its own length),
// followed by the credentials array. Any bytes left over after the last
// credential is consumed are reported as TrailingBytes.
func DecodeSigned(b []byte) (*SignedTx, error) {
	tag, offset, err := wire.ReadUint32(b, 0)
	if err != nil {
		return nil, err
	}
	dec, ok := txRegistry[tag]
	if !ok {
		return nil, &txerr.UnknownTypeID{Domain: "tx", ID: tag}
	}
	unsigned, offset, err := dec(b, offset)
	if err != nil {
		return nil, err
	}
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, err
	}
	creds := make([]txs.Credential, 0, wire.SafeCount(b, offset, n, 8))
	for i := uint32(0); i < n; i++ {
		c, next, err := txs.DecodeCredentialTagged(b, offset)
		if err != nil {
			return nil, err
		}
		offset = next
		creds = append(creds, c)
	}
	if offset != len(b) {
		return nil, &txerr.TrailingBytes{Remaining: len(b) - offset}
	}
	return &SignedTx{Unsigned: unsigned, Credentials: creds}, nil
}

// FromString decodes and base-58-checksum-verifies s before parsing it as
// a SignedTx (spec.md §6).
func FromString(s string) (*SignedTx, error) {
	raw, err := b58check.Decode(s)
	if err != nil {
		return nil, err
	}
	return DecodeSigned(raw)
}
