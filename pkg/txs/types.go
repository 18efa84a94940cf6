// Package txs implements the element codec and registry: transferable
// outputs, inputs, operations, and credentials, each carrying a
// discriminating u32 type id looked up through a closed registry (spec.md
// §4.2, §4.5, §6).
//
// This generalizes the teacher's blockchain.TxOutput/TxInput
// (blockchain/tx.go), which hard-coded a single output/input shape, into a
// tagged-variant system: the wire tag selects the decoder, no virtual
// dispatch is needed, and adding a kind is the closed, source-level change
// spec.md §4.5/§9 call for.
package txs

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/signer"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

// Closed type-id registries (spec.md §6). Output and input tags are
// assigned the values the Avalanche-lineage reference material in the
// retrieval pack uses for the equivalent secp256k1/NFT fx kinds, so the
// wire tags read as the real thing rather than arbitrary placeholders.
const (
	OutputTypeSECP256K1Transfer uint32 = 0x00000007
	OutputTypeNFTTransfer       uint32 = 0x0000000b

	InputTypeSECP256K1Transfer uint32 = 0x00000005

	OperationTypeNFTTransfer uint32 = 0x0000000d

	CredentialTypeSECP256K1 uint32 = 0x00000009
	CredentialTypeNFT       uint32 = 0x0000000e
)

// SigIdx is re-exported from pkg/signer so callers building elements don't
// need to import two packages for one type.
type SigIdx = signer.SigIdx

// Element is the contract every output/input/operation implements
// (spec.md §4.2): it knows its own type id and can encode its payload
// (without the tag); CanonicalBytes builds the canonical byte form the sort
// comparator and signing digest use from those two. Credential carries its
// type id as a field and is not an Element.
type Element interface {
	TypeID() uint32
	Encode() []byte
}

// CanonicalBytes is u32-be(type_id) || encode(), the form every sort
// comparator in this package uses (spec.md §4.2).
func CanonicalBytes(e Element) []byte {
	var buf bytes.Buffer
	wire.WriteUint32(&buf, e.TypeID())
	buf.Write(e.Encode())
	return buf.Bytes()
}

// Output is a locking condition on a unit of an asset.
type Output interface {
	Element
}

// Input references a previously created Output and spends it. It is
// "signable": it names the SigIdx values whose signatures must appear,
// and the registry id the resulting Credential should carry.
type Input interface {
	Element
	Signable
}

// Operation is a non-transfer UTXO-consuming action (e.g. an NFT move).
// Like Input, it is signable.
type Operation interface {
	Element
	Signable
}

// Signable is implemented by any element that contributes signers to a
// transaction (spec.md glossary: "signable element").
type Signable interface {
	SigIndices() []SigIdx
	CredentialTypeID() uint32
}

// Credential is a tagged bundle of signatures satisfying one signable
// element's signer set. Position in a transaction's credentials array
// corresponds 1:1 to that element's position in the canonical signing
// order (spec.md §3, §4.4).
type Credential struct {
	TypeID     uint32
	Signatures []ids.Signature
}

// Encode writes the credential's payload (signature count, then each
// signature raw) — not including the leading type id, which the envelope
// writes separately (spec.md §4.3).
func (c Credential) Encode() []byte {
	var buf bytes.Buffer
	wire.WriteUint32(&buf, uint32(len(c.Signatures)))
	for _, s := range c.Signatures {
		buf.Write(s[:])
	}
	return buf.Bytes()
}

// DecodeCredential reads a credential's payload (not its leading type id,
// which the caller has already consumed and passed as typeID).
func DecodeCredential(typeID uint32, b []byte, offset int) (Credential, int, error) {
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return Credential{}, offset, err
	}
	sigs := make([]ids.Signature, 0, wire.SafeCount(b, offset, n, ids.SignatureLen))
	for i := uint32(0); i < n; i++ {
		raw, next, err := wire.ReadFixed(b, offset, ids.SignatureLen)
		if err != nil {
			return Credential{}, offset, err
		}
		offset = next
		var sig ids.Signature
		copy(sig[:], raw)
		sigs = append(sigs, sig)
	}
	return Credential{TypeID: typeID, Signatures: sigs}, offset, nil
}
