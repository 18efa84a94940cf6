package txs

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/wire"
)

// SECP256K1TransferInput spends a SECP256K1TransferOutput. It names, by
// index, which of the referenced output's addresses are signing — the
// indices are wire data, but the Source each index maps to is attached
// locally by whoever built the transaction (it's never serialized; see
// SigIdx).
type SECP256K1TransferInput struct {
	Amount  uint64
	Signers []SigIdx
}

func NewSECP256K1TransferInput(amount uint64, signers []SigIdx) *SECP256K1TransferInput {
	return &SECP256K1TransferInput{Amount: amount, Signers: signers}
}

func (in *SECP256K1TransferInput) TypeID() uint32 { return InputTypeSECP256K1Transfer }

func (in *SECP256K1TransferInput) Encode() []byte {
	var buf bytes.Buffer
	wire.WriteUint64(&buf, in.Amount)
	wire.WriteUint32(&buf, uint32(len(in.Signers)))
	for _, s := range in.Signers {
		wire.WriteUint32(&buf, s.AddressIndex)
	}
	return buf.Bytes()
}

// SigIndices implements Signable. Only AddressIndex came off the wire on
// decode; Source is zero-valued until the caller re-attaches it (decoding
// alone cannot recover which local key an index maps to — that mapping
// lives in the referenced output, which is outside codec scope).
func (in *SECP256K1TransferInput) SigIndices() []SigIdx { return in.Signers }

func (in *SECP256K1TransferInput) CredentialTypeID() uint32 { return CredentialTypeSECP256K1 }

func decodeSECP256K1TransferInputTagged(b []byte, offset int) (Input, int, error) {
	amount, offset, err := wire.ReadUint64(b, offset)
	if err != nil {
		return nil, offset, err
	}
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	sigs := make([]SigIdx, 0, wire.SafeCount(b, offset, n, 4))
	for i := uint32(0); i < n; i++ {
		idx, next, err := wire.ReadUint32(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		sigs = append(sigs, SigIdx{AddressIndex: idx})
	}
	return &SECP256K1TransferInput{Amount: amount, Signers: sigs}, offset, nil
}
