package txs

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/wire"
)

// InitialState is CreateAssetTx's embedded mint: a list of outputs, owned by
// a feature extension (named here by FxIndex, matching the reference
// ledger's indirection from tx-local fx index to a registered fx), created
// the moment the asset itself comes into existence — before any UTXO set
// entry names them as outputs of a prior transaction.
type InitialState struct {
	FxIndex uint32
	Outs    []Output
}

// Bytes is this state's full wire form: FxIndex || count || each output's
// canonical bytes, in the order given. Encoders sort Outs with
// SortInitialStateOutputs first; decode preserves stream order.
func (s InitialState) Bytes() []byte {
	var buf bytes.Buffer
	wire.WriteUint32(&buf, s.FxIndex)
	wire.WriteUint32(&buf, uint32(len(s.Outs)))
	for _, o := range s.Outs {
		buf.Write(CanonicalBytes(o))
	}
	return buf.Bytes()
}

// SortInitialStateOutputs returns a copy of outs sorted ascending by
// canonical byte form, matching the ordering invariant applied to a
// BaseTx's output set (supplemented feature: the original spec is silent on
// InitialState ordering, and the reference ledger sorts it the same way).
func SortInitialStateOutputs(outs []Output) []Output {
	sorted := make([]Output, len(outs))
	copy(sorted, outs)
	// insertion sort is fine here: InitialState output counts are tiny
	// (one fx's mint outputs), and this keeps the comparator local to
	// CanonicalBytes without pulling in sort.Slice for a handful of items.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && bytes.Compare(CanonicalBytes(sorted[j-1]), CanonicalBytes(sorted[j])) > 0; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}

func decodeInitialState(b []byte, offset int) (InitialState, int, error) {
	fxIndex, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return InitialState{}, offset, err
	}
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return InitialState{}, offset, err
	}
	outs := make([]Output, 0, wire.SafeCount(b, offset, n, 4))
	for i := uint32(0); i < n; i++ {
		o, next, err := DecodeOutput(b, offset)
		if err != nil {
			return InitialState{}, offset, err
		}
		offset = next
		outs = append(outs, o)
	}
	return InitialState{FxIndex: fxIndex, Outs: outs}, offset, nil
}

// EncodeInitialStates writes a u32 count followed by each state's wire
// form.
func EncodeInitialStates(buf *bytes.Buffer, states []InitialState) {
	wire.WriteUint32(buf, uint32(len(states)))
	for _, s := range states {
		buf.Write(s.Bytes())
	}
}

// DecodeInitialStates reads a u32 count followed by that many
// InitialStates.
func DecodeInitialStates(b []byte, offset int) ([]InitialState, int, error) {
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	states := make([]InitialState, 0, wire.SafeCount(b, offset, n, 8))
	for i := uint32(0); i < n; i++ {
		s, next, err := decodeInitialState(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		states = append(states, s)
	}
	return states, offset, nil
}
