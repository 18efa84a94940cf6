package txs

import (
	"bytes"
	"sort"

	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

// TransferableOutput pairs an asset id with an Output, generalizing the
// teacher's bare TxOutput to the multi-asset ledger spec.md §3 describes.
type TransferableOutput struct {
	AssetID ids.AssetID
	Out     Output
}

// Bytes is this element's full wire encoding: AssetID || tag || payload.
// Sorting the outputs/inputs sections of a header compares this full form
// (not just the inner Output's CanonicalBytes), because two outputs with
// the same locking condition but different asset ids must still order
// deterministically.
func (o TransferableOutput) Bytes() []byte {
	var buf bytes.Buffer
	buf.Write(o.AssetID[:])
	buf.Write(CanonicalBytes(o.Out))
	return buf.Bytes()
}

func decodeTransferableOutput(b []byte, offset int) (TransferableOutput, int, error) {
	assetRaw, offset, err := wire.ReadFixed(b, offset, ids.AssetIDLen)
	if err != nil {
		return TransferableOutput{}, offset, err
	}
	out, offset, err := DecodeOutput(b, offset)
	if err != nil {
		return TransferableOutput{}, offset, err
	}
	var assetID ids.AssetID
	copy(assetID[:], assetRaw)
	return TransferableOutput{AssetID: assetID, Out: out}, offset, nil
}

// SortOutputs returns a new slice, outs sorted ascending by canonical byte
// form; the input slice is left untouched (spec.md §4.3: sorting happens
// on encode, never mutating the caller's construction order).
func SortOutputs(outs []TransferableOutput) []TransferableOutput {
	sorted := make([]TransferableOutput, len(outs))
	copy(sorted, outs)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Bytes(), sorted[j].Bytes()) < 0
	})
	return sorted
}

// TransferableInput pairs a UTXO reference and asset id with an Input.
type TransferableInput struct {
	UTXOID  ids.UTXOID
	AssetID ids.AssetID
	In      Input
}

// Bytes is this element's full wire encoding: UTXOID(36) || AssetID(32) ||
// tag || payload.
func (in TransferableInput) Bytes() []byte {
	var buf bytes.Buffer
	buf.Write(in.UTXOID.TxID[:])
	wire.WriteUint32(&buf, in.UTXOID.OutputIndex)
	buf.Write(in.AssetID[:])
	buf.Write(CanonicalBytes(in.In))
	return buf.Bytes()
}

func decodeTransferableInput(b []byte, offset int) (TransferableInput, int, error) {
	txIDRaw, offset, err := wire.ReadFixed(b, offset, 32)
	if err != nil {
		return TransferableInput{}, offset, err
	}
	outIdx, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return TransferableInput{}, offset, err
	}
	assetRaw, offset, err := wire.ReadFixed(b, offset, ids.AssetIDLen)
	if err != nil {
		return TransferableInput{}, offset, err
	}
	in, offset, err := DecodeInput(b, offset)
	if err != nil {
		return TransferableInput{}, offset, err
	}
	var txID [32]byte
	copy(txID[:], txIDRaw)
	var assetID ids.AssetID
	copy(assetID[:], assetRaw)
	return TransferableInput{
		UTXOID:  ids.UTXOID{TxID: txID, OutputIndex: outIdx},
		AssetID: assetID,
		In:      in,
	}, offset, nil
}

// SortInputs returns a new slice, ins sorted ascending by canonical byte
// form.
func SortInputs(ins []TransferableInput) []TransferableInput {
	sorted := make([]TransferableInput, len(ins))
	copy(sorted, ins)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Bytes(), sorted[j].Bytes()) < 0
	})
	return sorted
}

// TransferableOperation pairs an asset id and an ordered list of consumed
// UTXO ids with an Operation. The UtxoIDs order is preserved exactly as
// authored — it is never sorted, since it names the positional arguments
// the Operation's payload (e.g. which NFT groups) refers to.
type TransferableOperation struct {
	AssetID ids.AssetID
	UTXOIDs []ids.UTXOID
	Op      Operation
}

func (o TransferableOperation) Bytes() []byte {
	var buf bytes.Buffer
	buf.Write(o.AssetID[:])
	wire.WriteUint32(&buf, uint32(len(o.UTXOIDs)))
	for _, u := range o.UTXOIDs {
		buf.Write(u.TxID[:])
		wire.WriteUint32(&buf, u.OutputIndex)
	}
	buf.Write(CanonicalBytes(o.Op))
	return buf.Bytes()
}

func decodeTransferableOperation(b []byte, offset int) (TransferableOperation, int, error) {
	assetRaw, offset, err := wire.ReadFixed(b, offset, ids.AssetIDLen)
	if err != nil {
		return TransferableOperation{}, offset, err
	}
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return TransferableOperation{}, offset, err
	}
	utxoIDs := make([]ids.UTXOID, 0, wire.SafeCount(b, offset, n, 36))
	for i := uint32(0); i < n; i++ {
		txIDRaw, next, err := wire.ReadFixed(b, offset, 32)
		if err != nil {
			return TransferableOperation{}, offset, err
		}
		offset = next
		outIdx, next, err := wire.ReadUint32(b, offset)
		if err != nil {
			return TransferableOperation{}, offset, err
		}
		offset = next
		var txID [32]byte
		copy(txID[:], txIDRaw)
		utxoIDs = append(utxoIDs, ids.UTXOID{TxID: txID, OutputIndex: outIdx})
	}
	op, offset, err := DecodeOperation(b, offset)
	if err != nil {
		return TransferableOperation{}, offset, err
	}
	var assetID ids.AssetID
	copy(assetID[:], assetRaw)
	return TransferableOperation{AssetID: assetID, UTXOIDs: utxoIDs, Op: op}, offset, nil
}

// EncodeOutputs writes a u32 count followed by each output's full wire
// form, in the order given (callers that need canonical order call
// SortOutputs first).
func EncodeOutputs(buf *bytes.Buffer, outs []TransferableOutput) {
	wire.WriteUint32(buf, uint32(len(outs)))
	for _, o := range outs {
		buf.Write(o.Bytes())
	}
}

// DecodeOutputs reads a u32 count followed by that many outputs, in
// stream order (no re-sort — decode trusts the order found).
func DecodeOutputs(b []byte, offset int) ([]TransferableOutput, int, error) {
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	outs := make([]TransferableOutput, 0, wire.SafeCount(b, offset, n, ids.AssetIDLen+4))
	for i := uint32(0); i < n; i++ {
		o, next, err := decodeTransferableOutput(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		outs = append(outs, o)
	}
	return outs, offset, nil
}

// EncodeInputs writes a u32 count followed by each input's full wire form.
func EncodeInputs(buf *bytes.Buffer, ins []TransferableInput) {
	wire.WriteUint32(buf, uint32(len(ins)))
	for _, in := range ins {
		buf.Write(in.Bytes())
	}
}

// DecodeInputs reads a u32 count followed by that many inputs, in stream
// order.
func DecodeInputs(b []byte, offset int) ([]TransferableInput, int, error) {
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	ins := make([]TransferableInput, 0, wire.SafeCount(b, offset, n, 32+ids.AssetIDLen+4))
	for i := uint32(0); i < n; i++ {
		in, next, err := decodeTransferableInput(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		ins = append(ins, in)
	}
	return ins, offset, nil
}

// EncodeOperations writes a u32 count followed by each operation's full
// wire form, in the order given (authored order — never sorted).
func EncodeOperations(buf *bytes.Buffer, ops []TransferableOperation) {
	wire.WriteUint32(buf, uint32(len(ops)))
	for _, o := range ops {
		buf.Write(o.Bytes())
	}
}

// DecodeOperations reads a u32 count followed by that many operations.
func DecodeOperations(b []byte, offset int) ([]TransferableOperation, int, error) {
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	ops := make([]TransferableOperation, 0, wire.SafeCount(b, offset, n, ids.AssetIDLen+4+4))
	for i := uint32(0); i < n; i++ {
		o, next, err := decodeTransferableOperation(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		ops = append(ops, o)
	}
	return ops, offset, nil
}
