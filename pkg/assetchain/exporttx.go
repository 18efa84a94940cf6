package assetchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/txs"
)

// ExportTx sends funds out to another chain: a header plus a set of
// export-side outputs that become spendable UTXOs on the destination
// chain. Export outputs have no signers (spec.md §4.4).
type ExportTx struct {
	Header     Header
	ExportOuts []txs.TransferableOutput
}

func (tx *ExportTx) TypeTag() uint32 { return TxTypeExportTx }

func (tx *ExportTx) EncodeBody() []byte {
	var buf bytes.Buffer
	tx.Header.encodeHeader(&buf)
	// The export-side outputs section is, like every other transferable-
	// output vector in this codec, sorted on encode (supplemented feature:
	// spec.md is silent on this section specifically, but keeping the sort
	// discipline uniform across all output vectors is what the reference
	// ledger does).
	txs.EncodeOutputs(&buf, txs.SortOutputs(tx.ExportOuts))
	return buf.Bytes()
}

// SignableElements: sorted header inputs only — export outputs have no
// signers (spec.md §4.4).
func (tx *ExportTx) SignableElements() []txs.Signable {
	ins := tx.Header.SortedIns()
	out := make([]txs.Signable, len(ins))
	for i, in := range ins {
		out[i] = in.In
	}
	return out
}

func decodeExportTxBody(b []byte, offset int) (UnsignedTx, int, error) {
	h, offset, err := decodeHeader(b, offset)
	if err != nil {
		return nil, offset, err
	}
	outs, offset, err := txs.DecodeOutputs(b, offset)
	if err != nil {
		return nil, offset, err
	}
	return &ExportTx{Header: h, ExportOuts: outs}, offset, nil
}
