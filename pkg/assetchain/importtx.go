package assetchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/txs"
)

// ImportTx pulls funds in from another chain: a header plus a second set
// of import-side inputs referencing UTXOs that live on the source chain.
// Unlike the header's own input vector, the import-side inputs are not a
// canonically-sorted section — they are encoded and signed in the order
// the caller authored them (spec.md §4.3, §4.4).
type ImportTx struct {
	Header      Header
	ImportedIns []txs.TransferableInput
}

func (tx *ImportTx) TypeTag() uint32 { return TxTypeImportTx }

func (tx *ImportTx) EncodeBody() []byte {
	var buf bytes.Buffer
	tx.Header.encodeHeader(&buf)
	txs.EncodeInputs(&buf, tx.ImportedIns)
	return buf.Bytes()
}

// SignableElements: sorted header inputs, then import-side inputs in
// authored order (spec.md §4.4).
func (tx *ImportTx) SignableElements() []txs.Signable {
	ins := tx.Header.SortedIns()
	out := make([]txs.Signable, 0, len(ins)+len(tx.ImportedIns))
	for _, in := range ins {
		out = append(out, in.In)
	}
	for _, in := range tx.ImportedIns {
		out = append(out, in.In)
	}
	return out
}

func decodeImportTxBody(b []byte, offset int) (UnsignedTx, int, error) {
	h, offset, err := decodeHeader(b, offset)
	if err != nil {
		return nil, offset, err
	}
	imported, offset, err := txs.DecodeInputs(b, offset)
	if err != nil {
		return nil, offset, err
	}
	return &ImportTx{Header: h, ImportedIns: imported}, offset, nil
}
