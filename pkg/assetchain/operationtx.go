package assetchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/txs"
)

// OperationTx carries a header plus an authored-order list of
// TransferableOperations (e.g. NFT transfers) alongside the usual
// transferred funds.
type OperationTx struct {
	Header Header
	Ops    []txs.TransferableOperation
}

func (tx *OperationTx) TypeTag() uint32 { return TxTypeOperationTx }

func (tx *OperationTx) EncodeBody() []byte {
	var buf bytes.Buffer
	tx.Header.encodeHeader(&buf)
	txs.EncodeOperations(&buf, tx.Ops)
	return buf.Bytes()
}

// SignableElements: sorted inputs, then operations in authored order
// (spec.md §4.4) — the order the OperationTx's Ops were constructed in,
// never re-sorted.
func (tx *OperationTx) SignableElements() []txs.Signable {
	ins := tx.Header.SortedIns()
	out := make([]txs.Signable, 0, len(ins)+len(tx.Ops))
	for _, in := range ins {
		out = append(out, in.In)
	}
	for _, op := range tx.Ops {
		out = append(out, op.Op)
	}
	return out
}

func decodeOperationTxBody(b []byte, offset int) (UnsignedTx, int, error) {
	h, offset, err := decodeHeader(b, offset)
	if err != nil {
		return nil, offset, err
	}
	ops, offset, err := txs.DecodeOperations(b, offset)
	if err != nil {
		return nil, offset, err
	}
	return &OperationTx{Header: h, Ops: ops}, offset, nil
}
