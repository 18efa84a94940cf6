package assetchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/txs"
)

// BaseTx is the plain transfer: a header and nothing else.
type BaseTx struct {
	Header Header
}

func (tx *BaseTx) TypeTag() uint32 { return TxTypeBaseTx }

func (tx *BaseTx) EncodeBody() []byte {
	var buf bytes.Buffer
	tx.Header.encodeHeader(&buf)
	return buf.Bytes()
}

// SignableElements returns this tx's inputs, in canonical (sorted) order —
// the only signable elements a BaseTx has (spec.md §4.4).
func (tx *BaseTx) SignableElements() []txs.Signable {
	ins := tx.Header.SortedIns()
	out := make([]txs.Signable, len(ins))
	for i, in := range ins {
		out[i] = in.In
	}
	return out
}

func decodeBaseTxBody(b []byte, offset int) (UnsignedTx, int, error) {
	h, offset, err := decodeHeader(b, offset)
	if err != nil {
		return nil, offset, err
	}
	return &BaseTx{Header: h}, offset, nil
}
