package assetchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/txerr"
	"github.com/ledgerkit/txcodec/pkg/txs"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

const maxDenomination = 32

// CreateAssetTx mints a new asset: a header, the asset's name/symbol/
// denomination, and the InitialStates naming its genesis outputs.
type CreateAssetTx struct {
	Header        Header
	Name          string
	Symbol        string
	Denomination  uint8
	InitialStates []txs.InitialState
}

// NewCreateAssetTx validates the denomination bound (spec.md §4.3, §8
// invariant 7) before returning a constructed tx.
func NewCreateAssetTx(h Header, name, symbol string, denomination uint8, states []txs.InitialState) (*CreateAssetTx, error) {
	if denomination > maxDenomination {
		return nil, &txerr.InvalidDenomination{Value: denomination}
	}
	return &CreateAssetTx{
		Header:        h,
		Name:          name,
		Symbol:        symbol,
		Denomination:  denomination,
		InitialStates: states,
	}, nil
}

func (tx *CreateAssetTx) TypeTag() uint32 { return TxTypeCreateAssetTx }

func (tx *CreateAssetTx) EncodeBody() []byte {
	var buf bytes.Buffer
	tx.Header.encodeHeader(&buf)
	wire.WriteString(&buf, tx.Name)
	wire.WriteString(&buf, tx.Symbol)
	wire.WriteUint8(&buf, tx.Denomination)
	sorted := make([]txs.InitialState, len(tx.InitialStates))
	for i, s := range tx.InitialStates {
		sorted[i] = txs.InitialState{FxIndex: s.FxIndex, Outs: txs.SortInitialStateOutputs(s.Outs)}
	}
	txs.EncodeInitialStates(&buf, sorted)
	return buf.Bytes()
}

// SignableElements: a CreateAssetTx's only signable elements are its
// (sorted) inputs — InitialState outputs have no signers (spec.md §4.4).
func (tx *CreateAssetTx) SignableElements() []txs.Signable {
	ins := tx.Header.SortedIns()
	out := make([]txs.Signable, len(ins))
	for i, in := range ins {
		out[i] = in.In
	}
	return out
}

func decodeCreateAssetTxBody(b []byte, offset int) (UnsignedTx, int, error) {
	h, offset, err := decodeHeader(b, offset)
	if err != nil {
		return nil, offset, err
	}
	name, offset, err := wire.ReadString(b, offset)
	if err != nil {
		return nil, offset, err
	}
	symbol, offset, err := wire.ReadString(b, offset)
	if err != nil {
		return nil, offset, err
	}
	denomination, offset, err := wire.ReadUint8(b, offset)
	if err != nil {
		return nil, offset, err
	}
	if denomination > maxDenomination {
		return nil, offset, &txerr.InvalidDenomination{Value: denomination}
	}
	states, offset, err := txs.DecodeInitialStates(b, offset)
	if err != nil {
		return nil, offset, err
	}
	return &CreateAssetTx{
		Header:        h,
		Name:          name,
		Symbol:        symbol,
		Denomination:  denomination,
		InitialStates: states,
	}, offset, nil
}
