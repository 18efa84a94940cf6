package assetchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/txerr"
	"github.com/ledgerkit/txcodec/pkg/txs"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

// Asset-chain transaction tags (spec.md §6). Values match the reference
// network's; the specification requires consistency with the network, not
// specific literals, but reusing its own numbering keeps wire fixtures
// directly comparable.
const (
	TxTypeBaseTx        uint32 = 0x00000000
	TxTypeCreateAssetTx uint32 = 0x00000001
	TxTypeOperationTx   uint32 = 0x00000002
	TxTypeImportTx      uint32 = 0x00000003
	TxTypeExportTx      uint32 = 0x00000004
)

// UnsignedTx is the contract every asset-chain transaction kind
// implements: its own type tag, its body encoding (without the tag), and
// the signable elements a signing pipeline must walk, in canonical order.
type UnsignedTx interface {
	TypeTag() uint32
	EncodeBody() []byte
	SignableElements() []txs.Signable
}

// Encode writes the full UnsignedTx envelope: u32 tx_type_tag || body.
func Encode(u UnsignedTx) []byte {
	var buf bytes.Buffer
	wire.WriteUint32(&buf, u.TypeTag())
	buf.Write(u.EncodeBody())
	return buf.Bytes()
}

type txBodyDecoder func(b []byte, offset int) (UnsignedTx, int, error)

var txRegistry = map[uint32]txBodyDecoder{
	TxTypeBaseTx:        decodeBaseTxBody,
	TxTypeCreateAssetTx: decodeCreateAssetTxBody,
	TxTypeOperationTx:   decodeOperationTxBody,
	TxTypeImportTx:      decodeImportTxBody,
	TxTypeExportTx:      decodeExportTxBody,
}

// Decode reads a full UnsignedTx envelope from a framed slice (the entire
// slice must be consumed; any leftover bytes are TrailingBytes, spec.md
// §4.6).
func Decode(b []byte) (UnsignedTx, error) {
	tag, offset, err := wire.ReadUint32(b, 0)
	if err != nil {
		return nil, err
	}
	dec, ok := txRegistry[tag]
	if !ok {
		return nil, &txerr.UnknownTypeID{Domain: "tx", ID: tag}
	}
	tx, offset, err := dec(b, offset)
	if err != nil {
		return nil, err
	}
	if offset != len(b) {
		return nil, &txerr.TrailingBytes{Remaining: len(b) - offset}
	}
	return tx, nil
}
