// Package assetchain implements the asset-exchange chain's transaction
// kinds: BaseTx, CreateAssetTx, OperationTx, ImportTx, and ExportTx
// (spec.md §5). Each kind shares a common header (network id, blockchain
// id, outputs, inputs) generalizing the teacher's single flat
// blockchain.Transaction into the envelope-plus-body shape the reference
// ledger uses.
package assetchain

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/txs"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

// Header is the field set every asset-chain tx kind opens with: which
// network and chain it targets, the funds it creates, and the funds it
// consumes.
type Header struct {
	NetworkID    ids.NetworkID
	BlockchainID ids.BlockchainID
	Outs         []txs.TransferableOutput
	Ins          []txs.TransferableInput
}

// encodeHeader writes NetworkID, BlockchainID, then the outputs and inputs
// sections. Outs/Ins are sorted into canonical order first — callers that
// already hold a sorted slice (e.g. from Header.SortedIns) pay for a no-op
// re-sort, which is cheap relative to the signing and hashing work that
// follows.
func (h Header) encodeHeader(buf *bytes.Buffer) {
	wire.WriteUint32(buf, uint32(h.NetworkID))
	buf.Write(h.BlockchainID[:])
	txs.EncodeOutputs(buf, txs.SortOutputs(h.Outs))
	txs.EncodeInputs(buf, txs.SortInputs(h.Ins))
}

// SortedIns returns this header's inputs in canonical order — the order the
// signing pipeline must walk to build a BaseTx/CreateAssetTx's credentials
// array positionally matching the encoded body (spec.md §4.4).
func (h Header) SortedIns() []txs.TransferableInput {
	return txs.SortInputs(h.Ins)
}

func decodeHeader(b []byte, offset int) (Header, int, error) {
	networkID, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return Header{}, offset, err
	}
	chainRaw, offset, err := wire.ReadFixed(b, offset, ids.BlockchainIDLen)
	if err != nil {
		return Header{}, offset, err
	}
	outs, offset, err := txs.DecodeOutputs(b, offset)
	if err != nil {
		return Header{}, offset, err
	}
	ins, offset, err := txs.DecodeInputs(b, offset)
	if err != nil {
		return Header{}, offset, err
	}
	var chainID ids.BlockchainID
	copy(chainID[:], chainRaw)
	return Header{
		NetworkID:    ids.NetworkID(networkID),
		BlockchainID: chainID,
		Outs:         outs,
		Ins:          ins,
	}, offset, nil
}
