package txs

import (
	"bytes"

	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

// NFTTransferOutput locks a single NFT (identified by its group id and an
// opaque payload) to a threshold of addresses, the NFT analogue of
// SECP256K1TransferOutput.
type NFTTransferOutput struct {
	GroupID   uint32
	Payload   []byte
	Locktime  uint64
	Threshold uint32
	Addresses []ids.ShortID
}

func NewNFTTransferOutput(groupID uint32, payload []byte, locktime uint64, threshold uint32, addrs []ids.ShortID) (*NFTTransferOutput, error) {
	if err := checkSortedUnique(addrs); err != nil {
		return nil, err
	}
	return &NFTTransferOutput{
		GroupID:   groupID,
		Payload:   payload,
		Locktime:  locktime,
		Threshold: threshold,
		Addresses: addrs,
	}, nil
}

func (o *NFTTransferOutput) TypeID() uint32 { return OutputTypeNFTTransfer }

func (o *NFTTransferOutput) Encode() []byte {
	var buf bytes.Buffer
	wire.WriteUint32(&buf, o.GroupID)
	wire.WriteBytes(&buf, o.Payload)
	wire.WriteUint64(&buf, o.Locktime)
	wire.WriteUint32(&buf, o.Threshold)
	wire.WriteUint32(&buf, uint32(len(o.Addresses)))
	for _, a := range o.Addresses {
		wire.WriteFixed(&buf, a[:])
	}
	return buf.Bytes()
}

func decodeNFTTransferOutputTagged(b []byte, offset int) (Output, int, error) {
	out, offset, err := decodeNFTTransferOutputBody(b, offset)
	return out, offset, err
}

func decodeNFTTransferOutputBody(b []byte, offset int) (*NFTTransferOutput, int, error) {
	groupID, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	payload, offset, err := wire.ReadBytes(b, offset)
	if err != nil {
		return nil, offset, err
	}
	locktime, offset, err := wire.ReadUint64(b, offset)
	if err != nil {
		return nil, offset, err
	}
	threshold, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	addrs := make([]ids.ShortID, 0, wire.SafeCount(b, offset, n, ids.ShortIDLen))
	for i := uint32(0); i < n; i++ {
		raw, next, err := wire.ReadFixed(b, offset, ids.ShortIDLen)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		var a ids.ShortID
		copy(a[:], raw)
		addrs = append(addrs, a)
	}
	return &NFTTransferOutput{
		GroupID:   groupID,
		Payload:   payload,
		Locktime:  locktime,
		Threshold: threshold,
		Addresses: addrs,
	}, offset, nil
}

// NFTTransferOperation moves one or more NFT UTXOs (named by the enclosing
// TransferableOperation's UtxoIDs, in authored order) to a new
// NFTTransferOutput. It is the minimum operation kind spec.md §6 requires
// (NFT_TRANSFER_OP).
type NFTTransferOperation struct {
	Signers []SigIdx
	Output  NFTTransferOutput
}

func NewNFTTransferOperation(signers []SigIdx, out NFTTransferOutput) *NFTTransferOperation {
	return &NFTTransferOperation{Signers: signers, Output: out}
}

func (op *NFTTransferOperation) TypeID() uint32 { return OperationTypeNFTTransfer }

func (op *NFTTransferOperation) Encode() []byte {
	var buf bytes.Buffer
	wire.WriteUint32(&buf, uint32(len(op.Signers)))
	for _, s := range op.Signers {
		wire.WriteUint32(&buf, s.AddressIndex)
	}
	buf.Write(op.Output.Encode())
	return buf.Bytes()
}

func (op *NFTTransferOperation) SigIndices() []SigIdx { return op.Signers }

func (op *NFTTransferOperation) CredentialTypeID() uint32 { return CredentialTypeNFT }

func decodeNFTTransferOperationTagged(b []byte, offset int) (Operation, int, error) {
	n, offset, err := wire.ReadUint32(b, offset)
	if err != nil {
		return nil, offset, err
	}
	signers := make([]SigIdx, 0, wire.SafeCount(b, offset, n, 4))
	for i := uint32(0); i < n; i++ {
		idx, next, err := wire.ReadUint32(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		signers = append(signers, SigIdx{AddressIndex: idx})
	}
	out, offset, err := decodeNFTTransferOutputBody(b, offset)
	if err != nil {
		return nil, offset, err
	}
	return &NFTTransferOperation{Signers: signers, Output: *out}, offset, nil
}
