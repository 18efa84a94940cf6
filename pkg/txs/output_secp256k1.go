package txs

import (
	"bytes"
	"sort"

	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/txerr"
	"github.com/ledgerkit/txcodec/pkg/wire"
)

// SECP256K1TransferOutput locks a quantity of an asset to a threshold of
// addresses, generalizing the teacher's TxOutput{Value, PubKey}
// (blockchain/tx.go) from a single owning address to the Avalanche-lineage
// "OutputOwners" shape (locktime + m-of-n addresses).
type SECP256K1TransferOutput struct {
	Amount    uint64
	Locktime  uint64
	Threshold uint32
	Addresses []ids.ShortID
}

// NewSECP256K1TransferOutput constructs an output, validating the address
// ordering invariant (ascending, unique) the canonical comparator depends
// on for a stable total order.
func NewSECP256K1TransferOutput(amount, locktime uint64, threshold uint32, addrs []ids.ShortID) (*SECP256K1TransferOutput, error) {
	if err := checkSortedUnique(addrs); err != nil {
		return nil, err
	}
	return &SECP256K1TransferOutput{
		Amount:    amount,
		Locktime:  locktime,
		Threshold: threshold,
		Addresses: addrs,
	}, nil
}

func checkSortedUnique(addrs []ids.ShortID) error {
	for i := 1; i < len(addrs); i++ {
		if bytes.Compare(addrs[i-1][:], addrs[i][:]) >= 0 {
			return &txerr.InvariantViolation{Detail: "output addresses must be sorted ascending and unique"}
		}
	}
	return nil
}

func (o *SECP256K1TransferOutput) TypeID() uint32 { return OutputTypeSECP256K1Transfer }

func (o *SECP256K1TransferOutput) Encode() []byte {
	var buf bytes.Buffer
	wire.WriteUint64(&buf, o.Amount)
	wire.WriteUint64(&buf, o.Locktime)
	wire.WriteUint32(&buf, o.Threshold)
	wire.WriteUint32(&buf, uint32(len(o.Addresses)))
	for _, a := range o.Addresses {
		wire.WriteFixed(&buf, a[:])
	}
	return buf.Bytes()
}

func decodeSECP256K1TransferOutputTagged(b []byte, offset int) (Output, int, error) {
	amount, offset, err := wire.ReadUint64(b, offset)
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
	return &SECP256K1TransferOutput{
		Amount:    amount,
		Locktime:  locktime,
		Threshold: threshold,
		Addresses: addrs,
	}, offset, nil
}

// SortAddresses returns a sorted copy of addrs, for callers assembling an
// output from an unordered source (e.g. a keychain iteration).
func SortAddresses(addrs []ids.ShortID) []ids.ShortID {
	out := make([]ids.ShortID, len(addrs))
	copy(out, addrs)
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i][:], out[j][:]) < 0 })
	return out
}
