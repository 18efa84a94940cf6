package assetchain

import (
	"bytes"
	"testing"

	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/txerr"
	"github.com/ledgerkit/txcodec/pkg/txs"
)

func filledChainID(fill byte) ids.BlockchainID {
	var id ids.BlockchainID
	for i := range id {
		id[i] = fill
	}
	return id
}

func addr(fill byte) ids.ShortID {
	var a ids.ShortID
	a[len(a)-1] = fill
	return a
}

// S1: empty base tx, network_id=3, blockchain_id=[0x10]*32, no in/outs.
func TestS1EmptyBaseTx(t *testing.T) {
	tx := &BaseTx{
		Header: Header{
			NetworkID:    3,
			BlockchainID: filledChainID(0x10),
		},
	}
	body := tx.EncodeBody()

	want := append([]byte{0x00, 0x00, 0x00, 0x03}, bytes.Repeat([]byte{0x10}, 32)...)
	want = append(want, 0x00, 0x00, 0x00, 0x00) // num_outputs
	want = append(want, 0x00, 0x00, 0x00, 0x00) // num_inputs

	if len(body) != 44 {
		t.Fatalf("len(body) = %d, want 44", len(body))
	}
	if !bytes.Equal(body, want) {
		t.Fatalf("body = %x, want %x", body, want)
	}

	decoded, err := Decode(Encode(tx))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(Encode(decoded), Encode(tx)) {
		t.Fatal("round-trip mismatch for S1 empty base tx")
	}
}

// S2: two candidate output orderings on an otherwise identical base tx
// encode to byte-identical output.
func TestS2OutputOrderingIsCanonical(t *testing.T) {
	outA, err := txs.NewSECP256K1TransferOutput(10, 0, 1, []ids.ShortID{addr(0x01)})
	if err != nil {
		t.Fatalf("NewSECP256K1TransferOutput A: %v", err)
	}
	outB, err := txs.NewSECP256K1TransferOutput(20, 0, 1, []ids.ShortID{addr(0x02)})
	if err != nil {
		t.Fatalf("NewSECP256K1TransferOutput B: %v", err)
	}
	var assetID ids.AssetID

	txAB := &BaseTx{Header: Header{
		NetworkID:    1,
		BlockchainID: filledChainID(0x01),
		Outs: []txs.TransferableOutput{
			{AssetID: assetID, Out: outA},
			{AssetID: assetID, Out: outB},
		},
	}}
	txBA := &BaseTx{Header: Header{
		NetworkID:    1,
		BlockchainID: filledChainID(0x01),
		Outs: []txs.TransferableOutput{
			{AssetID: assetID, Out: outB},
			{AssetID: assetID, Out: outA},
		},
	}}

	if !bytes.Equal(txAB.EncodeBody(), txBA.EncodeBody()) {
		t.Fatalf("construction order affected encoding:\n[A,B] = %x\n[B,A] = %x", txAB.EncodeBody(), txBA.EncodeBody())
	}
}

// S3: create-asset name/symbol/denomination byte checks.
func TestS3CreateAssetTx(t *testing.T) {
	out, err := txs.NewSECP256K1TransferOutput(1, 0, 1, []ids.ShortID{addr(0x01)})
	if err != nil {
		t.Fatalf("NewSECP256K1TransferOutput: %v", err)
	}
	states := []txs.InitialState{{FxIndex: 0, Outs: []txs.Output{out}}}

	tx, err := NewCreateAssetTx(Header{NetworkID: 1, BlockchainID: filledChainID(0x02)}, "TestAsset", "TST", 9, states)
	if err != nil {
		t.Fatalf("NewCreateAssetTx: %v", err)
	}
	body := tx.EncodeBody()

	// After the 44-byte header-shaped prefix (network_id + blockchain_id +
	// zero outputs + zero inputs), the name field is u16-be(9) || "TestAsset"
	// and the symbol field is u16-be(3) || "TST".
	headerLen := 4 + 32 + 4 + 4
	nameLenField := body[headerLen : headerLen+2]
	if !bytes.Equal(nameLenField, []byte{0x00, 0x09}) {
		t.Fatalf("name length field = %x, want 00 09", nameLenField)
	}
	nameField := body[headerLen+2 : headerLen+2+9]
	if string(nameField) != "TestAsset" {
		t.Fatalf("name field = %q, want %q", nameField, "TestAsset")
	}
	symbolLenOffset := headerLen + 2 + 9
	symbolLenField := body[symbolLenOffset : symbolLenOffset+2]
	if !bytes.Equal(symbolLenField, []byte{0x00, 0x03}) {
		t.Fatalf("symbol length field = %x, want 00 03", symbolLenField)
	}
	symbolField := body[symbolLenOffset+2 : symbolLenOffset+2+3]
	if string(symbolField) != "TST" {
		t.Fatalf("symbol field = %q, want %q", symbolField, "TST")
	}
	denomOffset := symbolLenOffset + 2 + 3
	if body[denomOffset] != 0x09 {
		t.Fatalf("denomination byte = %#x, want 0x09", body[denomOffset])
	}

	decoded, err := Decode(Encode(tx))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(*CreateAssetTx)
	if got.Name != "TestAsset" || got.Symbol != "TST" || got.Denomination != 9 {
		t.Fatalf("decoded = %+v", got)
	}
}

// S4: denomination out of [0, 32] is rejected.
func TestS4InvalidDenomination(t *testing.T) {
	_, err := NewCreateAssetTx(Header{NetworkID: 1, BlockchainID: filledChainID(0x02)}, "X", "X", 33, nil)
	if err == nil {
		t.Fatal("NewCreateAssetTx with denomination=33: want InvalidDenomination, got nil")
	}
	typed, ok := err.(*txerr.InvalidDenomination)
	if !ok {
		t.Fatalf("err = %T, want *txerr.InvalidDenomination", err)
	}
	if typed.Value != 33 {
		t.Fatalf("InvalidDenomination.Value = %d, want 33", typed.Value)
	}
}

// S7: an unrecognized leading tx type tag fails with UnknownTypeID{tx}.
func TestS7UnknownTxTag(t *testing.T) {
	buf := []byte{0xff, 0xff, 0xff, 0xff}
	_, err := Decode(buf)
	if err == nil {
		t.Fatal("Decode of an unused tx tag: want UnknownTypeID, got nil")
	}
	typed, ok := err.(*txerr.UnknownTypeID)
	if !ok || typed.Domain != "tx" || typed.ID != 0xffffffff {
		t.Fatalf("err = %+v, want UnknownTypeID{Domain: \"tx\", ID: 0xffffffff}", err)
	}
}

func TestTrailingBytes(t *testing.T) {
	tx := &BaseTx{Header: Header{NetworkID: 1, BlockchainID: filledChainID(0x01)}}
	encoded := append(Encode(tx), 0x01, 0x02)
	_, err := Decode(encoded)
	if err == nil {
		t.Fatal("Decode with trailing bytes: want TrailingBytes, got nil")
	}
	if _, ok := err.(*txerr.TrailingBytes); !ok {
		t.Fatalf("err = %T, want *txerr.TrailingBytes", err)
	}
}

func TestOperationTxRoundTrip(t *testing.T) {
	in1 := txs.NewSECP256K1TransferInput(1, []txs.SigIdx{{AddressIndex: 0}})
	var assetID ids.AssetID
	var txID [32]byte

	nftOut, err := txs.NewNFTTransferOutput(1, []byte("nft"), 0, 1, []ids.ShortID{addr(0x05)})
	if err != nil {
		t.Fatalf("NewNFTTransferOutput: %v", err)
	}
	op := txs.NewNFTTransferOperation([]txs.SigIdx{{AddressIndex: 0}}, *nftOut)

	tx := &OperationTx{
		Header: Header{
			NetworkID:    1,
			BlockchainID: filledChainID(0x03),
			Ins:          []txs.TransferableInput{{UTXOID: ids.UTXOID{TxID: txID, OutputIndex: 0}, AssetID: assetID, In: in1}},
		},
		Ops: []txs.TransferableOperation{
			{AssetID: assetID, UTXOIDs: []ids.UTXOID{{TxID: txID, OutputIndex: 1}}, Op: op},
		},
	}

	decoded, err := Decode(Encode(tx))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(*OperationTx)
	if len(got.Ops) != 1 || len(got.Header.Ins) != 1 {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestImportExportTxRoundTrip(t *testing.T) {
	var assetID ids.AssetID
	var txID [32]byte
	in := txs.NewSECP256K1TransferInput(1, []txs.SigIdx{{AddressIndex: 0}})
	out, err := txs.NewSECP256K1TransferOutput(1, 0, 1, []ids.ShortID{addr(0x01)})
	if err != nil {
		t.Fatalf("NewSECP256K1TransferOutput: %v", err)
	}

	imp := &ImportTx{
		Header:      Header{NetworkID: 1, BlockchainID: filledChainID(0x04)},
		ImportedIns: []txs.TransferableInput{{UTXOID: ids.UTXOID{TxID: txID, OutputIndex: 0}, AssetID: assetID, In: in}},
	}
	decodedImp, err := Decode(Encode(imp))
	if err != nil {
		t.Fatalf("Decode(import): %v", err)
	}
	if len(decodedImp.(*ImportTx).ImportedIns) != 1 {
		t.Fatalf("decoded import = %+v", decodedImp)
	}

	exp := &ExportTx{
		Header:     Header{NetworkID: 1, BlockchainID: filledChainID(0x05)},
		ExportOuts: []txs.TransferableOutput{{AssetID: assetID, Out: out}},
	}
	decodedExp, err := Decode(Encode(exp))
	if err != nil {
		t.Fatalf("Decode(export): %v", err)
	}
	if len(decodedExp.(*ExportTx).ExportOuts) != 1 {
		t.Fatalf("decoded export = %+v", decodedExp)
	}
}

func TestSignedTxStringRoundTrip(t *testing.T) {
	tx := &BaseTx{Header: Header{NetworkID: 7, BlockchainID: filledChainID(0x09)}}
	signed := &SignedTx{Unsigned: tx, Credentials: nil}

	s := signed.String()
	decoded, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if !bytes.Equal(Encode(decoded.Unsigned), Encode(tx)) {
		t.Fatal("FromString(String()) did not round-trip the unsigned tx")
	}
}
