package signing

import (
	"bytes"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ledgerkit/txcodec/pkg/assetchain"
	"github.com/ledgerkit/txcodec/pkg/hashing"
	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/signer"
	"github.com/ledgerkit/txcodec/pkg/txs"
)

func testSigner(seed byte) signer.Signer {
	var scalar [32]byte
	scalar[31] = seed
	priv := secp256k1.PrivKeyFromBytes(scalar[:])
	return signer.NewSECP256K1Signer(priv)
}

var chainID = func() ids.BlockchainID {
	var c ids.BlockchainID
	for i := range c {
		c[i] = 0x07
	}
	return c
}()

// S5: OperationTx with two inputs each requiring two signatures, and one
// NFT operation requiring one signature, produces 3 credentials with
// signature counts [2, 2, 1] in that order.
func TestS5SignAndVerifyLength(t *testing.T) {
	s1, s2, s3 := testSigner(1), testSigner(2), testSigner(3)
	keychain := signer.NewMapKeychain(s1, s2, s3)

	var assetID ids.AssetID
	var txID [32]byte

	in1 := txs.NewSECP256K1TransferInput(10, []txs.SigIdx{
		{AddressIndex: 0, Source: s1.Address()},
		{AddressIndex: 1, Source: s2.Address()},
	})
	in2 := txs.NewSECP256K1TransferInput(20, []txs.SigIdx{
		{AddressIndex: 0, Source: s1.Address()},
		{AddressIndex: 1, Source: s3.Address()},
	})

	nftOut, err := txs.NewNFTTransferOutput(1, []byte("g"), 0, 1, []ids.ShortID{s3.Address()})
	if err != nil {
		t.Fatalf("NewNFTTransferOutput: %v", err)
	}
	op := txs.NewNFTTransferOperation([]txs.SigIdx{{AddressIndex: 0, Source: s2.Address()}}, *nftOut)

	tx := &assetchain.OperationTx{
		Header: assetchain.Header{
			NetworkID:    1,
			BlockchainID: chainID,
			Ins: []txs.TransferableInput{
				{UTXOID: ids.UTXOID{TxID: txID, OutputIndex: 0}, AssetID: assetID, In: in1},
				{UTXOID: ids.UTXOID{TxID: txID, OutputIndex: 1}, AssetID: assetID, In: in2},
			},
		},
		Ops: []txs.TransferableOperation{
			{AssetID: assetID, UTXOIDs: []ids.UTXOID{{TxID: txID, OutputIndex: 2}}, Op: op},
		},
	}

	signed, err := Sign(tx, keychain, hashing.SHA256)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if len(signed.Credentials) != 3 {
		t.Fatalf("len(Credentials) = %d, want 3", len(signed.Credentials))
	}
	counts := make([]int, len(signed.Credentials))
	for i, c := range signed.Credentials {
		counts[i] = len(c.Signatures)
	}
	want := []int{2, 2, 1}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("credential signature counts = %v, want %v", counts, want)
		}
	}
}

func TestSignMissingKey(t *testing.T) {
	keychain := signer.NewMapKeychain()
	var assetID ids.AssetID
	var txID [32]byte

	in := txs.NewSECP256K1TransferInput(1, []txs.SigIdx{{AddressIndex: 0, Source: testSigner(9).Address()}})
	tx := &assetchain.BaseTx{
		Header: assetchain.Header{
			NetworkID:    1,
			BlockchainID: chainID,
			Ins:          []txs.TransferableInput{{UTXOID: ids.UTXOID{TxID: txID, OutputIndex: 0}, AssetID: assetID, In: in}},
		},
	}

	if _, err := Sign(tx, keychain, hashing.SHA256); err == nil {
		t.Fatal("Sign with an empty keychain: want MissingKey, got nil")
	}
}

// Digest stability (spec.md §8 invariant 4): permuting the constructor's
// input order must not change the signed digest, because encoding sorts
// before hashing.
func TestDigestStableUnderInputPermutation(t *testing.T) {
	s1 := testSigner(1)
	keychain := signer.NewMapKeychain(s1)
	var assetID ids.AssetID
	var txA, txB [32]byte
	txA[0], txB[0] = 0x01, 0x02

	inA := txs.NewSECP256K1TransferInput(1, []txs.SigIdx{{AddressIndex: 0, Source: s1.Address()}})
	inB := txs.NewSECP256K1TransferInput(2, []txs.SigIdx{{AddressIndex: 0, Source: s1.Address()}})

	build := func(ins []txs.TransferableInput) *assetchain.BaseTx {
		return &assetchain.BaseTx{Header: assetchain.Header{NetworkID: 1, BlockchainID: chainID, Ins: ins}}
	}

	order1 := build([]txs.TransferableInput{
		{UTXOID: ids.UTXOID{TxID: txA, OutputIndex: 0}, AssetID: assetID, In: inA},
		{UTXOID: ids.UTXOID{TxID: txB, OutputIndex: 0}, AssetID: assetID, In: inB},
	})
	order2 := build([]txs.TransferableInput{
		{UTXOID: ids.UTXOID{TxID: txB, OutputIndex: 0}, AssetID: assetID, In: inB},
		{UTXOID: ids.UTXOID{TxID: txA, OutputIndex: 0}, AssetID: assetID, In: inA},
	})

	if !bytes.Equal(assetchain.Encode(order1), assetchain.Encode(order2)) {
		t.Fatal("encoded bytes differ between permuted construction orders")
	}

	signed1, err := Sign(order1, keychain, hashing.SHA256)
	if err != nil {
		t.Fatalf("Sign(order1): %v", err)
	}
	signed2, err := Sign(order2, keychain, hashing.SHA256)
	if err != nil {
		t.Fatalf("Sign(order2): %v", err)
	}
	if len(signed1.Credentials) != len(signed2.Credentials) {
		t.Fatalf("credential counts differ: %d vs %d", len(signed1.Credentials), len(signed2.Credentials))
	}
	for i := range signed1.Credentials {
		if !bytes.Equal(signed1.Credentials[i].Encode(), signed2.Credentials[i].Encode()) {
			t.Fatalf("credential %d differs between permuted construction orders", i)
		}
	}
}
