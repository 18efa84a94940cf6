package platformchain

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ledgerkit/txcodec/pkg/hashing"
	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/signer"
)

func TestRoundTrip(t *testing.T) {
	var node, dest ids.ShortID
	node[0] = 0x01
	dest[0] = 0x02

	tx := &AddDefaultSubnetDelegatorTx{
		NodeID:      node,
		Weight:      1000,
		StartTime:   100,
		EndTime:     200,
		NetworkID:   5,
		Nonce:       42,
		Destination: dest,
	}

	decoded, err := Decode(tx.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *decoded != *tx {
		t.Fatalf("decoded = %+v, want %+v", decoded, tx)
	}
}

func TestSignAndVerifyLength(t *testing.T) {
	var scalar [32]byte
	scalar[31] = 0x05
	priv := secp256k1.PrivKeyFromBytes(scalar[:])
	payer := signer.NewSECP256K1Signer(priv)

	tx := &AddDefaultSubnetDelegatorTx{NetworkID: 1, Weight: 1, StartTime: 1, EndTime: 2, Nonce: 1}

	signed, err := Sign(tx, payer, hashing.SHA256)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(signed.Signature) != ids.SignatureLen {
		t.Fatalf("len(Signature) = %d, want %d", len(signed.Signature), ids.SignatureLen)
	}

	decoded, err := DecodeSigned(signed.Bytes())
	if err != nil {
		t.Fatalf("DecodeSigned: %v", err)
	}
	if decoded.Signature != signed.Signature {
		t.Fatal("DecodeSigned did not round-trip the signature")
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	tx := &AddDefaultSubnetDelegatorTx{}
	b := append(tx.Bytes(), 0x00)
	if _, err := Decode(b); err == nil {
		t.Fatal("Decode with trailing bytes: want TrailingBytes, got nil")
	}
}
