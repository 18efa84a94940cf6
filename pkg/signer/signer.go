// Package signer defines the abstract signer and keychain capabilities
// the signing pipeline depends on, plus a concrete secp256k1
// implementation. The codec never touches curve math directly; it only
// calls Sign(digest) and reads Address().
//
// This generalizes the teacher's wallet.Wallet (wallet/wallet.go), which
// bundled an ecdsa.PrivateKey directly into the transaction-signing code
// path. Here the private key lives behind an interface so the codec can be
// tested with a mock signer (per spec design notes) and so the production
// implementation can use the secp256k1 curve the target ledger actually
// verifies against, rather than the teacher's P-256 placeholder.
package signer

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required to match Hash160 addressing

	"github.com/ledgerkit/txcodec/pkg/ids"
)

// SigIdx is a pointer into a referenced UTXO's address list, paired with a
// local-only hint identifying which key to use. AddressIndex is the only
// part written to the wire; Source is metadata the signer uses to look up
// a key and is discarded after signing.
type SigIdx struct {
	AddressIndex uint32
	Source       ids.ShortID
}

// Signer is the abstract signer capability: given a 32-byte digest, it
// returns a 65-byte recoverable signature, and it can report the address
// it signs on behalf of.
type Signer interface {
	Sign(digest [32]byte) (ids.Signature, error)
	Address() ids.ShortID
}

// Keychain looks up a Signer by address. Implementations must be safe for
// concurrent reads; signing never mutates a keychain, so a read-only
// snapshot is sufficient (spec.md §5).
type Keychain interface {
	Get(source ids.ShortID) (Signer, bool)
}

// MapKeychain is a simple, immutable-after-construction Keychain backed by
// a map. Safe for concurrent Get calls.
type MapKeychain struct {
	signers map[ids.ShortID]Signer
}

// NewMapKeychain builds a keychain from a fixed set of signers, keyed by
// each signer's own address.
func NewMapKeychain(signers ...Signer) *MapKeychain {
	m := make(map[ids.ShortID]Signer, len(signers))
	for _, s := range signers {
		m[s.Address()] = s
	}
	return &MapKeychain{signers: m}
}

// Get implements Keychain.
func (k *MapKeychain) Get(source ids.ShortID) (Signer, bool) {
	s, ok := k.signers[source]
	return s, ok
}

// AddressFromPublicKey derives a 20-byte short ID from a public key via
// SHA-256 then RIPEMD-160 ("Hash160"), the same two-step hash the teacher
// uses in wallet.PublicKeyHash.
func AddressFromPublicKey(pub *secp256k1.PublicKey) ids.ShortID {
	sha := sha256.Sum256(pub.SerializeCompressed())
	h := ripemd160.New()
	h.Write(sha[:])
	sum := h.Sum(nil)
	var addr ids.ShortID
	copy(addr[:], sum)
	return addr
}

// secp256k1Signer implements Signer on top of a decred secp256k1 private
// key, producing the 65-byte recoverable signature format spec.md §3
// requires: r(32) || s(32) || recovery-id(1).
type secp256k1Signer struct {
	priv *secp256k1.PrivateKey
	addr ids.ShortID
}

// NewSECP256K1Signer wraps a private key as a Signer, deriving its address
// from the corresponding public key.
func NewSECP256K1Signer(priv *secp256k1.PrivateKey) Signer {
	return &secp256k1Signer{
		priv: priv,
		addr: AddressFromPublicKey(priv.PubKey()),
	}
}

func (s *secp256k1Signer) Address() ids.ShortID { return s.addr }

func (s *secp256k1Signer) Sign(digest [32]byte) (ids.Signature, error) {
	// ecdsa.SignCompact returns the Bitcoin-style compact signature:
	// byte 0 is (recovery-id + 27 [+4 if compressed]), bytes 1:33 are r,
	// bytes 33:65 are s. Re-arrange to r||s||recovery-id, the order the
	// rest of the Avalanche-lineage codecs in the pack expect.
	compact := ecdsa.SignCompact(s.priv, digest[:], false)

	var sig ids.Signature
	copy(sig[0:32], compact[1:33])
	copy(sig[32:64], compact[33:65])
	sig[64] = compact[0] - 27
	return sig, nil
}
