// Package signing implements the asset-chain signing pipeline (spec.md
// §4.4): canonical serialization, hashing, per-signable-element signature
// production, and SignedTx assembly.
package signing

import (
	"github.com/ledgerkit/txcodec/pkg/assetchain"
	"github.com/ledgerkit/txcodec/pkg/hashing"
	"github.com/ledgerkit/txcodec/pkg/ids"
	"github.com/ledgerkit/txcodec/pkg/signer"
	"github.com/ledgerkit/txcodec/pkg/txerr"
	"github.com/ledgerkit/txcodec/pkg/txs"
)

// Sign builds a SignedTx from u: encode u, hash the encoded bytes with
// hash, then for each signable element of u (in u.SignableElements()'s
// canonical order) look up and invoke the signer named by each SigIdx's
// Source through keychain, assembling one Credential per element.
//
// No partial results: the first MissingKey or SignerFailure aborts the
// whole call and returns no SignedTx (spec.md §4.4 "Failure modes").
func Sign(u assetchain.UnsignedTx, keychain signer.Keychain, hash hashing.Hasher) (*assetchain.SignedTx, error) {
	digest := hash(assetchain.Encode(u))

	elements := u.SignableElements()
	creds := make([]txs.Credential, 0, len(elements))
	for _, e := range elements {
		cred, err := signElement(e, digest, keychain)
		if err != nil {
			return nil, err
		}
		creds = append(creds, cred)
	}
	return &assetchain.SignedTx{Unsigned: u, Credentials: creds}, nil
}

func signElement(e txs.Signable, digest [32]byte, keychain signer.Keychain) (txs.Credential, error) {
	sigIndices := e.SigIndices()
	sigs := make([]ids.Signature, 0, len(sigIndices))
	for _, idx := range sigIndices {
		s, ok := keychain.Get(idx.Source)
		if !ok {
			return txs.Credential{}, &txerr.MissingKey{Address: idx.Source}
		}
		sig, err := s.Sign(digest)
		if err != nil {
			return txs.Credential{}, &txerr.SignerFailure{Err: err}
		}
		sigs = append(sigs, sig)
	}
	return txs.Credential{TypeID: e.CredentialTypeID(), Signatures: sigs}, nil
}
