// Package hashing exposes the hash used to turn an encoded unsigned
// transaction into the digest that gets signed. It is a capability, not a
// fixed library choice (mirroring the abstract signer in pkg/signer): the
// signing pipeline takes a Hasher parameter, and tests can inject a
// deterministic stand-in when generating fixtures. SHA256 below is the
// production default, grounded in the teacher's own use of
// crypto/sha256 for block and address hashing.
package hashing

import "crypto/sha256"

// Hasher reduces an arbitrary byte string to a 32-byte digest.
type Hasher func([]byte) [32]byte

// SHA256 is the default Hasher.
func SHA256(b []byte) [32]byte {
	return sha256.Sum256(b)
}
