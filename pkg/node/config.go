// Package node implements the façade that enforces UTXO lifecycle,
// write-op expiry, and peer registry invariants on top of pkg/store
// (spec §4.11). Like the teacher's own pkg/node/config.go, configuration
// is a plain struct built by the caller; there is no file or flag
// loading here (out of scope per spec §1).
package node

import "github.com/duskledger/corechain/pkg/crypto"

// storeKeyInfo is the HKDF info label binding a derived store key to its
// one purpose, so the same master secret can later feed other derived
// keys (e.g. a peer-session key) without collision.
var storeKeyInfo = []byte("corechain/store-key/v1")

// Config configures a Node.
type Config struct {
	// EncryptionKey seals every value the node writes to its store at
	// rest (spec §4.10's store_value construction). Callers holding only
	// a master secret, rather than an already-sized key, should build
	// this field with DeriveStoreKey instead of truncating or padding
	// raw material by hand.
	EncryptionKey crypto.Key32
}

// DeriveStoreKey derives a Config.EncryptionKey from a master secret of
// any length via HKDF-SHA512 (spec §4.2's DeriveKey64), folding the
// resulting Key64 down with Reduce the same way the ECIES channel folds
// its own shared secret (spec §4.4). salt may be nil; it namespaces the
// derivation when multiple nodes share one master secret.
func DeriveStoreKey(masterSecret, salt []byte) (crypto.Key32, error) {
	k64, err := crypto.DeriveKey64(salt, masterSecret, storeKeyInfo)
	if err != nil {
		return crypto.Key32{}, err
	}
	return k64.Reduce(), nil
}

// Validate checks the config is usable. EncryptionKey has no invalid
// value (the zero key is a valid, if weak, AES-256 key), so Validate is
// a placeholder for future constraints and always succeeds today.
func (c Config) Validate() error {
	return nil
}
