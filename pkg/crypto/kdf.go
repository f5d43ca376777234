package crypto

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// DeriveKey64 runs HKDF-SHA512 over (salt, ikm, info) and returns a
// Key64, per spec §4.2. It is a pure function of its inputs, standalone
// from the ECIES channel (which derives its own key directly from a
// shared secret, spec §4.4, without HKDF); pkg/node's DeriveStoreKey is
// the domain caller that turns a master secret into an at-rest store
// key through this function.
func DeriveKey64(salt, ikm, info []byte) (Key64, error) {
	r := hkdf.New(sha512.New, ikm, salt, info)
	var out Key64
	if _, err := io.ReadFull(r, out[:]); err != nil {
		return Key64{}, apperrors.Wrapf(apperrors.ErrUnknown, "crypto: hkdf expand: %v", err)
	}
	return out, nil
}
