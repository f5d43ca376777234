package crypto

import "github.com/duskledger/corechain/pkg/apperrors"

// Sealed is an ECIES-sealed payload: symmetric ciphertext (IV-prefixed,
// see SymEncrypt) plus the MAC tag authenticating it, as attached to an
// Output's optional payload (spec §3, §4.4).
type Sealed struct {
	Ciphertext []byte
	Tag        []byte
}

// Seal implements the ECIES channel of spec §4.4: a sender holding
// sk_A encrypts plaintext for a recipient holding pk_B sharing the same
// generator.
//
//  1. s  = dh(sk_A, pk_B)
//  2. K64 = sha512(s); K32 = K64.Reduce()
//  3. ciphertext = SymEncrypt(K32, plaintext); tag = MAC(K64, ciphertext)
func Seal(skA SecretKey, pkB PublicKey, plaintext []byte) (Sealed, error) {
	shared, err := skA.SharedKey(pkB)
	if err != nil {
		return Sealed{}, err
	}
	k32 := shared.Reduce()

	ciphertext, err := SymEncrypt(k32, plaintext)
	if err != nil {
		return Sealed{}, err
	}
	tag := ComputeMac(shared, ciphertext)

	return Sealed{Ciphertext: ciphertext, Tag: tag}, nil
}

// Open implements verify_and_decrypt: it recomputes the shared key,
// checks the MAC in constant time, and only then decrypts. A failing
// MAC and a structurally broken ciphertext are reported identically as
// ErrInvalidCiphertext, per spec §4.4 and §7 — the caller cannot
// distinguish "wrong tag" from "wrong ciphertext".
func Open(skB SecretKey, pkA PublicKey, sealed Sealed) ([]byte, error) {
	shared, err := skB.SharedKey(pkA)
	if err != nil {
		return nil, err
	}
	k32 := shared.Reduce()

	if !VerifyMac(shared, sealed.Ciphertext, sealed.Tag) {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidCiphertext, "ecies: mac verification failed")
	}

	plaintext, err := SymDecrypt(k32, sealed.Ciphertext)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidCiphertext, "ecies: decrypt: %v", err)
	}
	return plaintext, nil
}
