package crypto

import (
	"encoding/binary"

	"github.com/duskledger/corechain/pkg/apperrors"
)

// Balloon hashing parameter minima, per spec §4.7.
const (
	MinSCost = 1
	MinTCost = 1
	MinDelta = 3
)

// MaxTargetBits is the widest target window; target(256) has its top 32
// bytes zero and its low 32 bytes all ones, the hardest possible target.
const MaxTargetBits = 256

func checkSCost(sCost uint32) error {
	if sCost < MinSCost {
		return apperrors.Wrapf(apperrors.ErrInvalidSCost, "pow: s_cost %d below minimum %d", sCost, MinSCost)
	}
	return nil
}

func checkTCost(tCost uint32) error {
	if tCost < MinTCost {
		return apperrors.Wrapf(apperrors.ErrInvalidTCost, "pow: t_cost %d below minimum %d", tCost, MinTCost)
	}
	return nil
}

func checkDelta(delta uint32) error {
	if delta < MinDelta {
		return apperrors.Wrapf(apperrors.ErrInvalidDelta, "pow: delta %d below minimum %d", delta, MinDelta)
	}
	return nil
}

func checkTargetBits(bits uint32) error {
	if bits < 1 || bits > MaxTargetBits {
		return apperrors.Wrapf(apperrors.ErrInvalidBits, "pow: target bits %d out of [1,%d]", bits, MaxTargetBits)
	}
	return nil
}

// TargetFromBits encodes 0xFF..FF >> bits as a 64-byte big-endian
// digest, per spec §4.7. The reference width is the 512-bit Digest64,
// so bits=256 leaves the top half zero and the bottom half all ones —
// the smallest (hardest) target this model can express with a 256-bit
// shift; smaller bits values shift in fewer leading zero bits and so
// describe an easier (larger) target.
func TargetFromBits(bits uint32) (Digest64, error) {
	if err := checkTargetBits(bits); err != nil {
		return Digest64{}, err
	}

	var target Digest64
	for i := range target {
		target[i] = 0xFF
	}
	shiftRightInPlace(target[:], int(bits))
	return target, nil
}

// shiftRightInPlace performs a big-endian right shift of n bits over b.
func shiftRightInPlace(b []byte, n int) {
	byteShift := n / 8
	bitShift := uint(n % 8)

	if byteShift >= len(b) {
		for i := range b {
			b[i] = 0
		}
		return
	}

	shifted := make([]byte, len(b))
	copy(shifted[byteShift:], b[:len(b)-byteShift])

	if bitShift == 0 {
		copy(b, shifted)
		return
	}

	var carry byte
	for i := 0; i < len(shifted); i++ {
		cur := shifted[i]
		shifted[i] = (cur >> bitShift) | carry
		carry = cur << (8 - bitShift)
	}
	copy(b, shifted)
}

// balloonNonceDigest hashes the big-endian encoding of a u32 nonce into
// a Digest64, per spec §4.7's "n_bytes".
func balloonNonceDigest(n uint32) Digest64 {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], n)
	return HashSha512(buf[:])
}

// intsToBChannel derives the per-round mixing channel the original
// source calls ints_to_bchannel: a buffer of length round (the current
// t_cost iteration, reused as a byte count) filled with the single
// repeated byte (m*i) mod 255. round=0 therefore always yields an empty
// buffer regardless of m and i — that is the original source's actual
// behavior, not an omission here.
func intsToBChannel(round, m, i int) []byte {
	fill := byte((m * i) % 255)
	buf := make([]byte, round)
	for j := range buf {
		buf[j] = fill
	}
	return buf
}

// BalloonHash computes the memory-hard Balloon hash of (seed, nonce)
// under the given cost parameters, per spec §4.7.
func BalloonHash(seed, nonce Digest64, sCost, tCost, delta uint32) (Digest64, error) {
	if err := checkSCost(sCost); err != nil {
		return Digest64{}, err
	}
	if err := checkTCost(tCost); err != nil {
		return Digest64{}, err
	}
	if err := checkDelta(delta); err != nil {
		return Digest64{}, err
	}

	s := int(sCost)
	t := int(tCost)
	d := int(delta)

	buf := make([]Digest64, s)
	buf[0] = HashSha512(seed.Bytes(), nonce.Bytes())

	for m := 1; m < s; m++ {
		buf[m] = HashSha512(buf[m-1].Bytes())

		for round := 0; round < t; round++ {
			prev := buf[(m-1)%s]
			buf[m] = HashSha512(prev.Bytes(), buf[m].Bytes())

			for i := 0; i < d; i++ {
				channel := intsToBChannel(round, m, i)
				seedBytes := append(append([]byte{}, nonce.Bytes()...), channel...)
				otherDigest := HashSha512(seedBytes)
				other := toInt(otherDigest, s)
				buf[m] = HashSha512(buf[m].Bytes(), buf[other].Bytes())
			}
		}
	}

	return buf[s-1], nil
}

// toInt reduces a digest to an index in [0, modulus), per the original
// source's to_int: the first 4 bytes reinterpreted as the host's native
// u32 (little-endian on every real deployment target), reduced mod
// modulus.
func toInt(d Digest64, modulus int) int {
	v := binary.LittleEndian.Uint32(d[:4])
	return int(v) % modulus
}

// MineResult is the outcome of a Balloon mining attempt.
type MineResult struct {
	Nonce uint32
	Found bool
}

// Mine searches nonces starting at 0 for the first one whose Balloon
// hash is <= target(bits), returning cleanly (Found=false) if cancel
// fires or the u32 space is exhausted, per the cooperative-cancellation
// model of spec §5.
func Mine(bits uint32, seed Digest64, sCost, tCost, delta uint32, cancel <-chan struct{}) (MineResult, error) {
	target, err := TargetFromBits(bits)
	if err != nil {
		return MineResult{}, err
	}
	if err := checkSCost(sCost); err != nil {
		return MineResult{}, err
	}
	if err := checkTCost(tCost); err != nil {
		return MineResult{}, err
	}
	if err := checkDelta(delta); err != nil {
		return MineResult{}, err
	}

	var n uint32
	for {
		select {
		case <-cancel:
			return MineResult{Found: false}, nil
		default:
		}

		nonceDigest := balloonNonceDigest(n)
		digest, err := BalloonHash(seed, nonceDigest, sCost, tCost, delta)
		if err != nil {
			return MineResult{}, err
		}
		if digest.LessOrEqual(target) {
			return MineResult{Nonce: n, Found: true}, nil
		}
		if n == ^uint32(0) {
			return MineResult{Found: false}, nil
		}
		n++
	}
}

// VerifyPoW recomputes the Balloon hash for a claimed nonce and checks
// it against target(bits).
func VerifyPoW(bits uint32, seed Digest64, nonce, sCost, tCost, delta uint32) (bool, error) {
	target, err := TargetFromBits(bits)
	if err != nil {
		return false, err
	}
	nonceDigest := balloonNonceDigest(nonce)
	digest, err := BalloonHash(seed, nonceDigest, sCost, tCost, delta)
	if err != nil {
		return false, err
	}
	return digest.LessOrEqual(target), nil
}

// BalloonMemory estimates the number of 64-byte slots touched by one
// Balloon hash evaluation, per spec §4.7.
func BalloonMemory(sCost, tCost, delta uint32) (uint64, error) {
	if err := checkSCost(sCost); err != nil {
		return 0, err
	}
	if err := checkTCost(tCost); err != nil {
		return 0, err
	}
	if err := checkDelta(delta); err != nil {
		return 0, err
	}
	s, t, d := uint64(sCost), uint64(tCost), uint64(delta)
	return s * (1 + (s-1)*(1+t*(1+2*d))), nil
}

// RetargetBits adjusts target bits given the elapsed time between two
// blocks and the desired window, per spec §4.7: the result is clamped
// to [1, 256]. newTime must be strictly after oldTime.
func RetargetBits(oldBits uint32, oldTime, newTime uint64, targetWindow uint64) (uint32, error) {
	if newTime <= oldTime {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidTime, "pow: retarget requires newTime > oldTime")
	}
	elapsed := newTime - oldTime
	adjusted := uint64(oldBits) * targetWindow / elapsed

	if adjusted < 1 {
		adjusted = 1
	}
	if adjusted > MaxTargetBits {
		adjusted = MaxTargetBits
	}
	return uint32(adjusted), nil
}
