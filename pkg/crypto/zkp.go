package crypto

// ZKPWitness is the public commitment w = g*x proving knowledge of x
// only when paired with a valid ZKPProof over it.
type ZKPWitness struct {
	G Point
	W Point
}

// Witness computes w = g*x, per spec §4.5's witness_of.
func Witness(g Point, x Scalar) ZKPWitness {
	return ZKPWitness{G: g, W: g.Mul(x)}
}

// Bytes encodes g(32) || w(32).
func (w ZKPWitness) Bytes() []byte {
	out := make([]byte, 0, 64)
	out = append(out, w.G.Bytes()...)
	out = append(out, w.W.Bytes()...)
	return out
}

// Equal reports structural equality.
func (w ZKPWitness) Equal(other ZKPWitness) bool {
	return w.G.Equal(other.G) && w.W.Equal(other.W)
}

// ZKPProof is a non-interactive Schnorr proof of knowledge of x such
// that w = g*x, per spec §4.5:
//
//	t = g*u
//	c = H(g || w || t)
//	r = u - c*x
//
// Verification recomputes c and accepts iff g*r + w*c == t.
type ZKPProof struct {
	W ZKPWitness
	T Point
	C Scalar
	R Scalar
}

// challenge is the Fiat-Shamir hash binding the generator, witness, and
// commitment into the scalar c. All inputs are canonical 32-byte
// compressed point encodings, concatenated in the stated order.
func challenge(g, w, t Point) Scalar {
	return HashScalar(g.Bytes(), w.Bytes(), t.Bytes())
}

// Prove builds a non-interactive Schnorr proof of knowledge of x for
// instance g. u is drawn fresh from the CSPRNG for every call — reusing
// u across proofs of the same x leaks x.
func Prove(g Point, x Scalar) (ZKPProof, error) {
	u, err := RandomScalar()
	if err != nil {
		return ZKPProof{}, err
	}
	w := g.Mul(x)
	t := g.Mul(u)
	c := challenge(g, w, t)
	r := u.Sub(c.Mul(x))

	return ZKPProof{
		W: ZKPWitness{G: g, W: w},
		T: t,
		C: c,
		R: r,
	}, nil
}

// Verify checks the proof against its own witness. It fails if the
// recomputed challenge does not match the proof's c, or if the Schnorr
// equation g*r + w*c == t does not hold. Unlike a widely copied draft of
// this protocol, this predicate is NOT inverted: a correct proof must
// return true, not false (spec §4.5, §9).
func (p ZKPProof) Verify() bool {
	cPrime := challenge(p.W.G, p.W.W, p.T)
	if !cPrime.Equal(p.C) {
		return false
	}
	lhs := p.W.G.Mul(p.R).Add(p.W.W.Mul(p.C))
	return lhs.Equal(p.T)
}

// VerifyAgainst checks the proof's witness equals the expected witness
// (e.g. the witness recorded in the output an Input references) before
// verifying the proof itself. This is the entry point the transaction
// pipeline (spec §4.9 step 2) uses.
func (p ZKPProof) VerifyAgainst(expected ZKPWitness) bool {
	return p.W.Equal(expected) && p.Verify()
}
