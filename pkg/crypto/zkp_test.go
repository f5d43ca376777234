package crypto

import "testing"

func TestSchnorrProveVerify(t *testing.T) {
	g := GeneratorPoint()
	x := ScalarFromU64(7)

	proof, err := Prove(g, x)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if !proof.Verify() {
		t.Fatal("valid Schnorr proof rejected")
	}
}

func TestSchnorrTamperedR(t *testing.T) {
	g := GeneratorPoint()
	x := ScalarFromU64(7)

	proof, err := Prove(g, x)
	if err != nil {
		t.Fatal(err)
	}
	proof.R = proof.R.Add(OneScalar())

	if proof.Verify() {
		t.Fatal("proof with tampered r should not verify")
	}
}

func TestSchnorrTamperedT(t *testing.T) {
	g := GeneratorPoint()
	x, _ := RandomScalar()

	proof, err := Prove(g, x)
	if err != nil {
		t.Fatal(err)
	}
	u2, _ := RandomScalar()
	proof.T = g.Mul(u2)

	if proof.Verify() {
		t.Fatal("proof with tampered t should not verify")
	}
}

func TestSchnorrTamperedC(t *testing.T) {
	g := GeneratorPoint()
	x, _ := RandomScalar()

	proof, err := Prove(g, x)
	if err != nil {
		t.Fatal(err)
	}
	proof.C = proof.C.Add(OneScalar())

	if proof.Verify() {
		t.Fatal("proof with tampered c should not verify")
	}
}

func TestSchnorrTamperedWitness(t *testing.T) {
	g := GeneratorPoint()
	x, _ := RandomScalar()
	y, _ := RandomScalar()

	proof, err := Prove(g, x)
	if err != nil {
		t.Fatal(err)
	}
	proof.W.W = g.Mul(y)

	if proof.Verify() {
		t.Fatal("proof with swapped witness should not verify")
	}
}

func TestVerifyAgainstMismatchedWitness(t *testing.T) {
	g := GeneratorPoint()
	x, _ := RandomScalar()
	y, _ := RandomScalar()

	proof, err := Prove(g, x)
	if err != nil {
		t.Fatal(err)
	}

	otherWitness := Witness(g, y)
	if proof.VerifyAgainst(otherWitness) {
		t.Fatal("proof should not verify against an unrelated witness")
	}
	if !proof.VerifyAgainst(proof.W) {
		t.Fatal("proof should verify against its own witness")
	}
}
