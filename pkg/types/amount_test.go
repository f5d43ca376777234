package types

import "testing"

func TestAmountZeroEncodesSingleByte(t *testing.T) {
	b := ZeroAmount().Bytes()
	if len(b) != 1 || b[0] != 0x00 {
		t.Fatalf("zero amount bytes = %x, want [0x00]", b)
	}
}

func TestAmountRoundTrip(t *testing.T) {
	a := AmountFromUint64(123456789)
	decoded, err := AmountFromBytes(a.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(decoded) != 0 {
		t.Fatalf("round trip mismatch: %s != %s", a, decoded)
	}
}

func TestAmountAddSub(t *testing.T) {
	a := AmountFromUint64(100)
	b := AmountFromUint64(40)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Cmp(AmountFromUint64(140)) != 0 {
		t.Fatalf("sum = %s, want 140", sum)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff.Cmp(AmountFromUint64(60)) != 0 {
		t.Fatalf("diff = %s, want 60", diff)
	}
}

func TestAmountSubBelowZeroErrors(t *testing.T) {
	a := AmountFromUint64(10)
	b := AmountFromUint64(20)
	if _, err := a.Sub(b); err == nil {
		t.Fatal("expected error subtracting a larger amount")
	}
}

func TestAmountAddZeroIdentity(t *testing.T) {
	a := AmountFromUint64(42)
	sum, err := a.Add(ZeroAmount())
	if err != nil {
		t.Fatal(err)
	}
	if sum.Cmp(a) != 0 {
		t.Fatal("adding zero should be the identity")
	}
}

func TestAmountAddOverflowErrors(t *testing.T) {
	maxBytes := make([]byte, 32)
	for i := range maxBytes {
		maxBytes[i] = 0xFF
	}
	max, err := AmountFromBytes(maxBytes)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := max.Add(AmountFromUint64(1)); err == nil {
		t.Fatal("expected error adding past the 256-bit range")
	}
	if _, err := max.Mul(AmountFromUint64(2)); err == nil {
		t.Fatal("expected error multiplying past the 256-bit range")
	}
}

func TestAmountMulDivRem(t *testing.T) {
	a := AmountFromUint64(17)
	b := AmountFromUint64(5)

	product, err := a.Mul(b)
	if err != nil {
		t.Fatal(err)
	}
	if product.Cmp(AmountFromUint64(85)) != 0 {
		t.Fatal("mul mismatch")
	}
	q, err := a.Div(b)
	if err != nil {
		t.Fatal(err)
	}
	if q.Cmp(AmountFromUint64(3)) != 0 {
		t.Fatal("div mismatch")
	}
	r, err := a.Rem(b)
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(AmountFromUint64(2)) != 0 {
		t.Fatal("rem mismatch")
	}
}

func TestAmountDivByZeroErrors(t *testing.T) {
	a := AmountFromUint64(10)
	if _, err := a.Div(ZeroAmount()); err == nil {
		t.Fatal("expected error dividing by zero")
	}
	if _, err := a.Rem(ZeroAmount()); err == nil {
		t.Fatal("expected error taking remainder by zero")
	}
}

func TestAmountFromBytesRejectsOversizedInput(t *testing.T) {
	if _, err := AmountFromBytes(make([]byte, 33)); err == nil {
		t.Fatal("expected error decoding an amount wider than 256 bits")
	}
}

func TestAmountEncodeDecodeFrame(t *testing.T) {
	a := AmountFromUint64(9999999999)
	r := newReader(a.Encode())
	decoded, err := decodeAmount(r)
	if err != nil {
		t.Fatal(err)
	}
	if a.Cmp(decoded) != 0 {
		t.Fatal("frame round trip mismatch")
	}
	if !r.done() {
		t.Fatal("expected reader to be fully consumed")
	}
}
