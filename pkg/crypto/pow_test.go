package crypto

import "testing"

func TestCheckCostBoundaries(t *testing.T) {
	if err := checkSCost(0); err == nil {
		t.Fatal("s_cost=0 must be rejected")
	}
	if err := checkTCost(0); err == nil {
		t.Fatal("t_cost=0 must be rejected")
	}
	if err := checkDelta(2); err == nil {
		t.Fatal("delta<3 must be rejected")
	}
	if err := checkDelta(3); err != nil {
		t.Fatalf("delta=3 must be accepted: %v", err)
	}
}

func TestCheckTargetBitsBoundaries(t *testing.T) {
	if err := checkTargetBits(0); err == nil {
		t.Fatal("bits=0 must be rejected")
	}
	if err := checkTargetBits(257); err == nil {
		t.Fatal("bits=257 must be rejected")
	}
	if err := checkTargetBits(1); err != nil {
		t.Fatalf("bits=1 must be accepted: %v", err)
	}
	if err := checkTargetBits(256); err != nil {
		t.Fatalf("bits=256 must be accepted: %v", err)
	}
}

func TestTargetFromBitsMonotonic(t *testing.T) {
	// Larger bits means a strictly smaller (harder) target.
	easy, err := TargetFromBits(8)
	if err != nil {
		t.Fatal(err)
	}
	hard, err := TargetFromBits(64)
	if err != nil {
		t.Fatal(err)
	}
	if hard.Compare(easy) >= 0 {
		t.Fatalf("target(64) should be smaller than target(8)")
	}
}

func TestMineAndVerifyLowDifficulty(t *testing.T) {
	seed := HashSha512([]byte("abc"))
	result, err := Mine(1, seed, 1, 1, 3, nil)
	if err != nil {
		t.Fatalf("Mine: %v", err)
	}
	if !result.Found {
		t.Fatal("mining at bits=1 should find a nonce quickly")
	}

	ok, err := VerifyPoW(1, seed, result.Nonce, 1, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("mined nonce failed verification")
	}
}

func TestMineRespectsCancel(t *testing.T) {
	seed := HashSha512([]byte("cancel-me"))
	cancel := make(chan struct{})
	close(cancel)

	result, err := Mine(256, seed, 1, 1, 3, cancel)
	if err != nil {
		t.Fatal(err)
	}
	if result.Found {
		t.Fatal("a pre-cancelled mine should not report a found nonce")
	}
}

func TestBalloonHashDeterministic(t *testing.T) {
	seed := HashSha512([]byte("seed"))
	nonce := HashSha512([]byte("nonce"))

	h1, err := BalloonHash(seed, nonce, 4, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := BalloonHash(seed, nonce, 4, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if h1.Compare(h2) != 0 {
		t.Fatal("BalloonHash is not deterministic")
	}

	h3, err := BalloonHash(seed, nonce, 4, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if h1.Compare(h3) == 0 {
		t.Fatal("changing delta should change the output")
	}
}

func TestBalloonMemoryEstimate(t *testing.T) {
	mem, err := BalloonMemory(4, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	// s*(1+(s-1)*(1+t*(1+2*delta))) = 4*(1+3*(1+2*(1+6))) = 4*(1+3*15) = 4*46 = 184
	if mem != 184 {
		t.Fatalf("BalloonMemory(4,2,3) = %d, want 184", mem)
	}
}

func TestRetargetBitsClampsAndRejectsNonPositiveElapsed(t *testing.T) {
	if _, err := RetargetBits(10, 1000, 1000, 600); err == nil {
		t.Fatal("equal timestamps must be rejected")
	}
	if _, err := RetargetBits(10, 1000, 900, 600); err == nil {
		t.Fatal("newTime before oldTime must be rejected")
	}

	bits, err := RetargetBits(10, 0, 1, 1<<40)
	if err != nil {
		t.Fatal(err)
	}
	if bits != MaxTargetBits {
		t.Fatalf("expected clamp to %d, got %d", MaxTargetBits, bits)
	}

	bits, err = RetargetBits(200, 0, 1<<40, 1)
	if err != nil {
		t.Fatal(err)
	}
	if bits != 1 {
		t.Fatalf("expected clamp to 1, got %d", bits)
	}
}
