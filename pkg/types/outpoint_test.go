package types

import (
	"testing"

	"github.com/duskledger/corechain/pkg/crypto"
)

func TestOutpointUsableAsMapKey(t *testing.T) {
	a := NewOutpoint(crypto.HashSha512([]byte("tx-a")), 0)
	b := NewOutpoint(crypto.HashSha512([]byte("tx-a")), 0)
	c := NewOutpoint(crypto.HashSha512([]byte("tx-a")), 1)

	m := map[Outpoint]bool{a: true}
	if !m[b] {
		t.Fatal("equal outpoints should hash and compare equal as map keys")
	}
	if m[c] {
		t.Fatal("differing out_index should not collide")
	}
}
