package store

import (
	"testing"

	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
)

func TestMemoryStorePutGetDelRoundTrip(t *testing.T) {
	s := NewMemoryStore(Config{})
	var key crypto.Key32
	v, err := Seal(key, []byte("hello world"))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Put(NamespaceTransaction, []byte("tx-1"), v); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(NamespaceTransaction, []byte("tx-1"))
	if err != nil {
		t.Fatal(err)
	}
	plaintext, err := got.Open(key)
	if err != nil {
		t.Fatal(err)
	}
	if string(plaintext) != "hello world" {
		t.Fatalf("got %q", plaintext)
	}

	if ok, err := s.Lookup(NamespaceTransaction, []byte("tx-1")); err != nil || !ok {
		t.Fatalf("lookup = %v, %v; want true, nil", ok, err)
	}

	if err := s.Del(NamespaceTransaction, []byte("tx-1")); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Lookup(NamespaceTransaction, []byte("tx-1")); ok {
		t.Fatal("expected key to be gone after Del")
	}
}

func TestMemoryStoreGetMissingReturnsNotFound(t *testing.T) {
	s := NewMemoryStore(Config{})
	_, err := s.Get(NamespaceTransaction, []byte("missing"))
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDelMissingReturnsNotFound(t *testing.T) {
	s := NewMemoryStore(Config{})
	if err := s.Del(NamespaceTransaction, []byte("missing")); !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreNamespacesAreIsolated(t *testing.T) {
	s := NewMemoryStore(Config{})
	var key crypto.Key32
	v, _ := Seal(key, []byte("x"))

	if err := s.Put(NamespaceUnspentOutput, []byte("k"), v); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Lookup(NamespaceSpentOutput, []byte("k")); ok {
		t.Fatal("key should not be visible in a different namespace")
	}
}

func TestMemoryStoreSizeAccounting(t *testing.T) {
	s := NewMemoryStore(Config{})
	var key crypto.Key32
	v1, _ := Seal(key, make([]byte, 10))
	v2, _ := Seal(key, make([]byte, 20))

	if err := s.Put(NamespaceTransaction, []byte("a"), v1); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(NamespaceTransaction, []byte("b"), v2); err != nil {
		t.Fatal(err)
	}

	total, err := s.Size()
	if err != nil {
		t.Fatal(err)
	}
	if total != 30 {
		t.Fatalf("total size = %d, want 30", total)
	}

	prefix, err := s.PrefixSize(NamespaceTransaction)
	if err != nil {
		t.Fatal(err)
	}
	if prefix != 30 {
		t.Fatalf("prefix size = %d, want 30", prefix)
	}

	if err := s.Del(NamespaceTransaction, []byte("a")); err != nil {
		t.Fatal(err)
	}
	total, _ = s.Size()
	if total != 20 {
		t.Fatalf("total size after del = %d, want 20", total)
	}
}

func TestMemoryStoreEnforcesMaxTotalSize(t *testing.T) {
	s := NewMemoryStore(Config{MaxTotalSize: 10})
	var key crypto.Key32
	v, _ := Seal(key, make([]byte, 20))

	if err := s.Put(NamespaceTransaction, []byte("too-big"), v); !apperrors.Is(err, apperrors.ErrNotEnoughSpace) {
		t.Fatalf("expected ErrNotEnoughSpace, got %v", err)
	}
}

func TestMemoryStoreListAndSample(t *testing.T) {
	s := NewMemoryStore(Config{})
	var key crypto.Key32
	v, _ := Seal(key, []byte("v"))

	keys := []string{"a", "b", "c", "d", "e"}
	for _, k := range keys {
		if err := s.Put(NamespacePeer, []byte(k), v); err != nil {
			t.Fatal(err)
		}
	}

	listed, err := s.List(NamespacePeer)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != len(keys) {
		t.Fatalf("listed %d keys, want %d", len(listed), len(keys))
	}

	sampled, err := s.Sample(NamespacePeer, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(sampled) != 3 {
		t.Fatalf("sampled %d keys, want 3", len(sampled))
	}

	sampledAll, err := s.Sample(NamespacePeer, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(sampledAll) != len(keys) {
		t.Fatalf("sampling more than available returned %d, want %d", len(sampledAll), len(keys))
	}
}

func TestMemoryStoreIsEmpty(t *testing.T) {
	s := NewMemoryStore(Config{})
	empty, err := s.IsEmpty(NamespacePeer)
	if err != nil {
		t.Fatal(err)
	}
	if !empty {
		t.Fatal("fresh namespace should be empty")
	}

	var key crypto.Key32
	v, _ := Seal(key, []byte("x"))
	if err := s.Put(NamespacePeer, []byte("k"), v); err != nil {
		t.Fatal(err)
	}
	empty, err = s.IsEmpty(NamespacePeer)
	if err != nil {
		t.Fatal(err)
	}
	if empty {
		t.Fatal("namespace with an entry should not be empty")
	}
}
