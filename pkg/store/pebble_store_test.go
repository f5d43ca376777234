package store

import (
	"path/filepath"
	"testing"

	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/crypto"
)

func openTestPebbleStore(t *testing.T) *PebbleStore {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "corechain-store")
	s, err := NewPebbleStore(dir, Config{})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPebbleStorePutGetDelRoundTrip(t *testing.T) {
	s := openTestPebbleStore(t)
	var key crypto.Key32
	v, err := Seal(key, []byte("hello pebble"))
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
	if string(plaintext) != "hello pebble" {
		t.Fatalf("got %q", plaintext)
	}

	if err := s.Del(NamespaceTransaction, []byte("tx-1")); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Lookup(NamespaceTransaction, []byte("tx-1")); ok {
		t.Fatal("expected key to be gone after Del")
	}
}

func TestPebbleStoreGetMissingReturnsNotFound(t *testing.T) {
	s := openTestPebbleStore(t)
	_, err := s.Get(NamespaceTransaction, []byte("missing"))
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPebbleStoreNamespaceIsolationAndPrefixRange(t *testing.T) {
	s := openTestPebbleStore(t)
	var key crypto.Key32
	v, _ := Seal(key, []byte("x"))

	if err := s.Put(NamespaceUnspentOutput, []byte("k"), v); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(NamespaceSpentOutput, []byte("k"), v); err != nil {
		t.Fatal(err)
	}

	unspentKeys, err := s.List(NamespaceUnspentOutput)
	if err != nil {
		t.Fatal(err)
	}
	if len(unspentKeys) != 1 {
		t.Fatalf("expected exactly 1 key in NamespaceUnspentOutput, got %d", len(unspentKeys))
	}
}

func TestPebbleStoreSizeAccountingPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "corechain-store")
	var key crypto.Key32
	v, _ := Seal(key, make([]byte, 42))

	s1, err := NewPebbleStore(dir, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.Put(NamespaceTransaction, []byte("a"), v); err != nil {
		t.Fatal(err)
	}
	if err := s1.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := NewPebbleStore(dir, Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	total, err := s2.Size()
	if err != nil {
		t.Fatal(err)
	}
	if total != 42 {
		t.Fatalf("total size after reopen = %d, want 42", total)
	}
}

func TestPebbleStoreEnforcesMaxTotalSize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "corechain-store")
	s, err := NewPebbleStore(dir, Config{MaxTotalSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var key crypto.Key32
	v, _ := Seal(key, make([]byte, 20))
	if err := s.Put(NamespaceTransaction, []byte("too-big"), v); !apperrors.Is(err, apperrors.ErrNotEnoughSpace) {
		t.Fatalf("expected ErrNotEnoughSpace, got %v", err)
	}
}
