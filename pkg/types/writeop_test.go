package types

import (
	"testing"

	"github.com/duskledger/corechain/pkg/crypto"
)

func TestWriteOpBytesRoundTrip(t *testing.T) {
	w := WriteOp{
		ID:        crypto.HashSha512([]byte("write-op")),
		Data:      []byte("payload data"),
		ExpiresAt: 1700000000,
	}
	decoded, err := WriteOpFromBytes(w.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if decoded.ID != w.ID || string(decoded.Data) != string(w.Data) || decoded.ExpiresAt != w.ExpiresAt {
		t.Fatal("write-op round trip mismatch")
	}
}

func TestWriteOpExpired(t *testing.T) {
	w := WriteOp{ExpiresAt: 1000}
	if w.Expired(999) {
		t.Fatal("should not be expired before its expiry time")
	}
	if !w.Expired(1000) {
		t.Fatal("should be expired exactly at its expiry time")
	}
	if !w.Expired(1001) {
		t.Fatal("should be expired after its expiry time")
	}
}

func TestDeleteOpBytesRoundTrip(t *testing.T) {
	d := DeleteOp{WriteOpID: crypto.HashSha512([]byte("target write-op"))}
	decoded, err := DeleteOpFromBytes(d.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if decoded.WriteOpID != d.WriteOpID {
		t.Fatal("delete-op round trip mismatch")
	}
}
