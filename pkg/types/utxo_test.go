package types

import (
	"testing"

	"github.com/duskledger/corechain/pkg/crypto"
)

func TestUTXOBytesRoundTrip(t *testing.T) {
	sk, err := crypto.RandomSecretKey()
	if err != nil {
		t.Fatal(err)
	}
	u := UTXO{
		TxID:      crypto.HashSha512([]byte("tx")),
		OutIndex:  2,
		Recipient: sk.PublicKey(),
		Amount:    AmountFromUint64(12345),
	}
	decoded, err := UTXOFromBytes(u.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if decoded.TxID != u.TxID || decoded.OutIndex != u.OutIndex {
		t.Fatal("identity fields mismatch after round trip")
	}
	if !decoded.Recipient.Equal(u.Recipient) {
		t.Fatal("recipient mismatch after round trip")
	}
	if decoded.Amount.Cmp(u.Amount) != 0 {
		t.Fatal("amount mismatch after round trip")
	}
}

func TestUTXOFromBytesRejectsTrailingBytes(t *testing.T) {
	sk, _ := crypto.RandomSecretKey()
	u := UTXO{TxID: crypto.HashSha512([]byte("tx")), Recipient: sk.PublicKey(), Amount: AmountFromUint64(1)}
	b := append(u.Bytes(), 0xFF)
	if _, err := UTXOFromBytes(b); err == nil {
		t.Fatal("expected error on trailing bytes")
	}
}
