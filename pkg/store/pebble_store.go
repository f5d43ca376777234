package store

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/cockroachdb/pebble"

	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/log"
	"github.com/duskledger/corechain/pkg/metrics"
)

var pebbleLog = log.Module("store.pebble")

// sizeMetaKey is a reserved key (empty namespace byte 0xFF never issued
// by Namespace) holding the running total plaintext size, so Size/Put/Del
// do not need a full-database scan on every call.
const sizeMetaNamespace = Namespace(0xFF)

var sizeMetaKey = []byte("total_plain_size")

// PebbleStore is the persistent Store backend, built on
// github.com/cockroachdb/pebble — the embedded K/V engine named in the
// corpus's dependency closure and promoted here to the "persistent" mode
// of the C11 store contract.
type PebbleStore struct {
	cfg Config
	db  *pebble.DB

	puts *metrics.Meter
	dels *metrics.Meter
}

// NewPebbleStore opens (or creates) a pebble database rooted at dir.
func NewPebbleStore(dir string, cfg Config) (*PebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidStore, "store: open pebble db at %s: %v", dir, err)
	}
	return &PebbleStore{cfg: cfg, db: db, puts: metrics.NewMeter(), dels: metrics.NewMeter()}, nil
}

// namespacedKey prefixes key with ns's stable byte, matching the original
// source's single-byte StoreMode/prefix scheme extended with our typed
// Namespace.
func namespacedKey(ns Namespace, key []byte) []byte {
	out := make([]byte, 0, 1+len(key))
	out = append(out, byte(ns))
	out = append(out, key...)
	return out
}

func encodeValue(v Value) []byte {
	out := make([]byte, 4, 4+len(v.Ciphertext))
	binary.BigEndian.PutUint32(out, v.PlainSize)
	return append(out, v.Ciphertext...)
}

func decodeValue(b []byte) (Value, error) {
	if len(b) < 4 {
		return Value{}, apperrors.Wrapf(apperrors.ErrInvalidLength, "store: corrupt pebble record: too short")
	}
	return Value{PlainSize: binary.BigEndian.Uint32(b[:4]), Ciphertext: append([]byte(nil), b[4:]...)}, nil
}

func (s *PebbleStore) totalSize() (uint64, error) {
	v, closer, err := s.db.Get(namespacedKey(sizeMetaNamespace, sizeMetaKey))
	if err == pebble.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidStore, "store: read total size: %v", err)
	}
	defer closer.Close()
	if len(v) != 8 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidLength, "store: corrupt total size record")
	}
	return binary.BigEndian.Uint64(v), nil
}

func (s *PebbleStore) setTotalSize(n uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	if err := s.db.Set(namespacedKey(sizeMetaNamespace, sizeMetaKey), b[:], pebble.Sync); err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidStore, "store: write total size: %v", err)
	}
	return nil
}

// Put upserts value under (ns, key), enforcing Config.MaxTotalSize.
func (s *PebbleStore) Put(ns Namespace, key []byte, value Value) error {
	existing, err := s.Get(ns, key)
	var delta int64
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		delta = int64(value.PlainSize)
	case err != nil:
		return err
	default:
		delta = int64(value.PlainSize) - int64(existing.PlainSize)
	}

	total, err := s.totalSize()
	if err != nil {
		return err
	}
	newTotal := int64(total) + delta
	if s.cfg.MaxTotalSize != 0 && newTotal > 0 && uint64(newTotal) > s.cfg.MaxTotalSize {
		return apperrors.Wrapf(apperrors.ErrNotEnoughSpace, "store: put would exceed max total size %d", s.cfg.MaxTotalSize)
	}

	if err := s.db.Set(namespacedKey(ns, key), encodeValue(value), pebble.Sync); err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidStore, "store: pebble set: %v", err)
	}
	if err := s.setTotalSize(uint64(newTotal)); err != nil {
		return err
	}
	s.puts.Mark(1)
	pebbleLog.Debug("put", "namespace", ns, "size", value.PlainSize)
	return nil
}

// Get returns the value stored under (ns, key).
func (s *PebbleStore) Get(ns Namespace, key []byte) (Value, error) {
	raw, closer, err := s.db.Get(namespacedKey(ns, key))
	if err == pebble.ErrNotFound {
		return Value{}, apperrors.Wrapf(apperrors.ErrNotFound, "store: %s: key not found", ns)
	}
	if err != nil {
		return Value{}, apperrors.Wrapf(apperrors.ErrInvalidStore, "store: pebble get: %v", err)
	}
	defer closer.Close()
	return decodeValue(raw)
}

// Lookup reports whether (ns, key) exists.
func (s *PebbleStore) Lookup(ns Namespace, key []byte) (bool, error) {
	_, err := s.Get(ns, key)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Del removes (ns, key).
func (s *PebbleStore) Del(ns Namespace, key []byte) error {
	existing, err := s.Get(ns, key)
	if err != nil {
		return err
	}
	if err := s.db.Delete(namespacedKey(ns, key), pebble.Sync); err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidStore, "store: pebble delete: %v", err)
	}
	total, err := s.totalSize()
	if err != nil {
		return err
	}
	if err := s.setTotalSize(total - uint64(existing.PlainSize)); err != nil {
		return err
	}
	s.dels.Mark(1)
	pebbleLog.Debug("del", "namespace", ns)
	return nil
}

func (s *PebbleStore) iterate(ns Namespace, fn func(key []byte) error) error {
	lower := namespacedKey(ns, nil)
	upper := namespacedKey(ns+1, nil)
	iter, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidStore, "store: pebble iterator: %v", err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		key := append([]byte(nil), iter.Key()[1:]...)
		if err := fn(key); err != nil {
			return err
		}
	}
	return nil
}

// List returns every key in ns.
func (s *PebbleStore) List(ns Namespace) ([][]byte, error) {
	var out [][]byte
	err := s.iterate(ns, func(key []byte) error {
		out = append(out, key)
		return nil
	})
	return out, err
}

// Sample returns up to n keys drawn from ns without replacement.
func (s *PebbleStore) Sample(ns Namespace, n int) ([][]byte, error) {
	keys, err := s.List(ns)
	if err != nil {
		return nil, err
	}
	if n >= len(keys) {
		return keys, nil
	}
	rand.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys[:n], nil
}

// IsEmpty reports whether ns holds no entries.
func (s *PebbleStore) IsEmpty(ns Namespace) (bool, error) {
	keys, err := s.List(ns)
	if err != nil {
		return false, err
	}
	return len(keys) == 0, nil
}

// Size returns the total plaintext size across every namespace.
func (s *PebbleStore) Size() (uint64, error) {
	return s.totalSize()
}

// PrefixSize returns the total plaintext size within ns.
func (s *PebbleStore) PrefixSize(ns Namespace) (uint64, error) {
	var total uint64
	err := s.iterate(ns, func(key []byte) error {
		v, err := s.Get(ns, key)
		if err != nil {
			return err
		}
		total += uint64(v.PlainSize)
		return nil
	})
	return total, err
}

// Close closes the underlying pebble database.
func (s *PebbleStore) Close() error {
	if err := s.db.Close(); err != nil {
		return apperrors.Wrapf(apperrors.ErrInvalidStore, "store: close pebble db: %v", err)
	}
	return nil
}
