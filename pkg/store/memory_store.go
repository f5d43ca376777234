package store

import (
	"math/rand/v2"
	"sync"

	"github.com/duskledger/corechain/pkg/apperrors"
	"github.com/duskledger/corechain/pkg/log"
	"github.com/duskledger/corechain/pkg/metrics"
)

var memoryLog = log.Module("store.memory")

// MemoryStore is the in-memory Store backend: a map per namespace guarded
// by one coarse RWMutex, per spec §5 ("the store exposes mutual
// exclusion via a single coarse lock around (mode, prefix, key)
// mutations").
type MemoryStore struct {
	cfg Config

	mu         sync.RWMutex
	namespaces map[Namespace]map[string]Value
	totalSize  uint64

	puts *metrics.Meter
	dels *metrics.Meter
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore(cfg Config) *MemoryStore {
	return &MemoryStore{
		cfg:        cfg,
		namespaces: make(map[Namespace]map[string]Value),
		puts:       metrics.NewMeter(),
		dels:       metrics.NewMeter(),
	}
}

func (s *MemoryStore) bucket(ns Namespace) map[string]Value {
	b, ok := s.namespaces[ns]
	if !ok {
		b = make(map[string]Value)
		s.namespaces[ns] = b
	}
	return b
}

// Put upserts value under (ns, key), enforcing Config.MaxTotalSize.
func (s *MemoryStore) Put(ns Namespace, key []byte, value Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bucket(ns)
	k := string(key)
	delta := int64(value.PlainSize)
	if existing, ok := b[k]; ok {
		delta -= int64(existing.PlainSize)
	}
	newTotal := int64(s.totalSize) + delta
	if s.cfg.MaxTotalSize != 0 && newTotal > 0 && uint64(newTotal) > s.cfg.MaxTotalSize {
		return apperrors.Wrapf(apperrors.ErrNotEnoughSpace, "store: put would exceed max total size %d", s.cfg.MaxTotalSize)
	}

	b[k] = value
	s.totalSize = uint64(newTotal)
	s.puts.Mark(1)
	memoryLog.Debug("put", "namespace", ns, "size", value.PlainSize)
	return nil
}

// Get returns the value stored under (ns, key).
func (s *MemoryStore) Get(ns Namespace, key []byte) (Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.namespaces[ns][string(key)]
	if !ok {
		return Value{}, apperrors.Wrapf(apperrors.ErrNotFound, "store: %s: key not found", ns)
	}
	return v, nil
}

// Lookup reports whether (ns, key) exists.
func (s *MemoryStore) Lookup(ns Namespace, key []byte) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.namespaces[ns][string(key)]
	return ok, nil
}

// Del removes (ns, key).
func (s *MemoryStore) Del(ns Namespace, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.namespaces[ns]
	v, ok := b[string(key)]
	if !ok {
		return apperrors.Wrapf(apperrors.ErrNotFound, "store: %s: key not found", ns)
	}
	delete(b, string(key))
	s.totalSize -= uint64(v.PlainSize)
	s.dels.Mark(1)
	memoryLog.Debug("del", "namespace", ns)
	return nil
}

// List returns every key in ns.
func (s *MemoryStore) List(ns Namespace) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b := s.namespaces[ns]
	out := make([][]byte, 0, len(b))
	for k := range b {
		out = append(out, []byte(k))
	}
	return out, nil
}

// Sample returns up to n keys drawn from ns without replacement. Sample
// order is not a security boundary (spec §4.8's PoS sampling is derived
// separately, from a seed, not from this method), so math/rand/v2 is
// sufficient.
func (s *MemoryStore) Sample(ns Namespace, n int) ([][]byte, error) {
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
func (s *MemoryStore) IsEmpty(ns Namespace) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.namespaces[ns]) == 0, nil
}

// Size returns the total plaintext size across every namespace.
func (s *MemoryStore) Size() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalSize, nil
}

// PrefixSize returns the total plaintext size within ns.
func (s *MemoryStore) PrefixSize(ns Namespace) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total uint64
	for _, v := range s.namespaces[ns] {
		total += uint64(v.PlainSize)
	}
	return total, nil
}

// Close is a no-op for the in-memory backend.
func (s *MemoryStore) Close() error {
	return nil
}
