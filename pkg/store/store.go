package store

// Config bounds a Store's resource usage, mirroring the teacher's
// pkg/node/config.go style: exported fields, a Validate method, no file
// or flag loading (out of scope per spec §1).
type Config struct {
	// MaxTotalSize caps the sum of plaintext sizes across every
	// namespace. Zero means unbounded.
	MaxTotalSize uint64
}

// Validate checks the config is internally consistent. MaxTotalSize has
// no invalid range (any uint64 is acceptable, including zero for
// "unbounded"), so Validate is a placeholder for future constraints and
// always succeeds today.
func (c Config) Validate() error {
	return nil
}

// Store is the prefix-addressed key/value contract of spec §4.10,
// generalized from the original source's single StoreMode parameter
// (original_source/src/store/traits.rs) into two concrete
// implementations selected at construction time: NewMemoryStore and
// NewPebbleStore.
type Store interface {
	// Put upserts value under (ns, key).
	Put(ns Namespace, key []byte, value Value) error
	// Get returns the value stored under (ns, key), or ErrNotFound.
	Get(ns Namespace, key []byte) (Value, error)
	// Lookup reports whether (ns, key) exists.
	Lookup(ns Namespace, key []byte) (bool, error)
	// Del removes (ns, key), or ErrNotFound if absent.
	Del(ns Namespace, key []byte) error
	// List returns every key in ns.
	List(ns Namespace) ([][]byte, error)
	// Sample returns up to n keys drawn from ns without replacement.
	Sample(ns Namespace, n int) ([][]byte, error)
	// IsEmpty reports whether ns holds no entries.
	IsEmpty(ns Namespace) (bool, error)
	// Size returns the total plaintext size across every namespace.
	Size() (uint64, error)
	// PrefixSize returns the total plaintext size within ns.
	PrefixSize(ns Namespace) (uint64, error)
	// Close releases any resources the backend holds open.
	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*PebbleStore)(nil)
)
