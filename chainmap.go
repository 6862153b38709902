package chainmap

import (
	"errors"
	"fmt"
)

const (
	// DefaultCapacity is the initial bucket count used when no
	// WithCapacity option is given.
	DefaultCapacity = 16

	// DefaultLoadFactor is the size/capacity ratio above which the
	// bucket array doubles.
	DefaultLoadFactor = 0.75
)

var (
	// ErrInvalidCapacity is returned by New for a non-positive initial capacity.
	ErrInvalidCapacity = errors.New("chainmap: initial capacity must be positive")

	// ErrInvalidLoadFactor is returned by New for a load factor outside (0, 1].
	ErrInvalidLoadFactor = errors.New("chainmap: load factor must be in (0, 1]")

	// ErrNilFunc is returned by New when the hash or equal function is nil.
	ErrNilFunc = errors.New("chainmap: hash and equal functions must be non-nil")
)

// entry is one key/value pair in a bucket chain. Entries are owned
// exclusively by the map: the bucket slot owns the chain head and each
// entry owns its successor. The spread hash is cached so that resizing
// only re-masks it instead of rehashing the key.
type entry[K, V any] struct {
	hash  uint64
	key   K
	value V
	next  *entry[K, V]
}

// Map is a hash table backed by an array of buckets, each bucket
// holding a singly linked chain of entries. Keys are located by a
// user-supplied hash function and compared with a user-supplied
// equality function, never by identity.
//
// Map is not safe for concurrent use; callers that share a Map across
// goroutines must serialize access with their own lock.
type Map[K, V any] struct {
	buckets    []*entry[K, V]
	count      int
	loadFactor float64
	hash       func(K) uint64
	equal      func(a, b K) bool
}

// Option configures a Map at construction time.
type Option func(*config)

type config struct {
	capacity   int
	loadFactor float64
}

// WithCapacity sets the initial bucket count. Values that are not a
// power of two are rounded up to the next one, since bucket selection
// masks the hash against capacity-1. n must be positive.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithLoadFactor sets the size/capacity threshold above which the
// table grows. f must be in (0, 1].
func WithLoadFactor(f float64) Option {
	return func(c *config) { c.loadFactor = f }
}

// New creates an empty Map. hash must be deterministic and equal must
// be a value-equality relation consistent with it: equal(a, b) implies
// hash(a) == hash(b). Construction fails on invalid configuration
// rather than producing a table with undefined growth behavior.
func New[K, V any](hash func(K) uint64, equal func(a, b K) bool, opts ...Option) (*Map[K, V], error) {
	if hash == nil || equal == nil {
		return nil, ErrNilFunc
	}

	cfg := config{capacity: DefaultCapacity, loadFactor: DefaultLoadFactor}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.capacity <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCapacity, cfg.capacity)
	}
	if cfg.loadFactor <= 0 || cfg.loadFactor > 1 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidLoadFactor, cfg.loadFactor)
	}

	return &Map[K, V]{
		buckets:    make([]*entry[K, V], nextPowerOfTwo(cfg.capacity)),
		loadFactor: cfg.loadFactor,
		hash:       hash,
		equal:      equal,
	}, nil
}

// MustNew is like New but panics on invalid configuration. It is
// intended for package-level variables and tests.
func MustNew[K, V any](hash func(K) uint64, equal func(a, b K) bool, opts ...Option) *Map[K, V] {
	m, err := New[K, V](hash, equal, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// spread folds the high bits of a hash into the low bits. Bucket
// selection masks against capacity-1, which would otherwise discard
// every bit above log2(capacity) and concentrate collisions among keys
// whose hashes differ only in high bits.
func spread(h uint64) uint64 {
	return h ^ (h >> 32)
}

func (m *Map[K, V]) index(h uint64) int {
	return int(h & uint64(len(m.buckets)-1))
}

// Put inserts key with value, or replaces the value of an existing
// equal key in place. It returns the previous value and true if the
// key was already present. New entries are inserted at the chain head;
// chain order is not part of the contract.
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced bool) {
	h := spread(m.hash(key))
	i := m.index(h)

	for e := m.buckets[i]; e != nil; e = e.next {
		if m.equal(e.key, key) {
			prev = e.value
			e.value = value
			return prev, true
		}
	}

	m.buckets[i] = &entry[K, V]{hash: h, key: key, value: value, next: m.buckets[i]}
	m.count++
	if float64(m.count) > float64(len(m.buckets))*m.loadFactor {
		m.rehash(len(m.buckets) * 2)
	}
	return prev, false
}

// Get returns the value stored under key, or the zero value and false
// if the key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	for e := m.buckets[m.index(spread(m.hash(key)))]; e != nil; e = e.next {
		if m.equal(e.key, key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove deletes key and returns the value it held, or the zero value
// and false if the key was absent. An absent key is not an error and
// leaves the map unchanged.
func (m *Map[K, V]) Remove(key K) (removed V, ok bool) {
	i := m.index(spread(m.hash(key)))

	head := m.buckets[i]
	if head == nil {
		return removed, false
	}
	if m.equal(head.key, key) {
		m.buckets[i] = head.next
		head.next = nil
		m.count--
		return head.value, true
	}
	for prev := head; prev.next != nil; prev = prev.next {
		if m.equal(prev.next.key, key) {
			matched := prev.next
			prev.next = matched.next
			matched.next = nil
			m.count--
			return matched.value, true
		}
	}
	return removed, false
}

// Len returns the number of stored key/value pairs.
func (m *Map[K, V]) Len() int {
	return m.count
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Clear removes every entry. The bucket array keeps its current
// capacity; there is no shrink on clear.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.count = 0
}

// Reserve grows the bucket array so that n entries fit without
// triggering a resize. It never shrinks the table.
func (m *Map[K, V]) Reserve(n int) {
	target := len(m.buckets)
	for float64(n) > float64(target)*m.loadFactor {
		target *= 2
	}
	if target > len(m.buckets) {
		m.rehash(target)
	}
}

// rehash relinks every entry into a bucket array of newCap slots.
// Entries are moved, not copied: the cached hash is re-masked against
// the new capacity and the node is spliced into its new chain. The
// table's bucket array is only replaced once the new array is fully
// populated, so callers never observe a partially resized table.
func (m *Map[K, V]) rehash(newCap int) {
	next := make([]*entry[K, V], newCap)
	mask := uint64(newCap - 1)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			succ := e.next
			i := int(e.hash & mask)
			e.next = next[i]
			next[i] = e
			e = succ
		}
	}
	m.buckets = next
}
