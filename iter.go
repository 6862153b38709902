package chainmap

// Range calls fn for every key/value pair until fn returns false or
// every entry has been visited. Visit order is unspecified and may
// change across resizes. Mutating the map from inside fn is undefined
// behavior, same as for Go's builtin map.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns all keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	m.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns all values in unspecified order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.count)
	m.Range(func(_ K, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}

// GetOrDefault returns the value stored under key, or def if the key
// is absent.
func (m *Map[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return def
}

// GetOrPut returns the existing value for key, or stores and returns
// value if the key was absent. loaded is true if the key existed.
func (m *Map[K, V]) GetOrPut(key K, value V) (actual V, loaded bool) {
	if v, ok := m.Get(key); ok {
		return v, true
	}
	m.Put(key, value)
	return value, false
}

// PutIfAbsent stores value only if key is not already present. It
// reports whether the value was stored.
func (m *Map[K, V]) PutIfAbsent(key K, value V) bool {
	if m.Has(key) {
		return false
	}
	m.Put(key, value)
	return true
}

// Update stores the result of fn applied to the current value (or the
// zero value if absent) and returns it.
func (m *Map[K, V]) Update(key K, fn func(old V, ok bool) V) V {
	old, ok := m.Get(key)
	next := fn(old, ok)
	m.Put(key, next)
	return next
}

// Clone returns an independent copy of the map sharing the hash and
// equal functions. Entries are copied, not aliased, so mutations of
// either map are invisible to the other. Values are shallow-copied.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		buckets:    make([]*entry[K, V], len(m.buckets)),
		count:      m.count,
		loadFactor: m.loadFactor,
		hash:       m.hash,
		equal:      m.equal,
	}
	for i, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			c.buckets[i] = &entry[K, V]{hash: e.hash, key: e.key, value: e.value, next: c.buckets[i]}
		}
	}
	return c
}

// Stats describes the shape of the table, for diagnostics and tests.
type Stats struct {
	Buckets  int // current capacity
	Entries  int // stored pairs, same as Len
	Occupied int // buckets with at least one entry
	MaxChain int // length of the longest chain
}

// Stats walks every bucket and reports the table's shape.
func (m *Map[K, V]) Stats() Stats {
	s := Stats{Buckets: len(m.buckets), Entries: m.count}
	for _, head := range m.buckets {
		if head == nil {
			continue
		}
		s.Occupied++
		n := 0
		for e := head; e != nil; e = e.next {
			n++
		}
		if n > s.MaxChain {
			s.MaxChain = n
		}
	}
	return s
}
