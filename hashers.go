package chainmap

import (
	"bytes"
	"fmt"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Multiplicative mixing constants, from wyhash.
const (
	mixM1 = 0xa0761d6478bd642f
	mixM2 = 0xe7037ed1a0b428db
)

// StringHash hashes a string with xxHash.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash hashes a byte slice with xxHash.
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// BytesEqual compares byte-slice keys by content.
func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// Uint64Hash mixes an integer key so that nearby keys land in distant
// buckets. Masking raw sequential integers against capacity-1 would
// otherwise fill buckets in lockstep.
func Uint64Hash(k uint64) uint64 {
	k *= mixM1
	k ^= k >> 32
	k *= mixM2
	k ^= k >> 29
	return k
}

// IntHash hashes an int key. See Uint64Hash.
func IntHash(k int) uint64 {
	return Uint64Hash(uint64(k))
}

// Equal is the value-equality function for comparable key types.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// Hasher returns a hash function usable with any comparable key type,
// backed by hash/maphash over the key's formatted representation. The
// seed is captured once, so the function is deterministic for the
// lifetime of the map it is given to. Prefer the typed hashers
// (StringHash, IntHash, ...) where they apply; this one pays for
// formatting on every call.
func Hasher[K comparable]() func(K) uint64 {
	seed := maphash.MakeSeed()
	return func(k K) uint64 {
		var h maphash.Hash
		h.SetSeed(seed)
		fmt.Fprintf(&h, "%v", k)
		return h.Sum64()
	}
}

// PointerHasher adapts a hash/equal pair over K to pointer keys *K.
// A nil key is legal: it hashes to 0, routing it to bucket 0, and
// compares equal only to another nil key.
func PointerHasher[K any](hash func(K) uint64, equal func(a, b K) bool) (func(*K) uint64, func(a, b *K) bool) {
	h := func(p *K) uint64 {
		if p == nil {
			return 0
		}
		return hash(*p)
	}
	eq := func(a, b *K) bool {
		if a == nil || b == nil {
			return a == b
		}
		return equal(*a, *b)
	}
	return h, eq
}
