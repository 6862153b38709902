/*
Package chainmap provides a generic hash table built on bucket chaining.

Map is an associative container implemented from first principles rather
than on Go's builtin map: an array of buckets, each holding a singly
linked chain of entries, with power-of-two capacity growth and
load-factor driven resizing. Keys and values are type parameters; the
caller supplies a hash function and a value-equality function for the
key type at construction.

Basic usage:

	import "github.com/theflywheel/chainmap"

	// Create a map with string keys, using the bundled xxHash hasher.
	m, err := chainmap.New[string, int](chainmap.StringHash, chainmap.Equal[string])
	if err != nil {
		log.Fatal(err)
	}

	// Insert data. Put returns the previous value when replacing.
	m.Put("a", 1)
	prev, replaced := m.Put("a", 2) // prev == 1, replaced == true

	// Retrieve data.
	v, ok := m.Get("a")
	if ok {
		fmt.Println("Value:", v)
	}

	// Delete data. Remove returns the removed value.
	removed, ok := m.Remove("a")

Features:

  - Generic over any key and value type; hash and equality supplied by the caller
  - Bundled hashers: xxHash for strings and byte slices, mixed integer
    hashers, a hash/maphash fallback for arbitrary comparable keys
  - Collision resolution by chaining, head insertion
  - Automatic doubling when size exceeds capacity * load factor (default 0.75)
  - Configurable initial capacity (default 16) and load factor via options
  - Nil pointer keys supported through PointerHasher, routed to bucket 0

Implementation Details:

The bucket array length is always a power of two, so an entry's bucket
is hash & (capacity - 1) after a spread step that folds high hash bits
into the low bits the mask keeps. Each entry caches its spread hash;
resizing relinks existing entries into the doubled array by re-masking
that cached value, without rehashing keys or allocating new entries.
The new array is fully populated before it replaces the old one, so a
resize is never observable half done.

Chains are scanned linearly and there is no treeification of long
chains: an adversary who forces many keys into one bucket degrades
lookups on that bucket to O(n). Choose a well-distributed hash function
for hostile inputs.

Map is not safe for concurrent use. Callers sharing a Map across
goroutines must guard all operations, reads included, with a single
lock.
*/
package chainmap
