// Package maputil provides small generic helpers for reading and updating maps.
package maputil

// Pair is a single key and value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// ValueOr returns the value stored under key, or def when key is absent.
func ValueOr[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Upsert stores value under key. It returns the previous value and true when
// key was already present, or the zero value and false when it was added.
func Upsert[K comparable, V any](m map[K]V, key K, value V) (old V, updated bool) {
	old, updated = m[key]
	m[key] = value
	return old, updated
}

// UpsertAll upserts every pair in order and reports, per pair, whether it
// replaced an existing entry.
func UpsertAll[K comparable, V any](m map[K]V, pairs []Pair[K, V]) []bool {
	updated := make([]bool, len(pairs))
	for i, p := range pairs {
		_, updated[i] = Upsert(m, p.Key, p.Value)
	}
	return updated
}

// FromPairs builds a map from pairs. Later pairs win over earlier ones with
// the same key.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))
	UpsertAll(m, pairs)
	return m
}
