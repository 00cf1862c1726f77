// Package memo caches the results of pure functions.
//
// Entries are computed on first request and stored until evicted by the
// underlying LRU. Two goroutines missing the same key may both compute the
// value; the last one stored wins. This is harmless for pure functions and
// avoids holding a lock while the function runs.
package memo

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	memoCacheHit = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memo_cache_hit",
		Help: "The number of memoized lookups that were served from the cache.",
	}, []string{"cache"})
	memoCacheMiss = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memo_cache_miss",
		Help: "The number of memoized lookups that had to compute their value.",
	}, []string{"cache"})
)

// ErrInvalidSize is returned when a memoizer is created with a non-positive size.
var ErrInvalidSize = errors.New("memo cache size must be positive")

// Memoizer wraps fn with a bounded cache keyed by its argument.
type Memoizer[K comparable, V any] struct {
	fn                          func(K) (V, error)
	lru                         *lru.Cache[K, V]
	promCacheHit, promCacheMiss prometheus.Counter
}

// New returns a memoizer for fn holding at most size entries. The name labels
// the hit and miss counters.
func New[K comparable, V any](name string, size int, fn func(K) (V, error)) (*Memoizer[K, V], error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "cache %q has size %d", name, size)
	}
	cache, err := lru.New[K, V](size)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create cache %q", name)
	}
	return &Memoizer[K, V]{
		fn:            fn,
		lru:           cache,
		promCacheHit:  memoCacheHit.WithLabelValues(name),
		promCacheMiss: memoCacheMiss.WithLabelValues(name),
	}, nil
}

// Must is like New but panics if the memoizer cannot be created. It is meant
// for package-level variables.
func Must[K comparable, V any](name string, size int, fn func(K) (V, error)) *Memoizer[K, V] {
	m, err := New(name, size, fn)
	if err != nil {
		panic(err)
	}
	return m
}

// Get returns the cached value for key, computing and storing it on a miss.
// Errors from the wrapped function are returned as is and never cached.
func (m *Memoizer[K, V]) Get(key K) (V, error) {
	if v, ok := m.lru.Get(key); ok {
		m.promCacheHit.Inc()
		return v, nil
	}
	m.promCacheMiss.Inc()
	v, err := m.fn(key)
	if err != nil {
		var zero V
		return zero, err
	}
	m.lru.Add(key, v)
	return v, nil
}

// Contains reports whether key has a cached value, without touching recency.
func (m *Memoizer[K, V]) Contains(key K) bool {
	return m.lru.Contains(key)
}

// Len returns the number of cached entries.
func (m *Memoizer[K, V]) Len() int {
	return m.lru.Len()
}

// Purge drops every cached entry.
func (m *Memoizer[K, V]) Purge() {
	m.lru.Purge()
}
