// Package memoize caches the results of pure functions.
package memoize

// Memoize wraps f, computing f(x) at most once per argument. It is not safe
// for concurrent use.
type Memoize[K comparable, V any] struct {
	f       func(K) V
	results map[K]V
}

func NewMemoize[K comparable, V any](f func(K) V) Memoize[K, V] {
	return Memoize[K, V]{
		f:       f,
		results: make(map[K]V),
	}
}

func (m Memoize[K, V]) Call(x K) V {
	cached, ok := m.results[x]
	if ok {
		return cached
	}
	y := m.f(x)
	m.results[x] = y
	return y
}

// Len returns the number of cached results.
func (m Memoize[K, V]) Len() int {
	return len(m.results)
}

// MockMemoize has the same API as Memoize but with an implementation that
// doesn't actually save any results.
type MockMemoize[K comparable, V any] struct {
	f func(K) V
}

func NewMockMemoize[K comparable, V any](f func(K) V) *MockMemoize[K, V] {
	return &MockMemoize[K, V]{f: f}
}

func (m *MockMemoize[K, V]) Call(x K) V {
	return m.f(x)
}

func (m *MockMemoize[K, V]) Len() int {
	return 0
}
