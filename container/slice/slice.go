// Package slice implements generic helpers over Go slices: mapping and
// applying functions over one or several slices in lockstep, flattening,
// set-like comparisons, human readable joins and random element selection.
//
// Lockstep helpers (Map2, Apply2, FlatMap2, ...) walk their inputs together
// and stop at the end of the shortest one.
package slice

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// ErrEmptySlice is returned when an element is requested from an empty slice.
var ErrEmptySlice = errors.New("slice is empty")

// RangeSource draws an integer from the half-open interval [min, max).
type RangeSource interface {
	IntRange(min, max int) (int, error)
}

// RandomRef returns an element of s chosen by src.
func RandomRef[T any](s []T, src RangeSource) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptySlice
	}
	i, err := src.IntRange(0, len(s))
	if err != nil {
		return zero, errors.Wrap(err, "could not pick index")
	}
	return s[i], nil
}

// IsEmpty reports whether s has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// Map returns fn applied to every element of s.
func Map[T, R any](s []T, fn func(T) R) []R {
	res := make([]R, len(s))
	for i, v := range s {
		res[i] = fn(v)
	}
	return res
}

// Map2 returns fn applied to the elements of a and b taken pairwise.
func Map2[A, B, R any](a []A, b []B, fn func(A, B) R) []R {
	n := min(len(a), len(b))
	res := make([]R, n)
	for i := 0; i < n; i++ {
		res[i] = fn(a[i], b[i])
	}
	return res
}

// Map3 returns fn applied to the elements of a, b and c taken together.
func Map3[A, B, C, R any](a []A, b []B, c []C, fn func(A, B, C) R) []R {
	n := min(len(a), len(b), len(c))
	res := make([]R, n)
	for i := 0; i < n; i++ {
		res[i] = fn(a[i], b[i], c[i])
	}
	return res
}

// Apply calls fn for every element of s.
func Apply[T any](s []T, fn func(T)) {
	for _, v := range s {
		fn(v)
	}
}

// Apply2 calls fn for the elements of a and b taken pairwise.
func Apply2[A, B any](a []A, b []B, fn func(A, B)) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		fn(a[i], b[i])
	}
}

// Apply3 calls fn for the elements of a, b and c taken together.
func Apply3[A, B, C any](a []A, b []B, c []C, fn func(A, B, C)) {
	n := min(len(a), len(b), len(c))
	for i := 0; i < n; i++ {
		fn(a[i], b[i], c[i])
	}
}

// FlatMap concatenates the slices returned by fn for every element of s.
func FlatMap[T, R any](s []T, fn func(T) []R) []R {
	var res []R
	for _, v := range s {
		res = append(res, fn(v)...)
	}
	return res
}

// FlatMap2 concatenates the slices returned by fn for the elements of a and b
// taken pairwise.
func FlatMap2[A, B, R any](a []A, b []B, fn func(A, B) []R) []R {
	n := min(len(a), len(b))
	var res []R
	for i := 0; i < n; i++ {
		res = append(res, fn(a[i], b[i])...)
	}
	return res
}

// Flatten concatenates lists into a new slice.
func Flatten[T any](lists ...[]T) []T {
	size := 0
	for _, l := range lists {
		size += len(l)
	}
	res := make([]T, 0, size)
	for _, l := range lists {
		res = append(res, l...)
	}
	return res
}

// Repeat returns the results of calling fn with 0..count-1. A non-positive
// count yields an empty slice.
func Repeat[R any](fn func(i int) R, count int) []R {
	if count <= 0 {
		return []R{}
	}
	res := make([]R, count)
	for i := range res {
		res[i] = fn(i)
	}
	return res
}

// IsSubsetOf reports whether every element of subset is present in superset.
func IsSubsetOf[T comparable](subset, superset []T) bool {
	set := make(map[T]struct{}, len(superset))
	for _, v := range superset {
		set[v] = struct{}{}
	}
	for _, v := range subset {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

// SequenceEquivalent reports whether a and b have the same length and hold the
// same set of elements, regardless of order.
func SequenceEquivalent[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return IsSubsetOf(a, b) && IsSubsetOf(b, a)
}

// DistinctRetainOrder returns the elements of s without duplicates, keeping
// the first occurrence of each.
func DistinctRetainOrder[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	res := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// Tail returns the elements of the longer slice past the length of the
// shorter one. Equal lengths yield an empty slice.
func Tail[T any](a, b []T) []T {
	switch {
	case len(a) > len(b):
		return slices.Clone(a[len(b):])
	case len(b) > len(a):
		return slices.Clone(b[len(a):])
	default:
		return []T{}
	}
}

// PairwiseMerge interleaves a and b element by element and appends whatever
// is left of the longer slice.
func PairwiseMerge[T any](a, b []T) []T {
	merged := FlatMap2(a, b, func(x, y T) []T { return []T{x, y} })
	return append(merged, Tail(a, b)...)
}
