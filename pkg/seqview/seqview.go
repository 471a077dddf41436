// Package seqview provides read-only, random-access views over ordered
// sequences together with the equality predicate their elements are
// compared under. Distance engines accept views instead of raw inputs so
// that uniform code-unit strings and generic element slices go through
// the same machinery.
package seqview

import (
	"errors"
	"fmt"
	"iter"
)

// ErrCompare is returned when a caller-supplied equality predicate fails.
// The original cause is wrapped and reachable through errors.Is/As.
var ErrCompare = errors.New("element comparison failed")

// Eq reports whether two elements compare equal. Predicates over boxed
// values may fail; primitive predicates never do.
type Eq[T any] func(a, b T) (bool, error)

// View is a length-known, random-access snapshot of an ordered sequence.
// A View is immutable for the duration of a distance computation; engines
// never mutate it.
type View[T any] struct {
	items []T
	eq    Eq[T]
}

// Strings returns a uniform code-unit view over the runes of s.
// Element equality is primitive and cannot fail.
func Strings(s string) View[rune] {
	return View[rune]{items: []rune(s), eq: primitiveEq[rune]}
}

// Values returns a generic view over items compared with ==.
// The view aliases items; callers must not mutate the slice while a
// computation is in flight.
func Values[T comparable](items []T) View[T] {
	return View[T]{items: items, eq: primitiveEq[T]}
}

// Func returns a generic view over items compared with eq.
func Func[T any](items []T, eq Eq[T]) View[T] {
	return View[T]{items: items, eq: eq}
}

// Collect materializes a one-pass source into a view. The source is
// iterated exactly once and never revisited.
func Collect[T comparable](src iter.Seq[T]) View[T] {
	var items []T
	for item := range src {
		items = append(items, item)
	}

	return Values(items)
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	return len(v.items)
}

// At returns the element at index i.
func (v View[T]) At(i int) T {
	return v.items[i]
}

// Equal compares v's element at i with w's element at j under v's
// predicate. A predicate failure is reported wrapped in ErrCompare.
func (v View[T]) Equal(i int, w View[T], j int) (bool, error) {
	same, err := v.eq(v.items[i], w.items[j])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrCompare, err)
	}

	return same, nil
}

func primitiveEq[T comparable](a, b T) (bool, error) {
	return a == b, nil
}
