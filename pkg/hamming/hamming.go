// Package hamming counts positional mismatches between two equal-length
// sequences.
package hamming

import (
	"errors"

	"github.com/Sumatoshi-tech/seqdist/pkg/seqview"
)

// ErrLengthMismatch is returned when the two sequences differ in length.
// Hamming distance is undefined in that case; no partial count is produced.
var ErrLengthMismatch = errors.New("expected two sequences of the same length")

// Strings returns the Hamming distance between the runes of a and b.
func Strings(a, b string) (int, error) {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) != len(rb) {
		return 0, ErrLengthMismatch
	}

	dist := 0

	for i := range ra {
		if ra[i] != rb[i] {
			dist++
		}
	}

	return dist, nil
}

// Distance returns the Hamming distance between two generic views.
// A predicate failure aborts the scan with no partial count.
func Distance[T any](a, b seqview.View[T]) (int, error) {
	if a.Len() != b.Len() {
		return 0, ErrLengthMismatch
	}

	dist := 0

	for i := range a.Len() {
		same, err := a.Equal(i, b, i)
		if err != nil {
			return 0, err
		}

		if !same {
			dist++
		}
	}

	return dist, nil
}
