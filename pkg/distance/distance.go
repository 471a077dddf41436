// Package distance is the public surface of the seqdist library. It
// dispatches between the uniform code-unit fast paths and the generic
// predicate-equality paths, and applies normalization on request.
//
// All state is call-local; nothing is cached between calls.
package distance

import (
	"iter"
	"unicode/utf8"

	"github.com/Sumatoshi-tech/seqdist/pkg/hamming"
	"github.com/Sumatoshi-tech/seqdist/pkg/levenshtein"
	"github.com/Sumatoshi-tech/seqdist/pkg/seqview"
)

// Unbounded is returned by Quick when the true edit distance exceeds
// the quick engine's cutoff of 2.
const Unbounded = levenshtein.Unbounded

// Hamming returns the number of positions at which seq1 and seq2
// differ. It fails with hamming.ErrLengthMismatch when the lengths
// differ.
func Hamming(seq1, seq2 string) (int, error) {
	return hamming.Strings(seq1, seq2)
}

// HammingNormalized returns the Hamming distance divided by the length
// of seq1, in [0,1]. Two empty sequences normalize to 0. Dividing by
// len(seq1) alone is sound because equal lengths are enforced first.
func HammingNormalized(seq1, seq2 string) (float64, error) {
	dist, err := hamming.Strings(seq1, seq2)
	if err != nil {
		return 0, err
	}

	return normalize(dist, utf8.RuneCountInString(seq1)), nil
}

// HammingOf returns the Hamming distance between two element slices
// compared with ==.
func HammingOf[T comparable](seq1, seq2 []T) (int, error) {
	return hamming.Distance(seqview.Values(seq1), seqview.Values(seq2))
}

// HammingOfNormalized returns the Hamming distance between two element
// slices compared with ==, divided by the length of seq1.
func HammingOfNormalized[T comparable](seq1, seq2 []T) (float64, error) {
	dist, err := HammingOf(seq1, seq2)
	if err != nil {
		return 0, err
	}

	return normalize(dist, len(seq1)), nil
}

// HammingFunc returns the Hamming distance between two element slices
// compared with eq. A predicate failure aborts the scan.
func HammingFunc[T any](seq1, seq2 []T, eq seqview.Eq[T]) (int, error) {
	return hamming.Distance(seqview.Func(seq1, eq), seqview.Func(seq2, eq))
}

// Levenshtein returns the edit distance between seq1 and seq2.
func Levenshtein(seq1, seq2 string) int {
	var ctx levenshtein.Context

	return ctx.Distance(seq1, seq2)
}

// LevenshteinNormalized returns the edit distance divided by the longer
// length, in [0,1]. Two empty sequences normalize to 0.
func LevenshteinNormalized(seq1, seq2 string) float64 {
	var ctx levenshtein.Context

	dist := ctx.Distance(seq1, seq2)
	denom := max(utf8.RuneCountInString(seq1), utf8.RuneCountInString(seq2))

	return normalize(dist, denom)
}

// LevenshteinOf returns the edit distance between two element slices
// compared with ==.
func LevenshteinOf[T comparable](seq1, seq2 []T) (int, error) {
	return levenshtein.DistanceViews(seqview.Values(seq1), seqview.Values(seq2))
}

// LevenshteinOfNormalized returns the edit distance between two element
// slices compared with ==, divided by the longer length.
func LevenshteinOfNormalized[T comparable](seq1, seq2 []T) (float64, error) {
	dist, err := LevenshteinOf(seq1, seq2)
	if err != nil {
		return 0, err
	}

	return normalize(dist, max(len(seq1), len(seq2))), nil
}

// LevenshteinFunc returns the edit distance between two element slices
// compared with eq. A predicate failure aborts the computation.
func LevenshteinFunc[T any](seq1, seq2 []T, eq seqview.Eq[T]) (int, error) {
	return levenshtein.DistanceViews(seqview.Func(seq1, eq), seqview.Func(seq2, eq))
}

// Quick returns the exact edit distance between str1 and str2 when it
// is at most 2, and Unbounded otherwise, in linear time.
func Quick(str1, str2 string) int {
	return levenshtein.Quick(str1, str2)
}

// Matches lazily yields (distance, candidate) for every candidate
// within distance 2 of reference, preserving source order.
func Matches(reference string, candidates iter.Seq[string]) iter.Seq2[int, string] {
	return levenshtein.Matches(reference, candidates)
}
