package levenshtein_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/seqdist/pkg/levenshtein"
)

func TestCursorFiltersCandidates(t *testing.T) {
	t.Parallel()

	candidates := []string{"fo", "bar", "foob", "foo", "foobaz"}
	cursor := levenshtein.NewCursor("foo", levenshtein.NewSliceSource(candidates))

	var matches []levenshtein.Match
	for cursor.Scan() {
		matches = append(matches, cursor.Match())
	}

	require.NoError(t, cursor.Err())

	// Source order is preserved; out-of-bound candidates are skipped.
	assert.Equal(t, []levenshtein.Match{
		{Distance: 1, Candidate: "fo"},
		{Distance: 1, Candidate: "foob"},
		{Distance: 0, Candidate: "foo"},
	}, matches)
}

func TestCursorSortedMatches(t *testing.T) {
	t.Parallel()

	cursor := levenshtein.NewCursor("foo",
		levenshtein.NewSliceSource([]string{"fo", "bar", "foob", "foo", "foobaz"}))

	var matches []levenshtein.Match
	for cursor.Scan() {
		matches = append(matches, cursor.Match())
	}

	slices.SortFunc(matches, func(a, b levenshtein.Match) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}

		return 0
	})

	require.Len(t, matches, 3)
	assert.Equal(t, levenshtein.Match{Distance: 0, Candidate: "foo"}, matches[0])
}

func TestCursorEmptySource(t *testing.T) {
	t.Parallel()

	cursor := levenshtein.NewCursor("foo", levenshtein.NewSliceSource(nil))

	assert.False(t, cursor.Scan())
	require.NoError(t, cursor.Err())

	// Scanning past exhaustion stays false.
	assert.False(t, cursor.Scan())
}

type failingSource struct {
	items []string
	pos   int
	err   error
}

func (s *failingSource) Next() (string, bool, error) {
	if s.pos >= len(s.items) {
		return "", false, s.err
	}

	item := s.items[s.pos]
	s.pos++

	return item, true, nil
}

func TestCursorSourceFailure(t *testing.T) {
	t.Parallel()

	failure := errors.New("broken pipe")
	cursor := levenshtein.NewCursor("foo", &failingSource{items: []string{"fop"}, err: failure})

	require.True(t, cursor.Scan())
	assert.Equal(t, levenshtein.Match{Distance: 1, Candidate: "fop"}, cursor.Match())

	assert.False(t, cursor.Scan())
	assert.ErrorIs(t, cursor.Err(), failure)

	// A failed cursor does not pull again.
	assert.False(t, cursor.Scan())
}

func TestMatchesSeq(t *testing.T) {
	t.Parallel()

	candidates := slices.Values([]string{"fo", "bar", "foob", "foo", "foobaz"})

	var got []levenshtein.Match
	for dist, candidate := range levenshtein.Matches("foo", candidates) {
		got = append(got, levenshtein.Match{Distance: dist, Candidate: candidate})
	}

	assert.Equal(t, []levenshtein.Match{
		{Distance: 1, Candidate: "fo"},
		{Distance: 1, Candidate: "foob"},
		{Distance: 0, Candidate: "foo"},
	}, got)
}

func TestMatchesEarlyBreak(t *testing.T) {
	t.Parallel()

	pulled := 0
	candidates := func(yield func(string) bool) {
		for _, c := range []string{"fo", "foob", "foo"} {
			pulled++

			if !yield(c) {
				return
			}
		}
	}

	for range levenshtein.Matches("foo", candidates) {
		break
	}

	// Stopping the consumer stops the source; no draining.
	assert.Equal(t, 1, pulled)
}

func TestMatchesAgreesWithQuick(t *testing.T) {
	t.Parallel()

	candidates := []string{"fo", "bar", "foob", "foo", "foobaz", "f", "fooo"}

	var want []levenshtein.Match

	for _, c := range candidates {
		if d := levenshtein.Quick("foo", c); d != levenshtein.Unbounded {
			want = append(want, levenshtein.Match{Distance: d, Candidate: c})
		}
	}

	var got []levenshtein.Match
	for dist, candidate := range levenshtein.Matches("foo", slices.Values(candidates)) {
		got = append(got, levenshtein.Match{Distance: dist, Candidate: candidate})
	}

	assert.Equal(t, want, got)
}
