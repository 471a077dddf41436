package hamming_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/seqdist/pkg/hamming"
	"github.com/Sumatoshi-tech/seqdist/pkg/seqview"
)

var stringTests = []struct {
	first  string
	second string
	wanted int
}{
	{"", "", 0},
	{"a", "a", 0},
	{"a", "b", 1},
	{"hamming", "hamning", 1},
	{"karolin", "kathrin", 3},
	{"1011101", "1001001", 2},
	{"Fön", "Föm", 1},
}

func TestStrings(t *testing.T) {
	t.Parallel()

	for _, tt := range stringTests {
		dist, err := hamming.Strings(tt.first, tt.second)

		require.NoError(t, err)
		assert.Equal(t, tt.wanted, dist, "hamming distance of %q and %q", tt.first, tt.second)
	}
}

func TestStringsIdentity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "x", "hamming", "aü"} {
		dist, err := hamming.Strings(s, s)

		require.NoError(t, err)
		assert.Zero(t, dist)
	}
}

func TestStringsLengthMismatch(t *testing.T) {
	t.Parallel()

	for _, pair := range [][2]string{{"a", ""}, {"", "a"}, {"abc", "ab"}, {"ü", "üü"}} {
		_, err := hamming.Strings(pair[0], pair[1])

		assert.ErrorIs(t, err, hamming.ErrLengthMismatch, "%q vs %q", pair[0], pair[1])
	}
}

func TestDistanceValues(t *testing.T) {
	t.Parallel()

	dist, err := hamming.Distance(
		seqview.Values([]int{1, 2, 3, 4}),
		seqview.Values([]int{1, 9, 3, 8}),
	)

	require.NoError(t, err)
	assert.Equal(t, 2, dist)
}

func TestDistanceLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := hamming.Distance(
		seqview.Values([]int{1, 2}),
		seqview.Values([]int{1, 2, 3}),
	)

	assert.ErrorIs(t, err, hamming.ErrLengthMismatch)
}

func TestDistancePredicateFailure(t *testing.T) {
	t.Parallel()

	failure := errors.New("not comparable")
	eq := func(_, _ any) (bool, error) {
		return false, failure
	}

	_, err := hamming.Distance(
		seqview.Func([]any{1}, eq),
		seqview.Func([]any{"1"}, eq),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, seqview.ErrCompare)
	assert.ErrorIs(t, err, failure)
}
