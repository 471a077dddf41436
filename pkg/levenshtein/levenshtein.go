// Package levenshtein computes exact and bounded edit distances between
// sequences. The exact engine is the classic single-row Wagner-Fischer
// dynamic program; the bounded engine decides in linear time whether two
// strings are within edit distance 2.
package levenshtein

// Context carries the rolling DP buffer between calls so that repeated
// distance computations do not allocate. The zero value is ready to use.
// A Context is single-owner: not safe for concurrent use.
type Context struct {
	column []int
}

func (ctx *Context) intSlice(length int) []int {
	if cap(ctx.column) < length {
		ctx.column = make([]int, length)
	}

	return ctx.column[:length]
}

// Distance returns the Levenshtein distance between str1 and str2: the
// minimum number of single-rune insertions, deletions, or substitutions
// needed to transform one into the other.
//
// Time is O(len(str1)*len(str2)); the rolling buffer tracks the shorter
// operand, so space is O(min(len1, len2)).
func (ctx *Context) Distance(str1, str2 string) int {
	s1 := []rune(str1)
	s2 := []rune(str2)

	// Keep the buffer on the shorter operand. Which operand runs as rows
	// does not change the result.
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}

	if len(s1) == 0 {
		return len(s2)
	}

	column := ctx.intSlice(len(s1) + 1)
	for y := 1; y <= len(s1); y++ {
		column[y] = y
	}

	for x, s2Rune := range s2 {
		column[0] = x + 1
		lastdiag := x

		for y, s1Rune := range s1 {
			olddiag := column[y+1]

			cost := 0
			if s1Rune != s2Rune {
				cost = 1
			}

			column[y+1] = min(
				column[y+1]+1,
				column[y]+1,
				lastdiag+cost,
			)
			lastdiag = olddiag
		}
	}

	return column[len(s1)]
}
