package levenshtein

import "iter"

// Match is one candidate within the quick engine's bound of the
// reference string, paired with its exact distance.
type Match struct {
	Distance  int
	Candidate string
}

// Source supplies candidate strings to a Cursor, one pull at a time.
// Next returns ok=false once the source is exhausted. A non-nil error
// aborts the whole iteration; no further pulls are made.
type Source interface {
	Next() (candidate string, ok bool, err error)
}

// SliceSource adapts a string slice into a Source.
type SliceSource struct {
	candidates []string
	pos        int
}

// NewSliceSource returns a Source yielding candidates in order.
func NewSliceSource(candidates []string) *SliceSource {
	return &SliceSource{candidates: candidates}
}

// Next implements Source.
func (s *SliceSource) Next() (string, bool, error) {
	if s.pos >= len(s.candidates) {
		return "", false, nil
	}

	candidate := s.candidates[s.pos]
	s.pos++

	return candidate, true, nil
}

// Cursor streams candidates from a source and retains only those within
// Bound of the reference string, in source order. Each step does a
// bounded amount of work and keeps O(1) state beyond the reference view.
// A Cursor is single-owner: it must not be driven from more than one
// goroutine.
type Cursor struct {
	ref   []rune
	src   Source
	match Match
	err   error
	done  bool
}

// NewCursor returns a cursor pairing reference against src. The
// reference view is built once and reused for every candidate.
func NewCursor(reference string, src Source) *Cursor {
	return &Cursor{ref: []rune(reference), src: src}
}

// Scan advances to the next candidate within Bound of the reference,
// skipping out-of-bound candidates without yielding them. It reports
// false when the source is exhausted or failed; Err tells the two apart.
func (c *Cursor) Scan() bool {
	if c.done {
		return false
	}

	for {
		candidate, ok, err := c.src.Next()
		if err != nil {
			c.err = err
			c.done = true

			return false
		}

		if !ok {
			c.done = true

			return false
		}

		dist := c.distance([]rune(candidate))
		if dist == Unbounded {
			continue
		}

		c.match = Match{Distance: dist, Candidate: candidate}

		return true
	}
}

// Match returns the pair produced by the last successful Scan.
func (c *Cursor) Match() Match {
	return c.match
}

// Err returns the source failure that ended the iteration, if any.
func (c *Cursor) Err() error {
	return c.err
}

func (c *Cursor) distance(candidate []rune) int {
	if len(c.ref) >= len(candidate) {
		return quickRunes(c.ref, candidate)
	}

	return quickRunes(candidate, c.ref)
}

// sourceFunc adapts a pull function into a Source.
type sourceFunc func() (string, bool, error)

func (f sourceFunc) Next() (string, bool, error) {
	return f()
}

// Matches returns a lazy sequence of (distance, candidate) pairs for
// every candidate within Bound of the reference, preserving source
// order. Candidates beyond Bound are skipped, not yielded.
func Matches(reference string, candidates iter.Seq[string]) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		next, stop := iter.Pull(candidates)
		defer stop()

		cursor := NewCursor(reference, sourceFunc(func() (string, bool, error) {
			candidate, ok := next()

			return candidate, ok, nil
		}))

		for cursor.Scan() {
			match := cursor.Match()
			if !yield(match.Distance, match.Candidate) {
				return
			}
		}
	}
}
