package levenshtein

// Bound is the largest distance the quick engine resolves exactly.
const Bound = 2

// Unbounded is the quick engine's sentinel: the true edit distance is
// known to exceed Bound. It is a normal outcome, not an error.
const Unbounded = -1

type editOp byte

const (
	opInsert  editOp = 'i'
	opDelete  editOp = 'd'
	opReplace editOp = 'r'
)

// editModel is one hypothesized alignment for resolving the length gap
// between two sequences: at most two operations, consumed in order as
// mismatches are encountered during the walk.
type editModel [2]editOp

// Candidate models per length difference, most restrictive first.
// With no net length change, two strings within distance 2 can only
// differ by up to two substitutions or one insertion paired with one
// deletion; with a gap of 1, one deletion plus up to one substitution;
// with a gap of 2, exactly two deletions.
var (
	modelsDiff0 = []editModel{
		{opInsert, opDelete},
		{opDelete, opInsert},
		{opReplace, opReplace},
	}
	modelsDiff1 = []editModel{
		{opDelete, opReplace},
		{opReplace, opDelete},
	}
	modelsDiff2 = []editModel{
		{opDelete, opDelete},
	}
)

// Quick returns the exact Levenshtein distance between str1 and str2
// when it is at most Bound, and Unbounded otherwise. It runs in linear
// time and agrees with Context.Distance whenever it does not return
// Unbounded.
func Quick(str1, str2 string) int {
	s1 := []rune(str1)
	s2 := []rune(str2)

	if len(s1) < len(s2) {
		s1, s2 = s2, s1
	}

	return quickRunes(s1, s2)
}

// quickRunes requires len(longer) >= len(shorter).
func quickRunes(longer, shorter []rune) int {
	var models []editModel

	switch len(longer) - len(shorter) {
	case 0:
		models = modelsDiff0
	case 1:
		models = modelsDiff1
	case 2:
		models = modelsDiff2
	default:
		return Unbounded
	}

	best := Bound + 1

	for _, model := range models {
		cost, ok := walkModel(longer, shorter, model)
		if ok && cost < best {
			best = cost
		}
	}

	if best > Bound {
		return Unbounded
	}

	return best
}

// walkModel advances two cursors in lockstep, consuming one operation
// from the model per mismatch. It reports the model's total cost, or
// ok=false if the model cannot explain the pair within Bound edits.
func walkModel(longer, shorter []rune, model editModel) (int, bool) {
	i, j, cost := 0, 0, 0

	for i < len(longer) && j < len(shorter) {
		if longer[i] != shorter[j] {
			cost++
			if cost > Bound {
				return 0, false
			}

			switch model[cost-1] {
			case opDelete:
				i++
			case opInsert:
				j++
			default:
				i++
				j++
			}
		} else {
			i++
			j++
		}
	}

	// Tail absorption: leftover elements on the longer side each consume
	// one remaining delete from the model; leftover elements on the
	// shorter side need remaining insert capacity.
	if i < len(longer) {
		capacity := trailingDeletes(model, cost)
		if len(longer)-i > capacity {
			return 0, false
		}

		cost += len(longer) - i
	} else if j < len(shorter) {
		capacity := 0
		if cost < len(model) && model[cost] == opInsert {
			capacity = 1
		}

		if len(shorter)-j > capacity {
			return 0, false
		}

		cost += len(shorter) - j
	}

	return cost, true
}

// trailingDeletes counts the delete operations not yet consumed after
// used mismatches.
func trailingDeletes(model editModel, used int) int {
	capacity := 0

	for _, op := range model[used:] {
		if op == opDelete {
			capacity++
		}
	}

	return capacity
}
