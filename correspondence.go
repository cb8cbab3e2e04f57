package textdiff

// Unmatched marks an actual line with no counterpart in the expected lines.
const Unmatched = -1

// Correspondence maps each actual line position to the expected line it is
// paired with, or Unmatched. Paired expected positions strictly increase
// with the actual position.
type Correspondence []int

// NewCorrespondence returns a correspondence of n actual lines, all unmatched.
func NewCorrespondence(n int) Correspondence {
	c := make(Correspondence, n)
	for j := range c {
		c[j] = Unmatched
	}
	return c
}

// Matches returns the number of paired lines.
func (c Correspondence) Matches() int {
	n := 0
	for _, i := range c {
		if i != Unmatched {
			n++
		}
	}
	return n
}

// Hunks walks the correspondence in document order and returns one hunk
// for every maximal run of unpaired lines between two pairs. expectedLen is
// the length of the expected sequence the correspondence was built against.
func (c Correspondence) Hunks(expectedLen int) []Hunk {
	var hunks []Hunk
	prevI, prevJ := -1, -1
	flush := func(i, j int) {
		dels := i - prevI - 1
		ins := j - prevJ - 1
		if dels > 0 || ins > 0 {
			hunks = append(hunks, NewHunk(prevI+1, dels, prevJ+1, ins))
		}
	}
	for j, i := range c {
		if i == Unmatched {
			continue
		}
		flush(i, j)
		prevI, prevJ = i, j
	}
	flush(expectedLen, len(c))
	return hunks
}
