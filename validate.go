package textdiff

import "fmt"

// ValidationReason identifies why a Hunk is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrRangeOutOfBounds ValidationReason = "out_of_bounds"
	ErrKindMismatch     ValidationReason = "kind_mismatch"
	ErrOutOfOrder       ValidationReason = "out_of_order"
)

// ValidationError describes a single invalid hunk.
type ValidationError struct {
	Index  int              // Position of the hunk in the list
	Hunk   Hunk             // The problematic hunk
	Reason ValidationReason // Why this hunk is invalid
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrRangeOutOfBounds:
		return fmt.Sprintf("hunk %d (%s): range outside the compared lines", e.Index, e.Hunk)
	case ErrKindMismatch:
		return fmt.Sprintf("hunk %d (%s): ranges do not agree with kind", e.Index, e.Hunk)
	case ErrOutOfOrder:
		return fmt.Sprintf("hunk %d (%s): overlaps or precedes the previous hunk", e.Index, e.Hunk)
	default:
		return fmt.Sprintf("hunk %d (%s): unknown error", e.Index, e.Hunk)
	}
}

// ValidateHunks checks that every hunk has ranges matching its kind, that
// ranges lie within sequences of the given lengths, and that hunks appear in
// document order without overlap. Returns nil if all hunks are valid.
func ValidateHunks(hunks []Hunk, expectedLen, actualLen int) []ValidationError {
	var errors []ValidationError
	nextI, nextJ := 0, 0

	for idx, h := range hunks {
		if !kindAgrees(h) {
			errors = append(errors, ValidationError{Index: idx, Hunk: h, Reason: ErrKindMismatch})
			continue
		}
		if !inBounds(h.Expected, expectedLen) || !inBounds(h.Actual, actualLen) {
			errors = append(errors, ValidationError{Index: idx, Hunk: h, Reason: ErrRangeOutOfBounds})
			continue
		}
		if (h.Expected != nil && h.Expected.Start < nextI) || (h.Actual != nil && h.Actual.Start < nextJ) {
			errors = append(errors, ValidationError{Index: idx, Hunk: h, Reason: ErrOutOfOrder})
			continue
		}
		if h.Expected != nil {
			nextI = h.Expected.End + 1
		}
		if h.Actual != nil {
			nextJ = h.Actual.End + 1
		}
	}

	return errors
}

func kindAgrees(h Hunk) bool {
	switch h.Kind {
	case KindModify:
		return h.Expected != nil && h.Actual != nil
	case KindAdd:
		return h.Expected == nil && h.Actual != nil
	case KindDelete:
		return h.Expected != nil && h.Actual == nil
	default:
		return false
	}
}

func inBounds(r *Range, n int) bool {
	if r == nil {
		return true
	}
	return r.Start >= 0 && r.Start <= r.End && r.End < n
}
