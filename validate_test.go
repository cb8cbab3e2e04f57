package textdiff_test

import (
	"testing"

	"github.com/fwojciec/textdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHunks(t *testing.T) {
	t.Parallel()

	t.Run("valid hunks pass", func(t *testing.T) {
		t.Parallel()

		hunks := []textdiff.Hunk{
			textdiff.NewHunk(1, 1, 1, 2),
			textdiff.NewHunk(3, 1, 4, 0),
			textdiff.NewHunk(5, 0, 5, 1),
		}

		assert.Empty(t, textdiff.ValidateHunks(hunks, 5, 6))
	})

	t.Run("range past the end", func(t *testing.T) {
		t.Parallel()

		hunks := []textdiff.Hunk{textdiff.NewHunk(2, 2, 2, 0)}

		errs := textdiff.ValidateHunks(hunks, 3, 3)
		require.Len(t, errs, 1)
		assert.Equal(t, textdiff.ErrRangeOutOfBounds, errs[0].Reason)
		assert.Equal(t, 0, errs[0].Index)
	})

	t.Run("kind disagrees with ranges", func(t *testing.T) {
		t.Parallel()

		h := textdiff.NewHunk(0, 1, 0, 1)
		h.Kind = textdiff.KindAdd

		errs := textdiff.ValidateHunks([]textdiff.Hunk{h}, 1, 1)
		require.Len(t, errs, 1)
		assert.Equal(t, textdiff.ErrKindMismatch, errs[0].Reason)
	})

	t.Run("overlapping hunks", func(t *testing.T) {
		t.Parallel()

		hunks := []textdiff.Hunk{
			textdiff.NewHunk(0, 2, 0, 2),
			textdiff.NewHunk(1, 1, 3, 0),
		}

		errs := textdiff.ValidateHunks(hunks, 4, 4)
		require.Len(t, errs, 1)
		assert.Equal(t, textdiff.ErrOutOfOrder, errs[0].Reason)
		assert.Equal(t, 1, errs[0].Index)
	})

	t.Run("error message names the hunk", func(t *testing.T) {
		t.Parallel()

		errs := textdiff.ValidateHunks([]textdiff.Hunk{textdiff.NewHunk(5, 1, 0, 0)}, 2, 2)
		require.Len(t, errs, 1)
		assert.Equal(t, "hunk 0 (type=DELETE exp=5 act=0): range outside the compared lines", errs[0].Error())
	})
}
