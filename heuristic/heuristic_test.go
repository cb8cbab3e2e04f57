package heuristic_test

import (
	"testing"

	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(start, end int) *textdiff.Range {
	return &textdiff.Range{Start: start, End: end}
}

func TestActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		left, right []string
		flags       textdiff.Flags
		want        string
	}{
		{
			name:  "identical sequences copy every line",
			left:  []string{"a", "b", "c"},
			right: []string{"a", "b", "c"},
			want:  "CCC",
		},
		{
			name:  "changed middle line",
			left:  []string{"a", "b", "c"},
			right: []string{"a", "x", "c"},
			want:  "CDIC",
		},
		{
			name:  "trailing right lines dropped by default",
			left:  []string{"a", "b"},
			right: []string{"a", "b", "c"},
			want:  "CC",
		},
		{
			name:  "trailing right lines reported with IgnoreTrailing",
			left:  []string{"a", "b"},
			right: []string{"a", "b", "c"},
			flags: textdiff.IgnoreTrailing,
			want:  "CCI",
		},
		{
			name:  "trailing left lines always deleted",
			left:  []string{"a", "b", "c"},
			right: []string{"a"},
			want:  "CDD",
		},
		{
			name:  "right line found in left wins a tie",
			left:  []string{"a", "b"},
			right: []string{"b", "a"},
			flags: textdiff.IgnoreTrailing,
			want:  "DCI",
		},
		{
			name:  "blank lines are not anchors",
			left:  []string{"x", "", "y"},
			right: []string{"z", "", "y"},
			want:  "DDIIC",
		},
		{
			name:  "nothing in common",
			left:  []string{"a", "b"},
			right: []string{"c", "d"},
			flags: textdiff.IgnoreTrailing,
			want:  "DDII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, heuristic.Actions(tt.left, tt.right, tt.flags))
		})
	}
}

func TestMatcher_Match(t *testing.T) {
	t.Parallel()

	m := heuristic.NewMatcher()

	t.Run("identical sequences yield no hunks", func(t *testing.T) {
		t.Parallel()

		lines := []string{"one", "two", "three"}
		assert.Empty(t, m.Match(lines, lines, textdiff.FlagsDefault))
	})

	t.Run("modify", func(t *testing.T) {
		t.Parallel()

		hunks := m.Match([]string{"a", "b", "c"}, []string{"a", "x", "c"}, textdiff.FlagsDefault)

		require.Len(t, hunks, 1)
		assert.Equal(t, textdiff.KindModify, hunks[0].Kind)
		assert.Equal(t, rng(1, 1), hunks[0].Expected)
		assert.Equal(t, rng(1, 1), hunks[0].Actual)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		hunks := m.Match([]string{"a", "b", "c"}, []string{"a", "c"}, textdiff.FlagsDefault)

		require.Len(t, hunks, 1)
		assert.Equal(t, textdiff.KindDelete, hunks[0].Kind)
		assert.Equal(t, rng(1, 1), hunks[0].Expected)
		assert.Nil(t, hunks[0].Actual)
		assert.Equal(t, 1, hunks[0].ActualAt)
	})

	t.Run("trailing add needs IgnoreTrailing", func(t *testing.T) {
		t.Parallel()

		left := []string{"a", "b"}
		right := []string{"a", "b", "c"}

		assert.Empty(t, m.Match(left, right, textdiff.FlagsDefault))

		hunks := m.Match(left, right, textdiff.IgnoreTrailing)
		require.Len(t, hunks, 1)
		assert.Equal(t, textdiff.KindAdd, hunks[0].Kind)
		assert.Nil(t, hunks[0].Expected)
		assert.Equal(t, rng(2, 2), hunks[0].Actual)
		assert.Equal(t, 2, hunks[0].ExpectedAt)
	})

	t.Run("leading add dropped with IgnoreLeading", func(t *testing.T) {
		t.Parallel()

		left := []string{"b"}
		right := []string{"a", "b"}

		hunks := m.Match(left, right, textdiff.FlagsDefault)
		require.Len(t, hunks, 1)
		assert.Equal(t, textdiff.KindAdd, hunks[0].Kind)
		assert.Equal(t, rng(0, 0), hunks[0].Actual)

		assert.Empty(t, m.Match(left, right, textdiff.IgnoreLeading))
	})

	t.Run("add after the first line survives IgnoreLeading", func(t *testing.T) {
		t.Parallel()

		hunks := m.Match([]string{"a", "c"}, []string{"a", "b", "c"}, textdiff.IgnoreLeading)

		require.Len(t, hunks, 1)
		assert.Equal(t, textdiff.KindAdd, hunks[0].Kind)
		assert.Equal(t, rng(1, 1), hunks[0].Actual)
	})

	t.Run("one hunk per run", func(t *testing.T) {
		t.Parallel()

		left := []string{"a", "b", "c", "d", "e"}
		right := []string{"a", "x", "y", "c", "e"}
		hunks := m.Match(left, right, textdiff.FlagsDefault)

		require.Len(t, hunks, 2)
		assert.Equal(t, textdiff.KindModify, hunks[0].Kind)
		assert.Equal(t, rng(1, 1), hunks[0].Expected)
		assert.Equal(t, rng(1, 2), hunks[0].Actual)
		assert.Equal(t, textdiff.KindDelete, hunks[1].Kind)
		assert.Equal(t, rng(3, 3), hunks[1].Expected)
		assert.Empty(t, textdiff.ValidateHunks(hunks, len(left), len(right)))
	})
}
