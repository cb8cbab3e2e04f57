package normalize_test

import (
	"testing"

	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		flags textdiff.Flags
		want  []string
	}{
		{
			name: "no flags keeps lines",
			text: "Hello, World\n42 items\n",
			want: []string{"Hello, World", "42 items"},
		},
		{
			name:  "numbers collapse to placeholder",
			text:  "x = 12\ny = 3.5",
			flags: textdiff.IgnoreNumbers,
			want:  []string{"x = ###", "y = ###.###"},
		},
		{
			name:  "non-numbers collapse to a space",
			text:  "total: 12 of 40\nnone",
			flags: textdiff.IgnoreNonNumbers,
			want:  []string{" 12 40", " "},
		},
		{
			name:  "punctuation stripped",
			text:  `He said, "hi!" (twice) [ok]`,
			flags: textdiff.IgnorePunctuation,
			want:  []string{"He said hi twice ok"},
		},
		{
			name:  "digits after decimal point collapse",
			text:  "pi is 3.14159\nend.",
			flags: textdiff.IgnoreAfterDecimal,
			want:  []string{"pi is 3.#", "end."},
		},
		{
			name:  "case folds to lower",
			text:  "ABC\nDéF",
			flags: textdiff.IgnoreCase,
			want:  []string{"abc", "déf"},
		},
		{
			name:  "char order sorts each line",
			text:  "cba\nzyx",
			flags: textdiff.IgnoreCharOrder,
			want:  []string{"abc", "xyz"},
		},
		{
			name:  "line order sorts the sequence",
			text:  "b\nc\na",
			flags: textdiff.IgnoreLineOrder,
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "whitespace removed per line",
			text:  " a b \n\tc",
			flags: textdiff.IgnoreWhitespace,
			want:  []string{"ab", "c"},
		},
		{
			name:  "punctuation runs before decimal collapse",
			text:  "3.14",
			flags: textdiff.IgnorePunctuation | textdiff.IgnoreAfterDecimal,
			want:  []string{"314"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seq := normalize.Sequence(tt.text, tt.flags)
			assert.Equal(t, tt.want, seq.Lines)
		})
	}
}

func TestSequence_DisplayUntouched(t *testing.T) {
	t.Parallel()

	text := "B a\r\nA b"
	seq := normalize.Sequence(text, textdiff.IgnoreCase|textdiff.IgnoreLineOrder|textdiff.IgnoreWhitespace)

	assert.Equal(t, []string{"B a", "A b"}, seq.Display)
	assert.Equal(t, []string{"ab", "ba"}, seq.Lines)
	assert.Equal(t, "a b\nb a", seq.Text)
}

func TestSequence_WhitespaceLeavesBlob(t *testing.T) {
	t.Parallel()

	seq := normalize.Sequence("a b", textdiff.IgnoreWhitespace)

	assert.Equal(t, "a b", seq.Text)
	assert.Equal(t, []string{"ab"}, seq.Lines)
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("equal after case folding", func(t *testing.T) {
		t.Parallel()

		cmp := normalize.NewNormalizer().Normalize("ABC", "abc", textdiff.IgnoreCase)
		require.NotNil(t, cmp)
		assert.True(t, cmp.Equal())
		assert.Equal(t, textdiff.IgnoreCase, cmp.Flags)
	})

	t.Run("trailing whitespace ignored by equality", func(t *testing.T) {
		t.Parallel()

		cmp := normalize.NewNormalizer().Normalize("a\nb\n\n", "a\nb  ", textdiff.FlagsDefault)
		assert.True(t, cmp.Equal())
	})

	t.Run("different text is not equal", func(t *testing.T) {
		t.Parallel()

		cmp := normalize.NewNormalizer().Normalize("ABC", "abc", textdiff.FlagsDefault)
		assert.False(t, cmp.Equal())
	})
}

func TestSortGraphemes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", normalize.SortGraphemes(""))
	assert.Equal(t, "abc", normalize.SortGraphemes("bca"))
	// "e" + combining acute stays one cluster.
	assert.Equal(t, "ae\u0301z", normalize.SortGraphemes("ze\u0301a"))
}
