package gitdiff_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/gitdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparison(expected, actual []string) *textdiff.Comparison {
	return &textdiff.Comparison{
		Expected: textdiff.Sequence{Lines: expected, Display: expected},
		Actual:   textdiff.Sequence{Lines: actual, Display: actual},
	}
}

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("l%d", i+1)
	}
	return lines
}

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("no hunks", func(t *testing.T) {
		t.Parallel()

		got, err := gitdiff.NewFormatter().Format(comparison([]string{"a"}, []string{"a"}), nil, "x", "y")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("single change with context", func(t *testing.T) {
		t.Parallel()

		cmp := comparison([]string{"a", "b", "c"}, []string{"a", "x", "c"})
		got, err := gitdiff.NewFormatter().Format(cmp, []textdiff.Hunk{textdiff.NewHunk(1, 1, 1, 1)}, "expected", "actual")

		require.NoError(t, err)
		want := "--- a/expected\n+++ b/actual\n" +
			"@@ -1,3 +1,3 @@\n" +
			" a\n" +
			"-b\n" +
			"+x\n" +
			" c\n"
		assert.Equal(t, want, got)
	})

	t.Run("distant hunks get separate fragments", func(t *testing.T) {
		t.Parallel()

		expected := numbered(10)
		actual := numbered(10)
		actual[1], actual[8] = "X", "Y"
		hunks := []textdiff.Hunk{textdiff.NewHunk(1, 1, 1, 1), textdiff.NewHunk(8, 1, 8, 1)}

		got, err := (&gitdiff.Formatter{Context: 1}).Format(comparison(expected, actual), hunks, "e", "a")

		require.NoError(t, err)
		want := "--- a/e\n+++ b/a\n" +
			"@@ -1,3 +1,3 @@\n l1\n-l2\n+X\n l3\n" +
			"@@ -8,3 +8,3 @@\n l8\n-l9\n+Y\n l10\n"
		assert.Equal(t, want, got)
	})

	t.Run("close hunks share a fragment", func(t *testing.T) {
		t.Parallel()

		expected := numbered(10)
		actual := numbered(10)
		actual[1], actual[8] = "X", "Y"
		hunks := []textdiff.Hunk{textdiff.NewHunk(1, 1, 1, 1), textdiff.NewHunk(8, 1, 8, 1)}

		got, err := gitdiff.NewFormatter().Format(comparison(expected, actual), hunks, "e", "a")

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(got, "@@ -"))
		assert.Contains(t, got, "@@ -1,10 +1,10 @@\n")
	})

	t.Run("trailing add", func(t *testing.T) {
		t.Parallel()

		cmp := comparison([]string{"a", "b"}, []string{"a", "b", "c"})
		got, err := gitdiff.NewFormatter().Format(cmp, []textdiff.Hunk{textdiff.NewHunk(2, 0, 2, 1)}, "e", "a")

		require.NoError(t, err)
		assert.Equal(t, "--- a/e\n+++ b/a\n@@ -1,2 +1,3 @@\n a\n b\n+c\n", got)
	})

	t.Run("pure add without context names the preceding line", func(t *testing.T) {
		t.Parallel()

		cmp := comparison([]string{"a", "c"}, []string{"a", "b", "c"})
		got, err := (&gitdiff.Formatter{Context: 0}).Format(cmp, []textdiff.Hunk{textdiff.NewHunk(1, 0, 1, 1)}, "e", "a")

		require.NoError(t, err)
		assert.Equal(t, "--- a/e\n+++ b/a\n@@ -1,0 +2,1 @@\n+b\n", got)
	})
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		hunks, err := gitdiff.NewParser().Parse(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, hunks)
	})

	t.Run("git patch", func(t *testing.T) {
		t.Parallel()

		input := `diff --git a/out.txt b/out.txt
index 1234567..abcdefg 100644
--- a/out.txt
+++ b/out.txt
@@ -1,4 +1,4 @@
 alpha
-beta
+BETA
+gamma
 delta
-omega
`
		hunks, err := gitdiff.NewParser().Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, hunks, 2)
		assert.Equal(t, textdiff.NewHunk(1, 1, 1, 2), hunks[0])
		assert.Equal(t, textdiff.NewHunk(3, 1, 4, 0), hunks[1])
	})

	t.Run("more than one file", func(t *testing.T) {
		t.Parallel()

		input := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-a\n+b\n" +
			"--- a/y\n+++ b/y\n@@ -1 +1 @@\n-c\n+d\n"
		_, err := gitdiff.NewParser().Parse(strings.NewReader(input))

		assert.ErrorIs(t, err, gitdiff.ErrMultipleFiles)
	})

	t.Run("truncated fragment", func(t *testing.T) {
		t.Parallel()

		_, err := gitdiff.NewParser().Parse(strings.NewReader("--- a/x\n+++ b/x\n@@ -1,3 +1,3 @@\n a\n"))

		assert.Error(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		context int
		hunks   []textdiff.Hunk
	}{
		{"default context", gitdiff.DefaultContext, []textdiff.Hunk{textdiff.NewHunk(1, 1, 1, 2), textdiff.NewHunk(7, 2, 8, 0)}},
		{"no context", 0, []textdiff.Hunk{textdiff.NewHunk(0, 0, 0, 1), textdiff.NewHunk(4, 1, 5, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expected := numbered(10)
			actual := numbered(11)
			cmp := comparison(expected, actual)

			patch, err := (&gitdiff.Formatter{Context: tt.context}).Format(cmp, tt.hunks, "e", "a")
			require.NoError(t, err)

			got, err := gitdiff.NewParser().Parse(strings.NewReader(patch))
			require.NoError(t, err)
			assert.Equal(t, tt.hunks, got)
		})
	}
}
