// Package lcs computes a longest-common-subsequence correspondence between
// two line sequences using threshold (patience) insertion.
package lcs

import (
	"sort"

	"github.com/fwojciec/textdiff"
)

// Compile-time interface verification.
var _ textdiff.Aligner = (*Engine)(nil)

// node is one link of a candidate chain. prev indexes the arena, -1 ends
// the chain.
type node struct {
	prev int
	i, j int
}

// chain is the threshold array plus the arena of links behind it.
// thresh[k] is the smallest right index ending a common subsequence of
// length k+1, and tails[k] is the arena index of that chain's last link.
type chain struct {
	thresh []int
	tails  []int
	nodes  []node
}

// insert places the pair (i, j) into the threshold array.
func (c *chain) insert(i, j int) {
	k := sort.SearchInts(c.thresh, j)
	if k < len(c.thresh) && c.thresh[k] == j {
		return
	}
	prev := -1
	if k > 0 {
		prev = c.tails[k-1]
	}
	c.nodes = append(c.nodes, node{prev: prev, i: i, j: j})
	n := len(c.nodes) - 1
	if k == len(c.thresh) {
		c.thresh = append(c.thresh, j)
		c.tails = append(c.tails, n)
		return
	}
	c.thresh[k] = j
	c.tails[k] = n
}

// walk calls fn for every link of the longest chain, last pair first.
func (c *chain) walk(fn func(i, j int)) {
	if len(c.tails) == 0 {
		return
	}
	for n := c.tails[len(c.tails)-1]; n >= 0; n = c.nodes[n].prev {
		fn(c.nodes[n].i, c.nodes[n].j)
	}
}

// Engine implements textdiff.Aligner. It holds no state and is safe for
// concurrent use.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Align matches lines of actual to lines of expected. Lines shared as a
// common prefix or suffix match directly; the window between them goes
// through threshold insertion, visiting each expected line's candidate
// positions from highest to lowest.
func (e *Engine) Align(expected, actual []string) textdiff.Correspondence {
	corr := textdiff.NewCorrespondence(len(actual))

	aStart, aEnd := 0, len(expected)-1
	bStart, bEnd := 0, len(actual)-1

	for aStart <= aEnd && bStart <= bEnd && expected[aStart] == actual[bStart] {
		corr[bStart] = aStart
		aStart++
		bStart++
	}
	for aStart <= aEnd && bStart <= bEnd && expected[aEnd] == actual[bEnd] {
		corr[bEnd] = aEnd
		aEnd--
		bEnd--
	}

	buckets := make(map[string][]int)
	for j := bStart; j <= bEnd; j++ {
		buckets[actual[j]] = append(buckets[actual[j]], j)
	}

	var c chain
	for i := aStart; i <= aEnd; i++ {
		positions := buckets[expected[i]]
		for k := len(positions) - 1; k >= 0; k-- {
			c.insert(i, positions[k])
		}
	}
	c.walk(func(i, j int) {
		corr[j] = i
	})

	return corr
}
