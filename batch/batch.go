// Package batch compares many cases concurrently.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/log"
	"github.com/fwojciec/textdiff/render"
	"golang.org/x/sync/errgroup"
)

// Runner compares batch cases with a bounded number of workers.
type Runner struct {
	Differ  textdiff.Differ
	Workers int // defaults to GOMAXPROCS when zero or less
}

// NewRunner creates a Runner using differ.
func NewRunner(differ textdiff.Differ, workers int) *Runner {
	return &Runner{Differ: differ, Workers: workers}
}

// Summary totals the results of a run.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Invalid int    // results with hunk validation failures
	Bytes   uint64 // expected and actual text compared
}

// String returns a one-line description such as
// "1,204 cases: 1,200 passed, 4 failed, 0 invalid (3.2 MB compared)".
func (s Summary) String() string {
	return fmt.Sprintf("%s cases: %s passed, %s failed, %s invalid (%s compared)",
		humanize.Comma(int64(s.Total)),
		humanize.Comma(int64(s.Passed)),
		humanize.Comma(int64(s.Failed)),
		humanize.Comma(int64(s.Invalid)),
		humanize.Bytes(s.Bytes),
	)
}

// Run compares every case and returns results in input order. It stops at
// the first case with an unknown preset or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cases []textdiff.Case) ([]textdiff.Result, Summary, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log.Debugf("batch: %d cases, %d workers", len(cases), workers)

	// Collect results indexed by original position
	results := make([]textdiff.Result, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range cases {
		c := cases[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.compare(c)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	summary := summarize(cases, results)
	log.Infof("batch: %s", summary)
	return results, summary, nil
}

func (r *Runner) compare(c textdiff.Case) (textdiff.Result, error) {
	flags, err := c.EffectiveFlags()
	if err != nil {
		return textdiff.Result{}, err
	}

	cmp, hunks := r.Differ.Compare(textdiff.OrNull(c.Expected), textdiff.OrNull(c.Actual), flags)
	report := render.Report(cmp, hunks)

	res := textdiff.Result{
		Name:   c.Name,
		Pass:   textdiff.IsMatch(report),
		Hunks:  hunks,
		Report: report,
	}
	for _, v := range textdiff.ValidateHunks(hunks, len(cmp.Expected.Lines), len(cmp.Actual.Lines)) {
		res.Invalid = append(res.Invalid, v.Error())
	}
	if len(res.Invalid) > 0 {
		log.Warnf("case %q: %d invalid hunks: %s", c.Name, len(res.Invalid), res.Invalid[0])
	}
	return res, nil
}

func summarize(cases []textdiff.Case, results []textdiff.Result) Summary {
	s := Summary{Total: len(results)}
	for i, res := range results {
		if res.Pass {
			s.Passed++
		} else {
			s.Failed++
		}
		if len(res.Invalid) > 0 {
			s.Invalid++
		}
		s.Bytes += uint64(len(textdiff.OrNull(cases[i].Expected)) + len(textdiff.OrNull(cases[i].Actual)))
	}
	return s
}
