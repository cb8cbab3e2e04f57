package mock

import "github.com/fwojciec/textdiff"

// Compile-time interface verification.
var (
	_ textdiff.CaseLoader  = (*CaseLoader)(nil)
	_ textdiff.ResultSaver = (*ResultSaver)(nil)
)

// CaseLoader is a mock implementation of textdiff.CaseLoader.
type CaseLoader struct {
	LoadFn func(path string) ([]textdiff.Case, error)
}

func (l *CaseLoader) Load(path string) ([]textdiff.Case, error) {
	return l.LoadFn(path)
}

// ResultSaver is a mock implementation of textdiff.ResultSaver.
type ResultSaver struct {
	SaveFn func(path string, results []textdiff.Result) (int, error)
}

func (s *ResultSaver) Save(path string, results []textdiff.Result) (int, error) {
	return s.SaveFn(path, results)
}
