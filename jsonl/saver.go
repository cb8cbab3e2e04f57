package jsonl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/textdiff"
)

// Compile-time interface verification.
var _ textdiff.ResultSaver = (*Saver)(nil)

// Saver writes batch results as JSON lines.
type Saver struct {
	// Stdout receives results saved to the path "-".
	Stdout io.Writer
	// FailuresOnly drops results that passed with valid hunks.
	FailuresOnly bool
}

// NewSaver creates a Saver writing "-" to stdout.
func NewSaver(stdout io.Writer, failuresOnly bool) *Saver {
	return &Saver{Stdout: stdout, FailuresOnly: failuresOnly}
}

// Save appends the selected results to path, one per line, and returns how
// many were written. Parent directories are created as needed. No file is
// created when nothing is selected.
func (s *Saver) Save(path string, results []textdiff.Result) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	n := 0
	for _, r := range results {
		if s.FailuresOnly && !r.Failed() {
			continue
		}
		if err := enc.Encode(r); err != nil {
			return 0, fmt.Errorf("result %q: %w", r.Name, err)
		}
		n++
	}
	if n == 0 {
		return 0, nil
	}

	if path == "-" {
		if s.Stdout == nil {
			return 0, fmt.Errorf("write stdout: %w", os.ErrInvalid)
		}
		_, err := s.Stdout.Write(buf.Bytes())
		return n, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return 0, err
	}
	return n, f.Close()
}
