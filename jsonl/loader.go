// Package jsonl provides JSONL file handling for batch cases and results.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/textdiff"
)

// Compile-time interface verification.
var _ textdiff.CaseLoader = (*Loader)(nil)

// ErrDuplicateCase is returned when two cases in a manifest share a name.
var ErrDuplicateCase = errors.New("duplicate case name")

// Loader loads Case records from JSONL files, one case per line.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// maxLineSize is the maximum size for a single JSONL line (4MB).
const maxLineSize = 4 * 1024 * 1024

// Load reads a JSONL file and returns all Case records. A case without a
// name is named after its line number. Names must be unique.
func (l *Loader) Load(path string) ([]textdiff.Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cases []textdiff.Case
	seen := make(map[string]int)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var c textdiff.Case
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("line-%d", lineNum)
		}
		if first, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("line %d: %w %q, first on line %d", lineNum, ErrDuplicateCase, c.Name, first)
		}
		seen[c.Name] = lineNum
		cases = append(cases, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cases, nil
}
