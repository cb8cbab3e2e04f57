package textdiff

import "fmt"

// Case is one named comparison in a batch manifest. A nil text compares as
// the literal "null".
type Case struct {
	Name     string  `json:"name"`
	Expected *string `json:"expected"`
	Actual   *string `json:"actual"`
	Flags    Flags   `json:"flags,omitempty"`
	Preset   string  `json:"preset,omitempty"`
}

// EffectiveFlags returns the case flags combined with its preset.
func (c Case) EffectiveFlags() (Flags, error) {
	preset, err := ParsePreset(c.Preset)
	if err != nil {
		return 0, fmt.Errorf("case %q: %w", c.Name, err)
	}
	return preset | c.Flags, nil
}

// Result is the outcome of comparing one Case.
type Result struct {
	Name    string   `json:"name"`
	Pass    bool     `json:"pass"`
	Hunks   []Hunk   `json:"hunks"`
	Report  string   `json:"report"`
	Invalid []string `json:"invalid,omitempty"` // hunk validation failures
}

// Failed reports whether the case differed or produced invalid hunks.
func (r Result) Failed() bool {
	return !r.Pass || len(r.Invalid) > 0
}

// CaseLoader loads batch cases from a source.
type CaseLoader interface {
	Load(path string) ([]Case, error)
}

// ResultSaver appends results to a destination.
type ResultSaver interface {
	// Save writes results to path and returns how many were written.
	Save(path string, results []Result) (int, error)
}
