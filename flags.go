package textdiff

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Flags is a bitmask of normalization and reporting options. Each bit
// enables one behavior independently.
type Flags uint32

// Flag bits.
const (
	IgnoreLeading      Flags = 0x1    // suppress a leading pure-Add hunk
	IgnoreTrailing     Flags = 0x2    // report trailing extra actual lines
	IgnoreWhitespace   Flags = 0x4    // strip whitespace per line before comparing
	IgnoreBlankLines   Flags = 0x8    // omit blank lines from report bodies
	IgnoreCase         Flags = 0x10   // case-fold before comparing
	IgnoreNumbers      Flags = 0x20   // collapse digit runs to a placeholder
	IgnoreNonNumbers   Flags = 0x40   // collapse non-digit runs to a space
	IgnorePunctuation  Flags = 0x80   // strip punctuation characters
	IgnoreAfterDecimal Flags = 0x100  // collapse fractional digits
	IgnoreCharOrder    Flags = 0x200  // sort characters within each line
	IgnoreLineOrder    Flags = 0x400  // sort lines within each sequence
	IgnoreEverything   Flags = 0x100000
)

// Presets.
const (
	FlagsDefault        Flags = 0
	FlagsDefaultLenient       = IgnoreTrailing | IgnoreWhitespace | IgnoreBlankLines | IgnoreCase | IgnorePunctuation
	FlagsDefaultStrict        = IgnoreTrailing | IgnoreBlankLines
)

// Errors returned when parsing flag and preset names.
var (
	ErrUnknownFlag   = errors.New("unknown flag")
	ErrUnknownPreset = errors.New("unknown preset")
)

// flagNames lists flags in bit order; String and ParseFlags both use it.
var flagNames = []struct {
	flag Flags
	name string
}{
	{IgnoreLeading, "leading"},
	{IgnoreTrailing, "trailing"},
	{IgnoreWhitespace, "whitespace"},
	{IgnoreBlankLines, "blank-lines"},
	{IgnoreCase, "case"},
	{IgnoreNumbers, "numbers"},
	{IgnoreNonNumbers, "nonnumbers"},
	{IgnorePunctuation, "punctuation"},
	{IgnoreAfterDecimal, "afterdecimal"},
	{IgnoreCharOrder, "charorder"},
	{IgnoreLineOrder, "lineorder"},
	{IgnoreEverything, "everything"},
}

// Has reports whether every bit of flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// String returns the set flag names joined by "|", or "none".
func (f Flags) String() string {
	var names []string
	rest := f
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseFlag returns the flag with the given name. Names are case-insensitive
// and may carry an "ignore-" or "ignore_" prefix.
func ParseFlag(name string) (Flags, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "ignore-")
	n = strings.TrimPrefix(n, "ignore_")
	n = strings.ReplaceAll(n, "_", "-")
	for _, fn := range flagNames {
		if fn.name == n {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
}

// ParseFlags combines a comma- or pipe-separated list of flag names.
func ParseFlags(list string) (Flags, error) {
	var flags Flags
	for _, part := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == '|' }) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFlag(part)
		if err != nil {
			return 0, err
		}
		flags |= f
	}
	return flags, nil
}

// ParsePreset returns the preset named "default", "lenient" or "strict".
// The empty name selects the default preset.
func ParsePreset(name string) (Flags, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return FlagsDefault, nil
	case "lenient":
		return FlagsDefaultLenient, nil
	case "strict":
		return FlagsDefaultStrict, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// UnmarshalJSON accepts either a numeric bitmask or a string of flag names
// as understood by ParseFlags.
func (f *Flags) UnmarshalJSON(data []byte) error {
	var names string
	if err := json.Unmarshal(data, &names); err == nil {
		flags, err := ParseFlags(names)
		if err != nil {
			return err
		}
		*f = flags
		return nil
	}
	var n uint32
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	*f = Flags(n)
	return nil
}
