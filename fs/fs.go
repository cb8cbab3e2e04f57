// Package fs provides file system access for the textdiff command.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/textdiff"
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "TEXTDIFF_CONFIG"

// DefaultConfigPath returns the default config file for textdiff.
// Uses TEXTDIFF_CONFIG if set, then XDG_CONFIG_HOME, otherwise falls back to
// ~/.config/textdiff, or the system temp directory if home is unavailable.
func DefaultConfigPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "textdiff", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "textdiff", "config.yaml")
	}
	return filepath.Join(home, ".config", "textdiff", "config.yaml")
}

// Compile-time interface verification.
var _ textdiff.TextSource = (*Source)(nil)

// Source reads comparison inputs from files, or from Stdin for "-".
type Source struct {
	Stdin io.Reader
}

// NewSource creates a Source reading "-" from stdin.
func NewSource(stdin io.Reader) *Source {
	return &Source{Stdin: stdin}
}

// ReadText returns the content of path.
func (s *Source) ReadText(path string) (string, error) {
	if path == "-" {
		if s.Stdin == nil {
			return "", fmt.Errorf("read stdin: %w", os.ErrInvalid)
		}
		data, err := io.ReadAll(s.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
