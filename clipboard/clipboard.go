// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/textdiff"
)

// ErrUnavailable is returned when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command available")

// Ensure Command implements the Clipboard interface.
var _ textdiff.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content into an external program.
type Command struct {
	Name string
	Args []string
}

// candidates are tried in order by NewSystem.
var candidates = []Command{
	{Name: "pbcopy"},
	{Name: "wl-copy"},
	{Name: "xclip", Args: []string{"-selection", "clipboard"}},
	{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	{Name: "clip.exe"},
}

// NewSystem returns the first clipboard command found on PATH. When none is
// installed, Copy fails with ErrUnavailable.
func NewSystem() *Command {
	for _, c := range candidates {
		if _, err := exec.LookPath(c.Name); err == nil {
			return &c
		}
	}
	return &Command{}
}

// Copy writes content to the standard input of the clipboard command.
func (c *Command) Copy(content string) error {
	if c.Name == "" {
		return ErrUnavailable
	}
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(content)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return nil
}
