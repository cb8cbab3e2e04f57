// Command textdiff compares expected and actual program output.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/clipboard"
	"github.com/fwojciec/textdiff/compare"
	"github.com/fwojciec/textdiff/fs"
	"github.com/fwojciec/textdiff/git"
	"github.com/fwojciec/textdiff/gitdiff"
	"github.com/fwojciec/textdiff/jsonl"
	"github.com/fwojciec/textdiff/log"
	"golang.org/x/term"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log.InitLogger()

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	args := os.Args
	if len(args) <= 1 {
		args = append(args, "--help")
	}

	app := &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Source: fs.NewSource(os.Stdin),
		Differ: compare.NewDiffer(),
		NewFormatter: func(context int) textdiff.PatchFormatter {
			return &gitdiff.Formatter{Context: context}
		},
		Git:        git.NewRunner(),
		Clipboard:  clipboard.NewSystem(),
		Parser:     gitdiff.NewParser(),
		Loader:     jsonl.NewLoader(),
		NewSaver: func(stdout io.Writer, failuresOnly bool) textdiff.ResultSaver {
			return jsonl.NewSaver(stdout, failuresOnly)
		},
		ConfigPath: configPathFromArgs(args, fs.DefaultConfigPath()),
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
	log.Debugf("config path: %s", app.ConfigPath)

	if err := app.Command().Run(ctx, args); err != nil {
		if errors.Is(err, ErrDifferent) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.WithError(err).Debug("app run failed")
		return 2
	}
	return 0
}
