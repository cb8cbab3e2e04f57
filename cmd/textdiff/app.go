package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/batch"
	"github.com/fwojciec/textdiff/config"
	"github.com/fwojciec/textdiff/lipgloss"
	"github.com/fwojciec/textdiff/log"
	"github.com/fwojciec/textdiff/worddiff"
	"github.com/muesli/termenv"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// Errors returned by commands. ErrDifferent maps to exit status 1.
var (
	ErrDifferent   = errors.New("texts differ")
	ErrMissingArgs = errors.New("missing arguments")
)

// App encapsulates the application logic for testing.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	Source       textdiff.TextSource
	Differ       textdiff.Differ
	NewFormatter func(context int) textdiff.PatchFormatter
	Git          textdiff.GitRunner
	Clipboard    textdiff.Clipboard
	Parser       textdiff.PatchParser
	Loader       textdiff.CaseLoader
	NewSaver     func(stdout io.Writer, failuresOnly bool) textdiff.ResultSaver

	// ConfigPath is the YAML file scalar flags fall back to.
	ConfigPath string
	// IsTerminal reports whether Stdout is a terminal, for --color auto.
	IsTerminal func() bool
}

// Command builds the command tree. Flag values come from the command line,
// then TEXTDIFF_* environment variables, then the config file.
func (a *App) Command() *cli.Command {
	return &cli.Command{
		Name:      "textdiff",
		Usage:     "compare expected and actual program output",
		UsageText: "textdiff <command> [options] EXPECTED ACTUAL",
		Writer:    a.Stdout,
		ErrWriter: a.Stderr,
		Flags:     a.globalFlags(),
		Commands: []*cli.Command{
			{
				Name:      "diff",
				Usage:     "print a report of differing lines",
				ArgsUsage: "EXPECTED ACTUAL",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "copy", Usage: "copy the report to the clipboard"},
					&cli.StringFlag{Name: "rev", Usage: "read EXPECTED from this git revision"},
					&cli.StringFlag{Name: "repo", Usage: "git repository for --rev", Value: "."},
				},
				Action: a.runDiff,
			},
			{
				Name:      "list",
				Usage:     "print the differing hunks",
				ArgsUsage: "EXPECTED ACTUAL | --patch PATCH",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print hunks as JSON"},
					&cli.BoolFlag{Name: "patch", Usage: "read hunks from a unified patch instead of comparing"},
				},
				Action: a.runList,
			},
			{
				Name:      "side",
				Usage:     "print both texts side by side",
				ArgsUsage: "EXPECTED ACTUAL",
				Flags: []cli.Flag{
					a.fromConfig(&cli.IntFlag{
						Name:    "width",
						Usage:   "expected column width, 0 for the widest expected line",
						Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_WIDTH")),
					}),
				},
				Action: a.runSide,
			},
			{
				Name:      "unified",
				Usage:     "print a unified patch",
				ArgsUsage: "EXPECTED ACTUAL",
				Flags: []cli.Flag{
					a.fromConfig(&cli.IntFlag{
						Name:    "context",
						Usage:   "lines of context around each change",
						Value:   3,
						Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_CONTEXT")),
					}),
				},
				Action: a.runUnified,
			},
			{
				Name:      "check",
				Usage:     "exit with status 1 when the texts differ",
				ArgsUsage: "EXPECTED ACTUAL",
				Action:    a.runCheck,
			},
			{
				Name:      "batch",
				Usage:     "compare every case of a JSONL manifest",
				ArgsUsage: "MANIFEST",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Usage: "append results to this JSONL file, - for stdout", Value: "-"},
					&cli.BoolFlag{Name: "failures", Usage: "write only failed or invalid results"},
					a.fromConfig(&cli.IntFlag{
						Name:    "workers",
						Usage:   "concurrent comparisons, 0 for one per CPU",
						Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_WORKERS")),
					}),
				},
				Action: a.runBatch,
			},
		},
	}
}

func (a *App) globalFlags() []cli.Flag {
	return []cli.Flag{
		a.fromConfig(&cli.StringFlag{
			Name:    "ignore",
			Aliases: []string{"i"},
			Usage:   "comma-separated flags to ignore, e.g. case,whitespace",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_IGNORE")),
		}),
		a.fromConfig(&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"p"},
			Usage:   "flag preset: default, lenient or strict",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_PRESET")),
		}),
		&cli.StringFlag{
			Name:    "set",
			Usage:   "named flag set from the config file",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_SET")),
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "config file",
			Value: a.ConfigPath,
		},
		a.fromConfig(&cli.StringFlag{
			Name:    "color",
			Usage:   "colorize output: auto, always or never",
			Value:   "auto",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_COLOR")),
			Validator: func(v string) error {
				switch v {
				case "auto", "always", "never":
					return nil
				}
				return fmt.Errorf("invalid color %q", v)
			},
		}),
		a.fromConfig(&cli.StringFlag{
			Name:    "theme",
			Usage:   "color theme: dark or light",
			Value:   "dark",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TEXTDIFF_THEME")),
		}),
	}
}

// fromConfig appends the config file as the last source of flag.
func (a *App) fromConfig(flag cli.Flag) cli.Flag {
	switch f := flag.(type) {
	case *cli.StringFlag:
		f.Sources.Chain = append(f.Sources.Chain, yaml.YAML(f.Name, altsrc.StringSourcer(a.ConfigPath)))
	case *cli.IntFlag:
		f.Sources.Chain = append(f.Sources.Chain, yaml.YAML(f.Name, altsrc.StringSourcer(a.ConfigPath)))
	}
	return flag
}

// pair reads the two texts named by the command arguments.
func (a *App) pair(cmd *cli.Command) (expected, actual string, err error) {
	if cmd.Args().Len() < 2 {
		return "", "", fmt.Errorf("%w: want EXPECTED ACTUAL, got %d", ErrMissingArgs, cmd.Args().Len())
	}
	if expected, err = a.Source.ReadText(cmd.Args().Get(0)); err != nil {
		return "", "", err
	}
	if actual, err = a.Source.ReadText(cmd.Args().Get(1)); err != nil {
		return "", "", err
	}
	return expected, actual, nil
}

// revPair reads EXPECTED from the git revision only, so the path need not
// exist in the working tree.
func (a *App) revPair(ctx context.Context, cmd *cli.Command, rev string) (expected, actual string, err error) {
	if cmd.Args().Len() < 2 {
		return "", "", fmt.Errorf("%w: want EXPECTED ACTUAL, got %d", ErrMissingArgs, cmd.Args().Len())
	}
	if expected, err = a.Git.ShowFile(ctx, cmd.String("repo"), rev, cmd.Args().Get(0)); err != nil {
		return "", "", err
	}
	if actual, err = a.Source.ReadText(cmd.Args().Get(1)); err != nil {
		return "", "", err
	}
	return expected, actual, nil
}

// flags resolves --preset, --ignore and --set into a flag mask.
func (a *App) flags(cmd *cli.Command) (textdiff.Flags, error) {
	preset, err := textdiff.ParsePreset(cmd.String("preset"))
	if err != nil {
		return 0, err
	}
	ignore, err := textdiff.ParseFlags(cmd.String("ignore"))
	if err != nil {
		return 0, err
	}
	var set textdiff.Flags
	if name := cmd.String("set"); name != "" {
		cfg, err := config.Load(cmd.String("config"))
		if err != nil {
			return 0, err
		}
		if set, err = cfg.Set(name); err != nil {
			return 0, err
		}
	}
	flags := preset | ignore | set
	log.Debugf("flags: %s", flags)
	return flags, nil
}

// colorizer returns nil when output should stay plain.
func (a *App) colorizer(cmd *cli.Command) *lipgloss.Colorizer {
	r := lg.NewRenderer(a.Stdout)
	switch cmd.String("color") {
	case "never":
		return nil
	case "always":
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.TrueColor)
		}
	default:
		if a.IsTerminal == nil || !a.IsTerminal() {
			return nil
		}
	}
	return lipgloss.NewColorizer(lipgloss.ThemeByName(cmd.String("theme")),
		lipgloss.WithRenderer(r),
		lipgloss.WithWordDiffer(worddiff.NewDiffer()),
	)
}

func (a *App) runDiff(ctx context.Context, cmd *cli.Command) error {
	var expected, actual string
	var err error
	if rev := cmd.String("rev"); rev != "" {
		expected, actual, err = a.revPair(ctx, cmd, rev)
	} else {
		expected, actual, err = a.pair(cmd)
	}
	if err != nil {
		return err
	}
	flags, err := a.flags(cmd)
	if err != nil {
		return err
	}

	report := a.Differ.Diff(expected, actual, flags)
	if cmd.Bool("copy") {
		if err := a.Clipboard.Copy(report); err != nil {
			return fmt.Errorf("copy: %w", err)
		}
	}
	if c := a.colorizer(cmd); c != nil {
		report = c.Report(report)
	}
	_, err = fmt.Fprintln(a.Stdout, report)
	return err
}

func (a *App) runList(_ context.Context, cmd *cli.Command) error {
	var hunks []textdiff.Hunk
	if cmd.Bool("patch") {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf("%w: want PATCH", ErrMissingArgs)
		}
		patch, err := a.Source.ReadText(cmd.Args().Get(0))
		if err != nil {
			return err
		}
		if hunks, err = a.Parser.Parse(strings.NewReader(patch)); err != nil {
			return fmt.Errorf("parse %s: %w", cmd.Args().Get(0), err)
		}
	} else {
		expected, actual, err := a.pair(cmd)
		if err != nil {
			return err
		}
		flags, err := a.flags(cmd)
		if err != nil {
			return err
		}
		hunks = a.Differ.DiffAsList(expected, actual, flags)
	}

	if cmd.Bool("json") {
		if hunks == nil {
			hunks = []textdiff.Hunk{}
		}
		enc := json.NewEncoder(a.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hunks)
	}
	for _, h := range hunks {
		if _, err := fmt.Fprintln(a.Stdout, h); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runSide(_ context.Context, cmd *cli.Command) error {
	expected, actual, err := a.pair(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(a.Stdout, a.Differ.SideBySide(expected, actual, cmd.Int("width")))
	return err
}

func (a *App) runUnified(_ context.Context, cmd *cli.Command) error {
	expected, actual, err := a.pair(cmd)
	if err != nil {
		return err
	}
	flags, err := a.flags(cmd)
	if err != nil {
		return err
	}

	cmp, hunks := a.Differ.Compare(expected, actual, flags)
	patch, err := a.NewFormatter(cmd.Int("context")).Format(cmp, hunks, cmd.Args().Get(0), cmd.Args().Get(1))
	if err != nil {
		return err
	}
	if c := a.colorizer(cmd); c != nil {
		patch = c.Unified(patch)
	}
	_, err = fmt.Fprint(a.Stdout, patch)
	return err
}

func (a *App) runCheck(_ context.Context, cmd *cli.Command) error {
	expected, actual, err := a.pair(cmd)
	if err != nil {
		return err
	}
	flags, err := a.flags(cmd)
	if err != nil {
		return err
	}

	if a.Differ.Pass(expected, actual, flags) {
		return nil
	}
	return ErrDifferent
}

func (a *App) runBatch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("%w: want MANIFEST", ErrMissingArgs)
	}
	cases, err := a.Loader.Load(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	log.Debugf("loaded %d cases from %s", len(cases), cmd.Args().Get(0))

	results, summary, err := batch.NewRunner(a.Differ, cmd.Int("workers")).Run(ctx, cases)
	if err != nil {
		return err
	}

	out := cmd.String("out")
	n, err := a.NewSaver(a.Stdout, cmd.Bool("failures")).Save(out, results)
	if err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	log.Debugf("wrote %d of %d results to %s", n, len(results), out)

	fmt.Fprintln(a.Stderr, summary)
	if summary.Failed > 0 {
		return ErrDifferent
	}
	return nil
}

// configPathFromArgs returns the value of a --config argument, or fallback.
func configPathFromArgs(args []string, fallback string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return fallback
}
