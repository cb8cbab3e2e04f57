// Package config loads textdiff's YAML configuration file.
//
// The file is optional. The command line reads the scalar keys directly
// from the file; this package decodes the named flag sets. Keys:
//
//	preset: lenient          # default | lenient | strict
//	ignore: [case, numbers]  # flag names, see textdiff.ParseFlag
//	width: 40                # side-by-side column width
//	color: auto              # auto | always | never
//	theme: dark              # dark | light
//	workers: 4               # batch concurrency
//	context: 3               # unified patch context lines
//	sets:                    # named flag lists, chosen with --set
//	  loose: [whitespace, case, punctuation]
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/textdiff"
	"github.com/fwojciec/textdiff/log"
	"gopkg.in/yaml.v3"
)

// ErrUnknownSet is returned when a named flag set is not defined.
var ErrUnknownSet = errors.New("unknown flag set")

// Config holds the named flag sets of the configuration file.
type Config struct {
	Sets map[string][]string `yaml:"sets"`

	// Source is the path the configuration was read from, or empty when no
	// file exists.
	Source string `yaml:"-"`
}

// Load reads the YAML file at path. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("no config file at %s", path)
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Source = path
	log.Debugf("using config file: %s", path)

	return &cfg, nil
}

// Set returns the flags of the named set. The empty name yields no flags.
func (c *Config) Set(name string) (textdiff.Flags, error) {
	if name == "" {
		return 0, nil
	}
	names, ok := c.Sets[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	return parseNames(names)
}

func parseNames(names []string) (textdiff.Flags, error) {
	var flags textdiff.Flags
	for _, name := range names {
		f, err := textdiff.ParseFlag(name)
		if err != nil {
			return 0, err
		}
		flags |= f
	}
	return flags, nil
}
