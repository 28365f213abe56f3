// Package config loads batch run files: which puzzles to solve, where their
// inputs live, and how the runner should behave.
//
//	log_level: info
//	workers: 4
//	puzzles:
//	  - {day: 16, part: 1, input: inputs/day16.txt}
//	  - {day: 16, part: 2, input: inputs/day16.txt}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoPuzzles indicates a batch with nothing to run.
	ErrNoPuzzles = errors.New("config: no puzzles listed")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("config: workers must be positive")

	// ErrBadPuzzle indicates a puzzle entry with an invalid day, part or input.
	ErrBadPuzzle = errors.New("config: invalid puzzle entry")

	// ErrBadLogLevel indicates an unrecognised log level name.
	ErrBadLogLevel = errors.New("config: invalid log level")
)

// Puzzle is one entry of the batch.
type Puzzle struct {
	Day   int    `yaml:"day"`
	Part  int    `yaml:"part"`
	Input string `yaml:"input"`
}

// Config is a batch run file.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Workers  int      `yaml:"workers"`
	Puzzles  []Puzzle `yaml:"puzzles"`
}

// Default returns a Config with info logging, one worker per CPU and no
// puzzles.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// Parse decodes YAML over the defaults. Unknown keys are rejected; an empty
// document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the file at path. Relative input paths are resolved
// against the directory holding the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	for i, p := range cfg.Puzzles {
		if p.Input != "" && !filepath.IsAbs(p.Input) {
			cfg.Puzzles[i].Input = filepath.Join(dir, p.Input)
		}
	}
	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, c.Workers)
	}
	if len(c.Puzzles) == 0 {
		return ErrNoPuzzles
	}
	for i, p := range c.Puzzles {
		switch {
		case p.Day < 1 || p.Day > 25:
			return fmt.Errorf("%w: #%d day %d", ErrBadPuzzle, i, p.Day)
		case p.Part != 1 && p.Part != 2:
			return fmt.Errorf("%w: #%d part %d", ErrBadPuzzle, i, p.Part)
		case p.Input == "":
			return fmt.Errorf("%w: #%d has no input", ErrBadPuzzle, i)
		}
	}
	return nil
}

// Level returns the configured zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}
	return lvl, nil
}
