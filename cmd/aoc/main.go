// Command aoc solves Advent of Code 2024 puzzles from input files.
//
//	aoc list
//	aoc solve --day 16 --part 1 input.txt
//	aoc solve --day 19 --part 2 - < input.txt
//	aoc batch --config batch.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wrightdylan/advent-of-code-2024/config"
	"github.com/wrightdylan/advent-of-code-2024/solver"
)

var errFailedPuzzles = errors.New("one or more puzzles failed")

// app holds state shared by the subcommands of one invocation.
type app struct {
	verbose bool
	level   zap.AtomicLevel
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Solve Advent of Code 2024 puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			a.level = cfg.Level
			var err error
			a.logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.listCmd(), a.solveCmd(), a.batchCmd())
	return root
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tPART\tTITLE")
			for _, p := range solver.Available() {
				fmt.Fprintf(w, "%d\t%d\t%s\n", p.Day, p.Part, p.Title)
			}
			return w.Flush()
		},
	}
}

func (a *app) solveCmd() *cobra.Command {
	var day, part int
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve one puzzle part",
		Long:  "Solve one puzzle part. The input is read from the named file, or from stdin when the file is '-' or omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			input, err := readInput(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}

			r, err := solver.NewRunner(solver.WithLogger(a.logger))
			if err != nil {
				return err
			}
			out := r.Solve(cmd.Context(), solver.Job{Day: day, Part: part, Input: input, Source: src})
			if out.Err != nil {
				return out.Err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Answer)
			return nil
		},
	}
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Puzzle day (required)")
	cmd.Flags().IntVarP(&part, "part", "p", 1, "Puzzle part")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve every puzzle listed in a YAML batch file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if !a.verbose {
				lvl, _ := cfg.Level()
				a.level.SetLevel(lvl)
			}

			jobs := make([]solver.Job, 0, len(cfg.Puzzles))
			for _, p := range cfg.Puzzles {
				input, err := readInput(nil, p.Input)
				if err != nil {
					return err
				}
				jobs = append(jobs, solver.Job{Day: p.Day, Part: p.Part, Input: input, Source: p.Input})
			}

			r, err := solver.NewRunner(solver.WithLogger(a.logger), solver.WithWorkers(cfg.Workers))
			if err != nil {
				return err
			}
			_, outcomes, err := r.Batch(cmd.Context(), jobs)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			failed := 0
			for _, o := range outcomes {
				answer := o.Answer
				if o.Err != nil {
					failed++
					answer = "error: " + o.Err.Error()
				}
				fmt.Fprintf(w, "day %d part %d\t%s\t%s\n", o.Job.Day, o.Job.Part, answer, o.Elapsed.Round(time.Microsecond))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errFailedPuzzles, failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Batch file (required)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// readInput reads src, or stdin when src is "-".
func readInput(stdin io.Reader, src string) (string, error) {
	if src == "-" {
		if stdin == nil {
			return "", errors.New("stdin is not available here")
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}

// run executes the command line args with the given streams.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
