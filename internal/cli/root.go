// Package cli is the aoc command line: it picks a day, checks the
// solvers against the puzzle examples and prints the answers.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jpetrie/aoc2023"
	"github.com/jpetrie/aoc2023/internal/config"
)

var validate = validator.New()

// Deps is what the command runs against.
type Deps struct {
	Registry *aoc.Registry
	Config   config.Config
	// Samples overrides the catalogue named by the config.
	Samples aoc.Samples
}

type options struct {
	Day         int `validate:"min=1,max=25"`
	Part        int `validate:"omitempty,oneof=1 2"`
	InputPath   string
	SampleOnly  bool `validate:"excluded_with=SkipSample"`
	SkipSample  bool
	Debug       bool
	MetricsFile string
}

// Execute runs the command against the days registered on aoc.Default.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	cmd := newRootCmd(Deps{Registry: aoc.Default, Config: cfg})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(deps Deps) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "aoc --day N [--input-path FILE]",
		Short:        "Advent of Code 2023 solutions",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Struct(opts); err != nil {
				return errors.Wrap(err, "invalid options")
			}
			day, ok := deps.Registry.Lookup(opts.Day)
			if !ok {
				return errors.Errorf("day %d is not registered (have %v)", opts.Day, deps.Registry.Days())
			}
			if opts.InputPath == "" {
				opts.InputPath = filepath.Join(deps.Config.InputDir, fmt.Sprintf("%d.input", opts.Day))
			}
			samples := deps.Samples
			if samples == nil {
				var err error
				if samples, err = loadSamples(deps.Config.SamplesFile); err != nil {
					return err
				}
			}
			r := newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, samples)
			return r.run(day)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Day, "day", "d", 0, "puzzle day to solve")
	f.IntVarP(&opts.Part, "part", "p", 0, "solve only this part (1 or 2)")
	f.StringVarP(&opts.InputPath, "input-path", "i", "", "puzzle input (default <input dir>/<day>.input)")
	f.BoolVar(&opts.SampleOnly, "sample-only", false, "check the puzzle examples and stop")
	f.BoolVar(&opts.SkipSample, "skip-sample", false, "do not check the puzzle examples")
	f.BoolVar(&opts.Debug, "debug", deps.Config.Debug, "verbose logging on stderr")
	f.StringVar(&opts.MetricsFile, "metrics-file", deps.Config.MetricsFile, "write prometheus metrics to this file")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}

func loadSamples(path string) (aoc.Samples, error) {
	if path == "" {
		return aoc.DefaultSamples(), nil
	}
	return aoc.LoadSamplesFile(path)
}
