package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/jpetrie/aoc2023"
	"github.com/jpetrie/aoc2023/internal/logger"
	"github.com/jpetrie/aoc2023/internal/metrics"
)

type runner struct {
	out     io.Writer
	styled  bool
	log     zerolog.Logger
	opts    options
	samples aoc.Samples
	metrics *metrics.Recorder
}

func newRunner(out, errOut io.Writer, opts options, samples aoc.Samples) *runner {
	return &runner{
		out:     out,
		styled:  logger.IsTerminal(out),
		log:     logger.New(errOut, logger.Level(opts.Debug)).With().Int("day", opts.Day).Logger(),
		opts:    opts,
		samples: samples,
		metrics: metrics.New(),
	}
}

func (r *runner) run(day *aoc.Day) (err error) {
	if r.opts.MetricsFile != "" {
		// Failed checks are recorded too, so write on every return.
		defer func() {
			err = stderrors.Join(err, r.metrics.WriteFile(r.opts.MetricsFile))
		}()
	}

	parts := []int{r.opts.Part}
	if r.opts.Part == 0 {
		parts = parts[:0]
		for p := range day.Parts {
			parts = append(parts, p+1)
		}
	}

	var input []byte
	if !r.opts.SampleOnly {
		r.log.Debug().Str("path", r.opts.InputPath).Msg("reading input")
		if input, err = aoc.ReadInput(r.opts.InputPath); err != nil {
			return err
		}
	}

	for _, p := range parts {
		solve, ok := day.Part(p)
		if !ok {
			return errors.Errorf("day %d has no part %d", day.Number, p)
		}
		if !r.opts.SkipSample {
			if err := r.checkSamples(day.Number, p, solve); err != nil {
				return err
			}
		}
		if r.opts.SampleOnly {
			continue
		}
		got, took, err := timed(solve, input)
		if err != nil {
			return errors.Wrapf(err, "day %d part %d", day.Number, p)
		}
		r.metrics.Solved(day.Number, p, metrics.InputPuzzle, got, took)
		r.log.Info().Int("part", p).Dur("took", took).Msg("solved")
		fmt.Fprintln(r.out, render(p, got, took, r.styled))
	}
	return nil
}

// checkSamples runs solve over every example for the part that states an
// answer and fails on the first wrong one.
func (r *runner) checkSamples(day, part int, solve aoc.PartFunc) error {
	log := r.log.With().Int("part", part).Logger()
	checked := 0
	for i, s := range r.samples.Day(day) {
		want, ok := s.Want(part)
		if !ok {
			continue
		}
		checked++
		got, took, err := timed(solve, []byte(s.Input))
		if err != nil {
			r.metrics.SampleChecked(day, part, metrics.ResultError)
			return errors.Wrapf(err, "day %d part %d sample %d", day, part, i+1)
		}
		r.metrics.Solved(day, part, metrics.InputSample, got, took)
		if got != want {
			r.metrics.SampleChecked(day, part, metrics.ResultMismatch)
			log.Error().Int("sample", i+1).Int("got", got).Int("want", want).Msg("sample mismatch")
			return errors.Errorf("day %d part %d sample %d: got %d, want %d", day, part, i+1, got, want)
		}
		r.metrics.SampleChecked(day, part, metrics.ResultOK)
		log.Debug().Int("sample", i+1).Int("answer", got).Msg("sample ok")
	}
	if checked == 0 {
		log.Warn().Msg("no sample to check")
	}
	return nil
}

// timed calls solve, turning a panic into an error.
func timed(solve aoc.PartFunc, input []byte) (answer int, took time.Duration, err error) {
	start := time.Now()
	defer func() {
		took = time.Since(start)
		if e := recover(); e != nil {
			err = errors.Errorf("panic: %v", e)
		}
	}()
	answer, err = solve(input)
	return
}

var (
	labelStyle  = lipgloss.NewStyle().Faint(true)
	answerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// render formats one answer. Plain output is just the number.
func render(part, answer int, took time.Duration, styled bool) string {
	if !styled {
		return strconv.Itoa(answer)
	}
	return fmt.Sprintf("%s %s  %s",
		labelStyle.Render(fmt.Sprintf("part %d:", part)),
		answerStyle.Render(strconv.Itoa(answer)),
		labelStyle.Render("("+took.Round(time.Microsecond).String()+")"))
}
