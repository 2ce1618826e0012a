// Package metrics records run results for the node exporter's textfile
// collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aoc"

// Input labels.
const (
	InputSample = "sample"
	InputPuzzle = "puzzle"
)

// Sample check results.
const (
	ResultOK       = "ok"
	ResultMismatch = "mismatch"
	ResultError    = "error"
)

// Recorder collects the metrics of one run on a private registry.
type Recorder struct {
	reg      *prometheus.Registry
	duration *prometheus.GaugeVec
	answer   *prometheus.GaugeVec
	samples  *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Time taken by the last solve of a part.",
		}, []string{"day", "part", "input"}),
		answer: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "answer",
			Help:      "Last answer computed for a part on the puzzle input.",
		}, []string{"day", "part"}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_checks_total",
			Help:      "Sample checks by result.",
		}, []string{"day", "part", "result"}),
	}
	r.reg.MustRegister(r.duration, r.answer, r.samples)
	return r
}

func labels(day, part int) (string, string) {
	return strconv.Itoa(day), strconv.Itoa(part)
}

// Solved records one solve. The answer is kept only for the puzzle input.
func (r *Recorder) Solved(day, part int, input string, answer int, took time.Duration) {
	d, p := labels(day, part)
	r.duration.WithLabelValues(d, p, input).Set(took.Seconds())
	if input == InputPuzzle {
		r.answer.WithLabelValues(d, p).Set(float64(answer))
	}
}

func (r *Recorder) SampleChecked(day, part int, result string) {
	d, p := labels(day, part)
	r.samples.WithLabelValues(d, p, result).Inc()
}

// WriteFile atomically writes the metrics in text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, r.reg), "writing metrics to %s", path)
}
