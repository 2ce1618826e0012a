package aoc

import (
	_ "embed"
	"os"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var samplesYAML []byte

// Sample is a worked example from a puzzle statement.
// Part1 and Part2 are nil when the example gives no answer for that part.
type Sample struct {
	Day   int    `yaml:"day"`
	Part1 *int   `yaml:"part1,omitempty"`
	Part2 *int   `yaml:"part2,omitempty"`
	Input string `yaml:"input"`
}

// Want returns the expected answer for part, if the sample has one.
func (s Sample) Want(part int) (int, bool) {
	var w *int
	switch part {
	case 1:
		w = s.Part1
	case 2:
		w = s.Part2
	}
	if w == nil {
		return 0, false
	}
	return *w, true
}

type Samples []Sample

// For returns the first sample for day that declares an answer for part.
func (ss Samples) For(day, part int) (Sample, bool) {
	for _, s := range ss {
		if s.Day != day {
			continue
		}
		if _, ok := s.Want(part); ok {
			return s, true
		}
	}
	return Sample{}, false
}

// Day returns every sample for day, in file order.
func (ss Samples) Day(day int) Samples {
	var out Samples
	for _, s := range ss {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out
}

func LoadSamples(data []byte) (Samples, error) {
	var ss Samples
	if err := yaml.Unmarshal(data, &ss); err != nil {
		return nil, errors.Wrap(err, "decoding samples")
	}
	for i, s := range ss {
		if s.Day < 1 || s.Day > 25 {
			return nil, errors.Errorf("sample %d: day %d out of range", i, s.Day)
		}
		if s.Part1 == nil && s.Part2 == nil {
			return nil, errors.Errorf("sample %d (day %d): no expected answer", i, s.Day)
		}
	}
	return ss, nil
}

// LoadSamplesFile reads a sample catalogue from path.
func LoadSamplesFile(path string) (Samples, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading samples")
	}
	return LoadSamples(data)
}

var defaultSamples = sync.OnceValues(func() (Samples, error) {
	return LoadSamples(samplesYAML)
})

// DefaultSamples returns the catalogue embedded in the binary.
func DefaultSamples() Samples {
	return MustGet(defaultSamples())
}
