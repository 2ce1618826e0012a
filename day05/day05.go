// Package day05 follows seeds through the almanac's category maps.
package day05

import (
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type Category int

const (
	Seed Category = iota
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location
)

var categoryNames = [...]string{
	Seed:        "seed",
	Soil:        "soil",
	Fertilizer:  "fertilizer",
	Water:       "water",
	Light:       "light",
	Temperature: "temperature",
	Humidity:    "humidity",
	Location:    "location",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

func (c *Category) Capture(values []string) error {
	i := slices.Index(categoryNames[:], strings.ToLower(values[0]))
	if i < 0 {
		return errors.Errorf("unknown category %q", values[0])
	}
	*c = Category(i)
	return nil
}

type Almanac struct {
	Seeds []int          `"seeds" ":" @Int+`
	Maps  []*CategoryMap `@@+`
}

type CategoryMap struct {
	Source      Category `@Ident "-" "to" "-"`
	Destination Category `@Ident "map" ":"`
	Ranges      []*Range `@@+`
}

// Range maps [Source, Source+Len) onto [Dest, Dest+Len).
type Range struct {
	Dest   int `@Int`
	Source int `@Int`
	Len    int `@Int`
}

var almanacLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `[-:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Almanac](
	participle.Lexer(almanacLexer),
	participle.Elide("Whitespace"),
)

// Parse reads an almanac. It checks the grammar only; see Validate.
func Parse(input []byte) (*Almanac, error) {
	a, err := parser.ParseBytes("", input)
	if err != nil {
		return nil, errors.Wrap(err, "parse almanac")
	}
	return a, nil
}

// Validate checks that the maps chain from seed to location.
func (a *Almanac) Validate() error {
	want := Seed
	for _, m := range a.Maps {
		if m.Source != want {
			return errors.Errorf("%v-to-%v map: expected a map from %v", m.Source, m.Destination, want)
		}
		want = m.Destination
	}
	if want != Location {
		return errors.Errorf("maps end at %v, not location", want)
	}
	return nil
}

// Convert maps v through the first range containing it. Values no range
// covers map to themselves.
func (m *CategoryMap) Convert(v int) int {
	for _, r := range m.Ranges {
		if v >= r.Source && v < r.Source+r.Len {
			return r.Dest + v - r.Source
		}
	}
	return v
}

// Interval is the half-open span [Start, End).
type Interval struct {
	Start, End int
}

// ConvertIntervals maps every value in ivs, splitting intervals where
// they straddle range boundaries. The result is unordered.
func (m *CategoryMap) ConvertIntervals(ivs []Interval) []Interval {
	var out []Interval
	pending := slices.Clone(ivs)
	for _, r := range m.Ranges {
		var rest []Interval
		shift := r.Dest - r.Source
		srcEnd := r.Source + r.Len
		for _, iv := range pending {
			if end := min(iv.End, r.Source); iv.Start < end {
				rest = append(rest, Interval{iv.Start, end})
			}
			if lo, hi := max(iv.Start, r.Source), min(iv.End, srcEnd); lo < hi {
				out = append(out, Interval{lo + shift, hi + shift})
			}
			if start := max(iv.Start, srcEnd); start < iv.End {
				rest = append(rest, Interval{start, iv.End})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

// Location runs seed through every map.
func (a *Almanac) Location(seed int) int {
	v := seed
	for _, m := range a.Maps {
		v = m.Convert(v)
	}
	return v
}

func (a *Almanac) LowestLocation() int {
	lowest := -1
	for _, s := range a.Seeds {
		if loc := a.Location(s); lowest < 0 || loc < lowest {
			lowest = loc
		}
	}
	return lowest
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, errors.Errorf("seed ranges: odd number of values (%d)", len(a.Seeds))
	}
	ivs := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ivs = append(ivs, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	return ivs, nil
}

// LowestLocationOf returns the lowest location reachable from any seed
// in ivs, or -1 if ivs is empty.
func (a *Almanac) LowestLocationOf(ivs []Interval) int {
	for _, m := range a.Maps {
		ivs = m.ConvertIntervals(ivs)
	}
	lowest := -1
	for _, iv := range ivs {
		if iv.Start < iv.End && (lowest < 0 || iv.Start < lowest) {
			lowest = iv.Start
		}
	}
	return lowest
}

func load(input []byte) (*Almanac, error) {
	a, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "almanac")
	}
	return a, nil
}

func Part1(input []byte) (int, error) {
	a, err := load(input)
	if err != nil {
		return 0, err
	}
	return a.LowestLocation(), nil
}

func Part2(input []byte) (int, error) {
	a, err := load(input)
	if err != nil {
		return 0, err
	}
	ivs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.LowestLocationOf(ivs), nil
}
