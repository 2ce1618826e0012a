// Package day06 counts the ways to win the toy boat races.
package day06

import (
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// sheet keeps the numbers as written; part 2 reads them with the spaces
// taken out.
type sheet struct {
	Times     []string `"Time" ":" @Int+`
	Distances []string `"Distance" ":" @Int+`
}

var sheetLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[sheet](
	participle.Lexer(sheetLexer),
	participle.Elide("Whitespace"),
)

type Race struct {
	Time   int // ms
	Record int // mm
}

func parse(input []byte) (*sheet, error) {
	s, err := parser.ParseBytes("", input)
	if err != nil {
		return nil, errors.Wrap(err, "parse races")
	}
	if len(s.Times) != len(s.Distances) {
		return nil, errors.Errorf("parse races: %d times but %d distances", len(s.Times), len(s.Distances))
	}
	return s, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	return n, errors.Wrapf(err, "race value %q", s)
}

// Races reads each column of the sheet as its own race.
func Races(input []byte) ([]Race, error) {
	s, err := parse(input)
	if err != nil {
		return nil, err
	}
	races := make([]Race, len(s.Times))
	for i := range races {
		if races[i].Time, err = atoi(s.Times[i]); err != nil {
			return nil, err
		}
		if races[i].Record, err = atoi(s.Distances[i]); err != nil {
			return nil, err
		}
	}
	return races, nil
}

// OneRace reads the sheet as a single race, ignoring the spaces between
// digits.
func OneRace(input []byte) (Race, error) {
	s, err := parse(input)
	if err != nil {
		return Race{}, err
	}
	var r Race
	if r.Time, err = atoi(strings.Join(s.Times, "")); err != nil {
		return Race{}, err
	}
	if r.Record, err = atoi(strings.Join(s.Distances, "")); err != nil {
		return Race{}, err
	}
	return r, nil
}

// beats reports whether holding for h of t ms goes further than d.
// The product is taken in 128 bits.
func beats(h, t, d int) bool {
	hi, lo := bits.Mul64(uint64(h), uint64(t-h))
	return hi > 0 || lo > uint64(d)
}

// Ways counts the button hold times h in [0, Time] that travel strictly
// further than the record: h*(Time-h) > Record.
func (r Race) Ways() int {
	t, d := r.Time, r.Record
	if t < 0 || d < 0 {
		return 0
	}
	// The distance rises up to t/2 and is symmetric about it, so the
	// winning holds are [lo, t-lo] for the shortest winning hold lo.
	half := t / 2
	lo := sort.Search(half+1, func(h int) bool { return beats(h, t, d) })
	if lo > half {
		return 0
	}
	return t - 2*lo + 1
}

func Part1(input []byte) (int, error) {
	races, err := Races(input)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.Ways()
	}
	return product, nil
}

func Part2(input []byte) (int, error) {
	r, err := OneRace(input)
	if err != nil {
		return 0, err
	}
	return r.Ways(), nil
}
