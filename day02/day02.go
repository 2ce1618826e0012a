// Package day02 plays the cube conundrum: games of colored cubes drawn
// from a bag.
package day02

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type Colour int

const (
	Red Colour = iota
	Green
	Blue
	numColours
)

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

func (c *Colour) Capture(values []string) error {
	switch values[0] {
	case "red":
		*c = Red
	case "green":
		*c = Green
	case "blue":
		*c = Blue
	default:
		return errors.Errorf("unknown colour %q", values[0])
	}
	return nil
}

// Counts holds a number of cubes per colour, indexed by Colour.
type Counts [numColours]int

// Bag is the load the elf asks about in part 1.
var Bag = Counts{Red: 12, Green: 13, Blue: 14}

type Record struct {
	Games []*Game `@@*`
}

type Game struct {
	ID      int       `"Game" @Int ":"`
	Reveals []*Reveal `@@ (";" @@)*`
}

// Reveal is one handful shown from the bag.
type Reveal struct {
	Draws []*Draw `@@ ("," @@)*`
}

type Draw struct {
	Count  int    `@Int`
	Colour Colour `@Ident`
}

var gameLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `[:;,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Record](
	participle.Lexer(gameLexer),
	participle.Elide("Whitespace"),
)

func Parse(input []byte) ([]*Game, error) {
	rec, err := parser.ParseBytes("", input)
	if err != nil {
		return nil, errors.Wrap(err, "parse games")
	}
	return rec.Games, nil
}

// Fewest returns the fewest cubes of each colour that make g possible.
func (g *Game) Fewest() Counts {
	var c Counts
	for _, r := range g.Reveals {
		for _, d := range r.Draws {
			c[d.Colour] = max(c[d.Colour], d.Count)
		}
	}
	return c
}

// PossibleWith reports whether every reveal in g fits in bag.
func (g *Game) PossibleWith(bag Counts) bool {
	need := g.Fewest()
	for c := range need {
		if need[c] > bag[c] {
			return false
		}
	}
	return true
}

func (c Counts) Power() int {
	return c[Red] * c[Green] * c[Blue]
}

func Part1(input []byte) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		if g.PossibleWith(Bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

func Part2(input []byte) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range games {
		sum += g.Fewest().Power()
	}
	return sum, nil
}
