// Package day04 scores scratchcards.
package day04

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/jpetrie/aoc2023"
)

type Pile struct {
	Cards []*Card `@@*`
}

type Card struct {
	ID      int   `"Card" @Int ":"`
	Winning []int `@Int+ "|"`
	Have    []int `@Int+`
}

var cardLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `[:|]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Pile](
	participle.Lexer(cardLexer),
	participle.Elide("Whitespace"),
)

func Parse(input []byte) ([]*Card, error) {
	p, err := parser.ParseBytes("", input)
	if err != nil {
		return nil, errors.Wrap(err, "parse cards")
	}
	return p.Cards, nil
}

// Matches returns how many of the numbers we have are winning numbers.
func (c *Card) Matches() int {
	win := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = true
	}
	n := 0
	for _, h := range c.Have {
		if win[h] {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for each one after.
func (c *Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// Copies plays out the copy rule: a card with n matches wins one copy of
// each of the next n cards, once per instance of it held. The result is
// the number of instances held of each card. Wins past the last card are
// dropped.
func Copies(cards []*Card) []int {
	held := make([]int, len(cards))
	for i := range held {
		held[i] = 1
	}
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			held[j] += held[i]
		}
	}
	return held
}

func Part1(input []byte) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return sum, nil
}

func Part2(input []byte) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return aoc.Sum(Copies(cards)...), nil
}
