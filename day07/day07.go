// Package day07 ranks Camel Cards hands.
package day07

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Ranks lists the card symbols from weakest to strongest.
const Ranks = "23456789TJQKA"

const handSize = 5

type HandType int

const (
	HighCard HandType = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (t HandType) String() string {
	switch t {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	}
	return "HandType(" + strconv.Itoa(int(t)) + ")"
}

// Cards is a hand's card symbols in dealt order.
type Cards string

func (c *Cards) Capture(values []string) error {
	s := values[0]
	if len(s) != handSize {
		return errors.Errorf("hand %q: want %d cards", s, handSize)
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Ranks, s[i]) < 0 {
			return errors.Errorf("hand %q: bad card %q", s, s[i])
		}
	}
	*c = Cards(s)
	return nil
}

type Bid int

func (b *Bid) Capture(values []string) error {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return errors.Errorf("bid %q is not a number", values[0])
	}
	*b = Bid(n)
	return nil
}

type Hand struct {
	Cards Cards `@Word`
	Bid   Bid   `@Word`
}

type table struct {
	Hands []*Hand `@@*`
}

// Hands and bids both lex as words: a hand may be all digits.
var handLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[0-9A-Za-z]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[table](
	participle.Lexer(handLexer),
	participle.Elide("Whitespace"),
)

func Parse(input []byte) ([]*Hand, error) {
	t, err := parser.ParseBytes("", input)
	if err != nil {
		return nil, errors.Wrap(err, "parse hands")
	}
	return t.Hands, nil
}

// strength orders a single card. With jokers, J is the weakest card.
func strength(c byte, jokers bool) int {
	if jokers && c == 'J' {
		return -1
	}
	return strings.IndexByte(Ranks, c)
}

// Type classifies the hand. With jokers, each J counts as whichever
// card gives the strongest type.
func (h *Hand) Type(jokers bool) HandType {
	var counts [len(Ranks)]int
	wild := 0
	for i := 0; i < len(h.Cards); i++ {
		c := h.Cards[i]
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[strings.IndexByte(Ranks, c)]++
	}
	slices.SortFunc(counts[:], func(a, b int) int { return b - a })
	first, second := counts[0]+wild, counts[1]
	switch {
	case first == 5:
		return FiveOfAKind
	case first == 4:
		return FourOfAKind
	case first == 3 && second == 2:
		return FullHouse
	case first == 3:
		return ThreeOfAKind
	case first == 2 && second == 2:
		return TwoPair
	case first == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by type, then card by card from the left.
func Compare(a, b *Hand, jokers bool) int {
	if c := cmp.Compare(a.Type(jokers), b.Type(jokers)); c != 0 {
		return c
	}
	for i := 0; i < handSize; i++ {
		if c := cmp.Compare(strength(a.Cards[i], jokers), strength(b.Cards[i], jokers)); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings ranks hands weakest first and sums bid times rank.
func Winnings(hands []*Hand, jokers bool) int {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, func(a, b *Hand) int { return Compare(a, b, jokers) })
	total := 0
	for i, h := range sorted {
		total += int(h.Bid) * (i + 1)
	}
	return total
}

func solve(input []byte, jokers bool) (int, error) {
	hands, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return Winnings(hands, jokers), nil
}

func Part1(input []byte) (int, error) { return solve(input, false) }

func Part2(input []byte) (int, error) { return solve(input, true) }
