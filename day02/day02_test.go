package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpetrie/aoc2023"
)

func TestParse(t *testing.T) {
	games, err := Parse([]byte("Game 7: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green\n"))
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, 7, g.ID)
	require.Len(t, g.Reveals, 3)
	require.Len(t, g.Reveals[0].Draws, 2)
	assert.Equal(t, Draw{Count: 3, Colour: Blue}, *g.Reveals[0].Draws[0])
	assert.Equal(t, Draw{Count: 4, Colour: Red}, *g.Reveals[0].Draws[1])
	assert.Equal(t, Draw{Count: 2, Colour: Green}, *g.Reveals[2].Draws[0])
	assert.Equal(t, Counts{Red: 4, Green: 2, Blue: 6}, g.Fewest())
	assert.Equal(t, 48, g.Fewest().Power())
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"Game 1: 3 purple",
		"Game 1 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 blue;",
		"Round 1: 3 blue",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse([]byte(in))
			assert.ErrorContains(t, err, "parse games")
		})
	}
}

func TestPossibleWith(t *testing.T) {
	games, err := Parse([]byte("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green"))
	require.NoError(t, err)
	assert.False(t, games[0].PossibleWith(Bag))
	assert.True(t, games[0].PossibleWith(Counts{Red: 20, Green: 13, Blue: 6}))
}

func TestSamples(t *testing.T) {
	s, ok := aoc.DefaultSamples().For(2, 1)
	require.True(t, ok)

	got, err := Part1([]byte(s.Input))
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	got, err = Part2([]byte(s.Input))
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestEmptyInput(t *testing.T) {
	got, err := Part1(nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}
