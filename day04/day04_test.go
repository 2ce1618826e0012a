package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpetrie/aoc2023"
)

func TestParse(t *testing.T) {
	cards, err := Parse([]byte("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53\nCard   2:  1 2 | 3\n"))
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, Card{ID: 1, Winning: []int{41, 48, 83, 86, 17}, Have: []int{83, 86, 6, 31, 17, 9, 48, 53}}, *cards[0])
	assert.Equal(t, Card{ID: 2, Winning: []int{1, 2}, Have: []int{3}}, *cards[1])
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"Card 1: 1 2 3",
		"Card 1: | 1",
		"Card 1 1 | 2",
		"Ticket 1: 1 | 2",
	} {
		_, err := Parse([]byte(in))
		assert.ErrorContains(t, err, "parse cards", in)
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		card Card
		want int
	}{
		{Card{Winning: []int{1}, Have: []int{2}}, 0},
		{Card{Winning: []int{1}, Have: []int{1}}, 1},
		{Card{Winning: []int{1, 2, 3, 4}, Have: []int{4, 3, 2, 1}}, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.card.Points())
	}
}

func TestCopiesStopAtLastCard(t *testing.T) {
	cards := []*Card{
		{Winning: []int{1, 2}, Have: []int{1, 2}},
		{Winning: []int{1, 2, 3}, Have: []int{1, 2, 3}},
	}
	assert.Equal(t, []int{1, 2}, Copies(cards))
}

func TestSamples(t *testing.T) {
	s, ok := aoc.DefaultSamples().For(4, 1)
	require.True(t, ok)

	cards, err := Parse([]byte(s.Input))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 14, 1}, Copies(cards))

	got, err := Part1([]byte(s.Input))
	require.NoError(t, err)
	assert.Equal(t, 13, got)

	got, err = Part2([]byte(s.Input))
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}
