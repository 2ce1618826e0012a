package day06

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpetrie/aoc2023"
)

func bruteWays(r Race) int {
	n := 0
	for h := 0; h <= r.Time; h++ {
		if h*(r.Time-h) > r.Record {
			n++
		}
	}
	return n
}

func TestWays(t *testing.T) {
	tests := []struct {
		race Race
		want int
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9}, // holding 10 ties the record, which is not a win
		{Race{71530, 940200}, 71503},
		{Race{3, 2}, 0},
		{Race{4, 4}, 0},
		{Race{0, 0}, 0},
		{Race{1, 0}, 0},
		{Race{2, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.race), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.race.Ways())
		})
	}
}

func TestWaysLargeTimes(t *testing.T) {
	tests := []struct {
		race Race
		want int
	}{
		{Race{5_000_000_000, 0}, 4_999_999_999},
		{Race{5_000_000_000, 6_249_999_999_999_999_999}, 1},
		{Race{5_000_000_000, 6_250_000_000_000_000_000}, 0},
		{Race{9_000_000_000, 0}, 8_999_999_999},
		{Race{9_000_000_000, 9_000_000_000_000_000_000}, 6_708_203_933},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.race), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.race.Ways())
		})
	}
}

func TestWaysMatchesBruteForce(t *testing.T) {
	for tm := 0; tm < 60; tm++ {
		for d := 0; d < tm*tm/4+3; d++ {
			r := Race{tm, d}
			require.Equal(t, bruteWays(r), r.Ways(), "%+v", r)
		}
	}
}

func TestParse(t *testing.T) {
	in := []byte("Time:      7  15   30\nDistance:  9  40  200\n")
	races, err := Races(in)
	require.NoError(t, err)
	assert.Equal(t, []Race{{7, 9}, {15, 40}, {30, 200}}, races)

	r, err := OneRace(in)
	require.NoError(t, err)
	assert.Equal(t, Race{71530, 940200}, r)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"Time: 1 2\nDistance: 3\n",
		"Time: 1\n",
		"Distance: 1\nTime: 1\n",
		"Time: 1\nDistance: x\n",
	} {
		_, err := Races([]byte(in))
		assert.ErrorContains(t, err, "parse races", in)
	}
}

func TestSamples(t *testing.T) {
	s, ok := aoc.DefaultSamples().For(6, 1)
	require.True(t, ok)

	got, err := Part1([]byte(s.Input))
	require.NoError(t, err)
	assert.Equal(t, 288, got)

	got, err = Part2([]byte(s.Input))
	require.NoError(t, err)
	assert.Equal(t, 71503, got)
}
