package aoc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	one := func([]byte) (int, error) { return 1, nil }
	two := func([]byte) (int, error) { return 2, nil }
	r.Add(8, one, two)
	r.Add(3, one)

	assert.Equal(t, []int{3, 8}, r.Days())

	d, ok := r.Lookup(8)
	require.True(t, ok)
	p, ok := d.Part(2)
	require.True(t, ok)
	got, err := p(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, ok = d.Part(3)
	assert.False(t, ok)
	_, ok = d.Part(0)
	assert.False(t, ok)

	_, ok = r.Lookup(4)
	assert.False(t, ok)

	assert.Panics(t, func() { r.Add(3, one) })
	assert.Panics(t, func() { r.Add(5) })
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.input")
	require.NoError(t, os.WriteFile(path, []byte("abc\n"), 0o644))

	got, err := ReadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", string(got))

	_, err = ReadInput(filepath.Join(dir, "missing.input"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputNotFound))
	assert.Contains(t, err.Error(), "missing.input")
}

func TestLines(t *testing.T) {
	var got []string
	var ys []int
	err := Lines([]byte("a\nbb\n\nccc"), func(y int, line string) {
		ys = append(ys, y)
		got = append(got, line)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bb", "", "ccc"}, got)
	assert.Equal(t, []int{0, 1, 2, 3}, ys)
}

func TestMath(t *testing.T) {
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 7, GCD(7, 0))
	assert.Equal(t, 5, GCD(-5, 10))
	assert.Equal(t, 36, LCM(12, 18))
	assert.Equal(t, 6, LCM(2, 6))
	assert.Equal(t, int64(210), LCM[int64](2, 3, 5, 7))
	assert.Equal(t, int64(999985999949), LCM[int64](1000003, 999983))
	assert.Equal(t, 9, LCM(9))
	assert.Panics(t, func() { LCM[int]() })
	assert.Equal(t, 10, Sum(1, 2, 3, 4))
	assert.Equal(t, 0, Sum[int]())
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 7, DigVal('7'))
	assert.Panics(t, func() { DigVal('x') })
}

func TestGrid(t *testing.T) {
	g, err := GridFromBytes([]byte("ab\ncd\n"))
	require.NoError(t, err)
	assert.Equal(t, 'a', g.At(Pt{0, 0}))
	assert.Equal(t, 'd', g.At(Pt{1, 1}))
	assert.Equal(t, rune(0), g.At(Pt{5, 5}))

	minX, minY, maxX, maxY := g.Bounds()
	assert.Equal(t, [4]int{0, 0, 1, 1}, [4]int{minX, minY, maxX, maxY})

	var n int
	Pt{0, 0}.ForNeighbors(func(Pt) bool {
		n++
		return true
	})
	assert.Equal(t, 8, n)

	n = 0
	Pt{0, 0}.ForNeighbors(func(Pt) bool {
		n++
		return n < 3
	})
	assert.Equal(t, 3, n)
}

func TestGridLongLine(t *testing.T) {
	_, err := GridFromBytes(bytes.Repeat([]byte{'.'}, 1<<17))
	assert.ErrorContains(t, err, "reading grid")
}

func TestSamples(t *testing.T) {
	ss := DefaultSamples()
	for day := 1; day <= 8; day++ {
		for part := 1; part <= 2; part++ {
			s, ok := ss.For(day, part)
			require.True(t, ok, "day %d part %d", day, part)
			assert.Equal(t, day, s.Day)
			assert.NotEmpty(t, s.Input)
		}
	}
	assert.Len(t, ss.Day(8), 3)

	s, _ := ss.For(8, 2)
	want, ok := s.Want(2)
	require.True(t, ok)
	assert.Equal(t, 6, want)
	_, ok = s.Want(1)
	assert.False(t, ok)
}

func TestLoadSamplesErrors(t *testing.T) {
	_, err := LoadSamples([]byte("- day: 0\n  part1: 1\n  input: x\n"))
	assert.ErrorContains(t, err, "out of range")

	_, err = LoadSamples([]byte("- day: 3\n  input: x\n"))
	assert.ErrorContains(t, err, "no expected answer")

	_, err = LoadSamples([]byte("{not a list"))
	assert.ErrorContains(t, err, "decoding samples")
}
