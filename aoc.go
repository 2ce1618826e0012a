// Package aoc holds the shared plumbing for the 2023 Advent of Code
// solutions: the day registry, input helpers and a few small generic
// utilities the day packages lean on.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// PartFunc solves one half of a day's puzzle.
type PartFunc func(input []byte) (int, error)

// Day is a registered puzzle day. Parts[0] is part 1.
type Day struct {
	Number int
	Parts  []PartFunc
}

// Part returns the solver for part n (1-based).
func (d *Day) Part(n int) (PartFunc, bool) {
	if n < 1 || n > len(d.Parts) {
		return nil, false
	}
	return d.Parts[n-1], true
}

// Registry maps day numbers to their solvers.
type Registry struct {
	days map[int]*Day
}

func NewRegistry() *Registry {
	return &Registry{days: map[int]*Day{}}
}

// Add registers the parts for day. It panics if day was already added.
func (r *Registry) Add(day int, parts ...PartFunc) {
	if _, dup := r.days[day]; dup {
		panic(fmt.Sprintf("day %d registered twice", day))
	}
	if len(parts) == 0 {
		panic(fmt.Sprintf("day %d registered with no parts", day))
	}
	r.days[day] = &Day{Number: day, Parts: parts}
}

func (r *Registry) Lookup(day int) (*Day, bool) {
	d, ok := r.days[day]
	return d, ok
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := maps.Keys(r.days)
	slices.Sort(days)
	return days
}

// Default is the registry populated by cmd/aoc.
var Default = NewRegistry()

// Add registers day on the Default registry.
func Add(day int, parts ...PartFunc) {
	Default.Add(day, parts...)
}

// ErrInputNotFound is returned by ReadInput when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ReadInput returns the contents of the puzzle input at path.
func ReadInput(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(ErrInputNotFound, path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading input %s", path)
	}
	return b, nil
}

// Lines calls onLine for each line of input.
// The y value is the row number, starting with 0.
func Lines(input []byte, onLine func(y int, line string)) error {
	s := bufio.NewScanner(bytes.NewReader(input))
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	return s.Err()
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func DigVal(b byte) int {
	if b >= '0' && b <= '9' {
		return int(b - '0')
	}
	panic(fmt.Sprintf("bogus digit %q", string(b)))
}

func Sum[T constraints.Integer](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of nums. It panics on an empty list.
func LCM[T constraints.Integer](nums ...T) T {
	if len(nums) == 0 {
		panic("LCM of no numbers")
	}
	l := nums[0]
	for _, n := range nums[1:] {
		l = l / GCD(l, n) * n
	}
	return l
}

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

type Grid map[Pt]rune

// GridFromBytes builds a Grid from input, skipping whitespace.
func GridFromBytes(input []byte) (Grid, error) {
	g := Grid{}
	err := Lines(input, func(y int, line string) {
		for x, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			g[Pt{x, y}] = r
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading grid")
	}
	return g, nil
}

// At returns the rune at p, or 0 if p is off the grid.
func (g Grid) At(p Pt) rune {
	return g[p]
}

func (g Grid) Bounds() (minX, minY, maxX, maxY int) {
	n := 0
	for p := range g {
		if n == 0 {
			minX = p.X
			maxX = p.X
			minY = p.Y
			maxY = p.Y
		}
		n++
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return
}
