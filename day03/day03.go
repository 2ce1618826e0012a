// Package day03 reads the gondola lift engine schematic.
package day03

import (
	"github.com/pkg/errors"

	"github.com/jpetrie/aoc2023"
)

// Number is a horizontal run of digits in the schematic.
type Number struct {
	Value int
	At    aoc.Pt // leftmost digit
	Len   int
}

type Schematic struct {
	grid    aoc.Grid
	Numbers []Number
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isSymbol(r rune) bool { return r != 0 && r != '.' && !isDigit(r) }

func Parse(input []byte) (*Schematic, error) {
	g, err := aoc.GridFromBytes(input)
	if err != nil {
		return nil, errors.Wrap(err, "parse schematic")
	}
	s := &Schematic{grid: g}
	minX, minY, maxX, maxY := g.Bounds()
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !isDigit(g.At(aoc.Pt{X: x, Y: y})) {
				continue
			}
			n := Number{At: aoc.Pt{X: x, Y: y}}
			for ; x <= maxX && isDigit(g.At(aoc.Pt{X: x, Y: y})); x++ {
				n.Value = n.Value*10 + aoc.DigVal(byte(g.At(aoc.Pt{X: x, Y: y})))
				n.Len++
			}
			s.Numbers = append(s.Numbers, n)
		}
	}
	return s, nil
}

// Symbols returns the positions of the symbols touching n, diagonals
// included. Each position appears once.
func (s *Schematic) Symbols(n Number) []aoc.Pt {
	seen := map[aoc.Pt]bool{}
	var out []aoc.Pt
	for i := 0; i < n.Len; i++ {
		p := aoc.Pt{X: n.At.X + i, Y: n.At.Y}
		p.ForNeighbors(func(q aoc.Pt) bool {
			if isSymbol(s.grid.At(q)) && !seen[q] {
				seen[q] = true
				out = append(out, q)
			}
			return true
		})
	}
	return out
}

// PartNumbers returns the numbers adjacent to at least one symbol.
func (s *Schematic) PartNumbers() []int {
	var parts []int
	for _, n := range s.Numbers {
		if len(s.Symbols(n)) > 0 {
			parts = append(parts, n.Value)
		}
	}
	return parts
}

// GearRatios returns, for every '*' touching exactly two numbers, the
// product of those numbers.
func (s *Schematic) GearRatios() []int {
	touching := map[aoc.Pt][]int{}
	var order []aoc.Pt
	for _, n := range s.Numbers {
		for _, p := range s.Symbols(n) {
			if s.grid.At(p) != '*' {
				continue
			}
			if _, ok := touching[p]; !ok {
				order = append(order, p)
			}
			touching[p] = append(touching[p], n.Value)
		}
	}
	var ratios []int
	for _, p := range order {
		if nums := touching[p]; len(nums) == 2 {
			ratios = append(ratios, nums[0]*nums[1])
		}
	}
	return ratios
}

func Part1(input []byte) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return aoc.Sum(s.PartNumbers()...), nil
}

func Part2(input []byte) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return aoc.Sum(s.GearRatios()...), nil
}
