// Package day08 navigates the haunted wasteland's node network.
package day08

import (
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/jpetrie/aoc2023"
)

type Node struct {
	ID    string `@Word "="`
	Left  string `"(" @Word ","`
	Right string `@Word ")"`
}

type mapFile struct {
	Instructions string  `@Word`
	Nodes        []*Node `@@+`
}

var mapLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[0-9A-Z]+`},
	{Name: "Punct", Pattern: `[=(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[mapFile](
	participle.Lexer(mapLexer),
	participle.Elide("Whitespace"),
)

const idLen = 3

// Network is the parsed map: a cyclic tape of L/R instructions and the
// nodes they steer between.
type Network struct {
	Instructions string
	Nodes        map[string]*Node
}

func Parse(input []byte) (*Network, error) {
	f, err := parser.ParseBytes("", input)
	if err != nil {
		return nil, errors.Wrap(err, "parse map")
	}
	if strings.Trim(f.Instructions, "LR") != "" {
		return nil, errors.Errorf("parse map: instructions %q: want only L and R", f.Instructions)
	}
	n := &Network{
		Instructions: f.Instructions,
		Nodes:        make(map[string]*Node, len(f.Nodes)),
	}
	for _, node := range f.Nodes {
		for _, id := range []string{node.ID, node.Left, node.Right} {
			if len(id) != idLen {
				return nil, errors.Errorf("parse map: node id %q: want %d characters", id, idLen)
			}
		}
		if _, dup := n.Nodes[node.ID]; dup {
			return nil, errors.Errorf("parse map: node %s defined twice", node.ID)
		}
		n.Nodes[node.ID] = node
	}
	for _, node := range f.Nodes {
		for _, id := range []string{node.Left, node.Right} {
			if _, ok := n.Nodes[id]; !ok {
				return nil, errors.Errorf("parse map: node %s points at undefined node %s", node.ID, id)
			}
		}
	}
	return n, nil
}

// Next returns the node reached from id by the instruction for step.
func (n *Network) Next(id string, step int) string {
	node := n.Nodes[id]
	if n.Instructions[step%len(n.Instructions)] == 'L' {
		return node.Left
	}
	return node.Right
}

// state is a walker's position: where it stands and where the tape is.
type state struct {
	id  string
	pos int
}

// Steps counts the steps from one node to another.
func (n *Network) Steps(from, to string) (int, error) {
	for _, id := range []string{from, to} {
		if _, ok := n.Nodes[id]; !ok {
			return 0, errors.Errorf("no node %s", id)
		}
	}
	seen := map[state]bool{}
	id, t := from, 0
	for ; id != to; t++ {
		st := state{id, t % len(n.Instructions)}
		if seen[st] {
			return 0, errors.Errorf("%s never reaches %s", from, to)
		}
		seen[st] = true
		id = n.Next(id, t)
	}
	return t, nil
}

// Cycle is a walker's path through the network. After Lead steps the
// walker enters a loop of Length steps and repeats it forever. Hits lists,
// in order, the steps in [0, Lead+Length) at which it is on a terminal node.
type Cycle struct {
	Lead   int
	Length int
	Hits   []int
}

// At reports whether the walker is on a terminal node at step t.
func (c Cycle) At(t int) bool {
	if t >= c.Lead {
		t = c.Lead + (t-c.Lead)%c.Length
	}
	_, ok := slices.BinarySearch(c.Hits, t)
	return ok
}

// loopHits returns the hits that fall inside the repeating loop.
func (c Cycle) loopHits() []int {
	i, _ := slices.BinarySearch(c.Hits, c.Lead)
	return c.Hits[i:]
}

// Walk follows the instructions from start until the walker returns to a
// state it has been in before.
func (n *Network) Walk(start string, terminal func(id string) bool) Cycle {
	seen := map[state]int{}
	var hits []int
	id := start
	for t := 0; ; t++ {
		st := state{id, t % len(n.Instructions)}
		if first, ok := seen[st]; ok {
			return Cycle{Lead: first, Length: t - first, Hits: hits}
		}
		seen[st] = t
		if terminal(id) {
			hits = append(hits, t)
		}
		id = n.Next(id, t)
	}
}

// ErrNeverAligned is returned by Align when the walkers are never all on
// terminal nodes at once.
var ErrNeverAligned = errors.New("walkers never align")

// Align returns the first step after the start at which every walker is
// on a terminal node.
func Align(cycles []Cycle) (int, error) {
	if len(cycles) == 0 {
		return 0, errors.New("no walkers")
	}
	lead := 1
	for _, c := range cycles {
		lead = max(lead, c.Lead)
	}

	// Before every walker is in its loop, just check each step.
	for t := 1; t < lead; t++ {
		if all(cycles, t) {
			return t, nil
		}
	}

	if t, ok := alignLCM(cycles); ok {
		return t, nil
	}
	return alignCRT(cycles, lead)
}

func all(cycles []Cycle, t int) bool {
	for _, c := range cycles {
		if !c.At(t) {
			return false
		}
	}
	return true
}

// alignLCM handles the usual shape of these maps: every walker hits a
// terminal exactly once per loop, at a step equal to the loop length. The
// walkers then meet at the least common multiple of the loop lengths.
func alignLCM(cycles []Cycle) (int, bool) {
	lengths := make([]int, len(cycles))
	for i, c := range cycles {
		h := c.loopHits()
		if len(h) != 1 || h[0] != c.Length {
			return 0, false
		}
		lengths[i] = c.Length
	}
	return aoc.LCM(lengths...), true
}

// residue is the set of t with t ≡ r (mod m).
type residue struct {
	r, m int
}

// alignCRT combines every walker's loop hits as congruences and returns
// the smallest solution at or after step lead.
func alignCRT(cycles []Cycle, lead int) (int, error) {
	sols := []residue{{0, 1}}
	for _, c := range cycles {
		var next []residue
		for _, s := range sols {
			for _, h := range c.loopHits() {
				if r, ok := combine(s, residue{h % c.Length, c.Length}); ok && !slices.Contains(next, r) {
					next = append(next, r)
				}
			}
		}
		if len(next) == 0 {
			return 0, ErrNeverAligned
		}
		sols = next
	}
	best := -1
	for _, s := range sols {
		t := s.r
		if t < lead {
			t += (lead - t + s.m - 1) / s.m * s.m
		}
		if best < 0 || t < best {
			best = t
		}
	}
	return best, nil
}

// combine solves t ≡ a.r (mod a.m), t ≡ b.r (mod b.m).
func combine(a, b residue) (residue, bool) {
	g := aoc.GCD(a.m, b.m)
	diff := b.r - a.r
	if diff%g != 0 {
		return residue{}, false
	}
	m := b.m / g
	k := mod(diff/g, m) * modInverse(mod(a.m/g, m), m) % m
	lcm := a.m * m
	return residue{mod(a.r+k*a.m, lcm), lcm}, true
}

func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

// modInverse returns x with a*x ≡ 1 (mod m), for coprime a and m.
func modInverse(a, m int) int {
	if m == 1 {
		return 0
	}
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	return mod(oldS, m)
}

func Part1(input []byte) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return n.Steps("AAA", "ZZZ")
}

// Part2 walks a ghost from every node ending in A until all of them stand
// on nodes ending in Z together.
func Part2(input []byte) (int, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var starts []string
	for id := range n.Nodes {
		if strings.HasSuffix(id, "A") {
			starts = append(starts, id)
		}
	}
	slices.Sort(starts)
	if len(starts) == 0 {
		return 0, errors.New("no nodes ending in A")
	}
	terminal := func(id string) bool { return strings.HasSuffix(id, "Z") }
	cycles := make([]Cycle, len(starts))
	for i, s := range starts {
		cycles[i] = n.Walk(s, terminal)
	}
	return Align(cycles)
}
