// Package day01 recovers trebuchet calibration values.
package day01

import (
	"strings"

	"github.com/jpetrie/aoc2023"
)

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func Part1(input []byte) (int, error) {
	return sum(input, false)
}

func Part2(input []byte) (int, error) {
	return sum(input, true)
}

func sum(input []byte, spelled bool) (int, error) {
	total := 0
	err := aoc.Lines(input, func(_ int, line string) {
		total += Calibration(line, spelled)
	})
	return total, err
}

// Calibration combines the first and last digit found in line into a
// two-digit number. With spelled set, "one" through "nine" count as
// digits too, and may overlap ("eightwo" is 8 then 2). A line with no
// digits is worth 0.
func Calibration(line string, spelled bool) int {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		return 0
	}
	return first*10 + last
}

func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return aoc.DigVal(c), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
