// Command aoc solves an Advent of Code 2023 puzzle:
//
//	aoc --day 5 --input-path inputs/5.input
package main

import (
	"github.com/jpetrie/aoc2023"
	"github.com/jpetrie/aoc2023/day01"
	"github.com/jpetrie/aoc2023/day02"
	"github.com/jpetrie/aoc2023/day03"
	"github.com/jpetrie/aoc2023/day04"
	"github.com/jpetrie/aoc2023/day05"
	"github.com/jpetrie/aoc2023/day06"
	"github.com/jpetrie/aoc2023/day07"
	"github.com/jpetrie/aoc2023/day08"
	"github.com/jpetrie/aoc2023/internal/cli"
)

func main() {
	aoc.Add(1, day01.Part1, day01.Part2)
	aoc.Add(2, day02.Part1, day02.Part2)
	aoc.Add(3, day03.Part1, day03.Part2)
	aoc.Add(4, day04.Part1, day04.Part2)
	aoc.Add(5, day05.Part1, day05.Part2)
	aoc.Add(6, day06.Part1, day06.Part2)
	aoc.Add(7, day07.Part1, day07.Part2)
	aoc.Add(8, day08.Part1, day08.Part2)
	cli.Execute()
}
