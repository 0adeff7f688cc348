package main

import (
	"aoc-2023/internal/almanac"
	"aoc-2023/internal/boatrace"
	"aoc-2023/internal/camelcards"
	"aoc-2023/internal/cubegame"
	"aoc-2023/internal/gearratio"
	"aoc-2023/internal/mirage"
	"aoc-2023/internal/puzzle"
	"aoc-2023/internal/scratchcards"
	"aoc-2023/internal/trebuchet"
	"aoc-2023/internal/wasteland"
)

// solvers maps every day to its solution.
var solvers = map[puzzle.Day]puzzle.Func{
	puzzle.Day1: trebuchet.Solve,
	puzzle.Day2: cubegame.Solve,
	puzzle.Day3: gearratio.Solve,
	puzzle.Day4: scratchcards.Solve,
	puzzle.Day5: almanac.Solve,
	puzzle.Day6: boatrace.Solve,
	puzzle.Day7: camelcards.Solve,
	puzzle.Day8: wasteland.Solve,
	puzzle.Day9: mirage.Solve,
}
