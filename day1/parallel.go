package day1

import (
	aoc "github.com/internet-diglett/aoc2023"
)

// The parallel variants split the line list across a fixed worker
// pool. Lines are independent here, so the only shared step is the
// final sum; a failing line fails the whole solve, though which error
// surfaces first is not guaranteed.

// SolvePartOneParallel is SolvePartOne over a worker pool.
// workers <= 0 means GOMAXPROCS.
func SolvePartOneParallel(text string, workers int) (uint64, error) {
	return aoc.ParallelMapSum(aoc.Lines(text), workers, firstAndLastDigits)
}

// SolvePartTwoParallel is SolvePartTwo over a worker pool.
// workers <= 0 means GOMAXPROCS.
func SolvePartTwoParallel(text string, workers int) (uint64, error) {
	return aoc.ParallelMapSum(aoc.Lines(text), workers, firstAndLastDigitOrWord)
}
