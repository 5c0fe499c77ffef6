// Package day2 parses cube-game records and decides which games fit
// in a fixed bag (part one) or how big the bag must be (part two).
package day2

import (
	"fmt"
	"strings"

	aoc "github.com/internet-diglett/aoc2023"
)

// CubeCount is one "3 blue" field of a subset.
type CubeCount struct {
	Count uint64
	Color string
}

// Game is one parsed line: an id and the cube subsets drawn from the
// bag, in input order.
type Game struct {
	ID      uint64
	Subsets [][]CubeCount
}

// ParseLine parses `"Game " id ":" subset (";" subset)*` where each
// subset is `count " " color ("," count " " color)*`.
func ParseLine(line string) (Game, error) {
	// Drop the "Game" prefix.
	_, rest, ok := strings.Cut(line, " ")
	if !ok {
		return Game{}, fmt.Errorf("%w: no space separated data in %q", aoc.ErrMalformedInput, line)
	}
	idField, drawData, ok := strings.Cut(rest, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: no colon separated data in %q", aoc.ErrMalformedInput, line)
	}
	id, err := aoc.Uint(idField)
	if err != nil {
		return Game{}, err
	}

	g := Game{ID: id}
	for _, subset := range strings.Split(drawData, ";") {
		var counts []CubeCount
		for _, field := range strings.Split(subset, ",") {
			countField, color, ok := strings.Cut(strings.TrimSpace(field), " ")
			if !ok {
				return Game{}, fmt.Errorf("%w: cube field %q not space separated", aoc.ErrMalformedInput, field)
			}
			count, err := aoc.Uint(countField)
			if err != nil {
				return Game{}, err
			}
			counts = append(counts, CubeCount{Count: count, Color: color})
		}
		g.Subsets = append(g.Subsets, counts)
	}
	return g, nil
}

// HighestCountSeen returns the largest count per color across every
// subset of the game. Colors that never appear have no entry.
func (g Game) HighestCountSeen() map[string]uint64 {
	counts := make(map[string]uint64)
	for _, subset := range g.Subsets {
		for _, c := range subset {
			if counts[c.Color] < c.Count {
				counts[c.Color] = c.Count
			}
		}
	}
	return counts
}

// allowedForPartOne reports whether a per-color maximum fits the
// part-one bag: 12 red, 13 green, 14 blue.
func allowedForPartOne(count uint64, color string) bool {
	switch color {
	case "red":
		return count <= 12
	case "green":
		return count <= 13
	case "blue":
		return count <= 14
	}
	return false
}

// possibleGame reports whether every per-color maximum passes
// withinRules.
func possibleGame(counts map[string]uint64, withinRules func(uint64, string) bool) bool {
	for color, count := range counts {
		if !withinRules(count, color) {
			return false
		}
	}
	return true
}

// power is the product of the per-color maxima. A color that never
// appears contributes no factor, so a missing color cannot zero out
// the game.
func power(counts map[string]uint64) uint64 {
	p := uint64(1)
	for _, count := range counts {
		p *= count
	}
	return p
}

// SolvePartOne sums the ids of games playable with a bag of 12 red,
// 13 green, and 14 blue cubes.
func SolvePartOne(text string) (uint64, error) {
	var total uint64
	for _, line := range aoc.Lines(text) {
		g, err := ParseLine(line)
		if err != nil {
			return 0, err
		}
		if possibleGame(g.HighestCountSeen(), allowedForPartOne) {
			total += g.ID
		}
	}
	return total, nil
}

// SolvePartTwo sums the power of the minimum bag for every game.
func SolvePartTwo(text string) (uint64, error) {
	var total uint64
	for _, line := range aoc.Lines(text) {
		g, err := ParseLine(line)
		if err != nil {
			return 0, err
		}
		total += power(g.HighestCountSeen())
	}
	return total, nil
}
