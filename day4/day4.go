// Package day4 scores scratchcards by matching a card's numbers
// against its winning set, and tallies the cascading card copies that
// matches award in part two.
package day4

import (
	"fmt"
	"strings"

	aoc "github.com/internet-diglett/aoc2023"
)

// Card is one scratchcard line: the winning numbers as a set, and the
// numbers we have in input order.
type Card struct {
	ID      uint64
	Winning map[uint64]bool
	Have    []uint64
}

// ParseLine parses `"Card" ws id ":" number* "|" number*`.
func ParseLine(line string) (Card, error) {
	header, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: no colon separated data in %q", aoc.ErrMalformedInput, line)
	}
	_, idField, ok := strings.Cut(header, " ")
	if !ok {
		return Card{}, fmt.Errorf("%w: card id %q not space separated", aoc.ErrMalformedInput, header)
	}
	id, err := aoc.Uint(idField)
	if err != nil {
		return Card{}, err
	}

	winningField, haveField, ok := strings.Cut(rest, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: no '|' separated data in %q", aoc.ErrMalformedInput, line)
	}
	winning, err := aoc.Uints(strings.Fields(winningField)...)
	if err != nil {
		return Card{}, err
	}
	have, err := aoc.Uints(strings.Fields(haveField)...)
	if err != nil {
		return Card{}, err
	}

	c := Card{ID: id, Winning: make(map[uint64]bool, len(winning)), Have: have}
	for _, n := range winning {
		c.Winning[n] = true
	}
	return c, nil
}

// MatchCount counts how many of the card's numbers are winners.
func (c Card) MatchCount() int {
	var matches int
	for _, n := range c.Have {
		if c.Winning[n] {
			matches++
		}
	}
	return matches
}

// Score is the part-one value of the card: one point for the first
// match, doubled for each match after it.
func (c Card) Score() uint64 {
	m := c.MatchCount()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// SolvePartOne sums the scores of all cards.
func SolvePartOne(text string) (uint64, error) {
	var total uint64
	for _, line := range aoc.Lines(text) {
		c, err := ParseLine(line)
		if err != nil {
			return 0, err
		}
		total += c.Score()
	}
	return total, nil
}

// SolvePartTwo tallies cascading copies: a card with m matches awards
// one copy of each of the next m cards per instance of itself. The
// counter lives only in this call frame. Ids a cascade references
// beyond the last real card never count; only cards actually present
// in the input contribute to the final sum.
func SolvePartTwo(text string) (uint64, error) {
	counts := make(map[uint64]uint64)
	var seen []uint64

	for _, line := range aoc.Lines(text) {
		c, err := ParseLine(line)
		if err != nil {
			return 0, err
		}
		// The original of this card. A cascade from an earlier card
		// may already have seeded copies at this id.
		counts[c.ID]++
		seen = append(seen, c.ID)

		m := c.MatchCount()
		for i := uint64(1); i <= uint64(m); i++ {
			counts[c.ID+i] += counts[c.ID]
		}
	}

	var total uint64
	for _, id := range seen {
		total += counts[id]
	}
	return total, nil
}
