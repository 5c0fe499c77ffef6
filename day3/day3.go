// Package day3 scans an engine schematic for numbers adjacent to
// symbols (part one) and for gears, '*' symbols touching exactly two
// numbers (part two).
package day3

import (
	aoc "github.com/internet-diglett/aoc2023"
)

// PartNumber is a maximal run of digits on one row. Begin and End are
// inclusive column offsets.
type PartNumber struct {
	Row   int
	Begin int
	End   int
	Value uint64
}

// Symbol is a schematic character that is neither a digit nor '.'.
type Symbol struct {
	Row    int
	Column int
	Char   byte
}

// Schematic is the scan result: every part number, and a map from
// cell to the symbol whose 3x3 neighborhood covers it. When
// neighborhoods overlap, the symbol recorded later wins the cell.
type Schematic struct {
	Parts   []PartNumber
	Symbols map[aoc.Pt]Symbol
}

// Scan runs the row scanner over the whole schematic and merges the
// per-row results.
func Scan(text string) (*Schematic, error) {
	grid := aoc.ByteGrid(text)
	s := &Schematic{Symbols: make(map[aoc.Pt]Symbol)}
	for row := 0; row < len(grid); row++ {
		parts, err := scanRow(row, grid[row], s.Symbols)
		if err != nil {
			return nil, err
		}
		s.Parts = append(s.Parts, parts...)
	}
	return s, nil
}

// nearSymbol reports whether any column of the part number's span is
// covered by some symbol's neighborhood.
func (s *Schematic) nearSymbol(pn PartNumber) bool {
	for x := pn.Begin; x <= pn.End; x++ {
		if _, ok := s.Symbols[aoc.Pt{X: x, Y: pn.Row}]; ok {
			return true
		}
	}
	return false
}

// SolvePartOne sums every part number adjacent to a symbol.
func SolvePartOne(text string) (uint64, error) {
	s, err := Scan(text)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, pn := range s.Parts {
		if s.nearSymbol(pn) {
			total += pn.Value
		}
	}
	return total, nil
}

// SolvePartTwo sums the gear ratios: for each part number, scan its
// span left to right and credit it to the first '*' symbol found
// (cells covered by other symbols are skipped, not terminal). A '*'
// credited exactly two part numbers is a gear; its ratio is their
// product. Because neighborhood marking overwrites shared cells, a
// number flanked by several symbols is credited to only one of them.
func SolvePartTwo(text string) (uint64, error) {
	s, err := Scan(text)
	if err != nil {
		return 0, err
	}

	candidates := make(map[Symbol][]uint64)
	for _, pn := range s.Parts {
		for x := pn.Begin; x <= pn.End; x++ {
			sym, ok := s.Symbols[aoc.Pt{X: x, Y: pn.Row}]
			if !ok || sym.Char != '*' {
				continue
			}
			candidates[sym] = append(candidates[sym], pn.Value)
			break
		}
	}

	var total uint64
	for _, values := range candidates {
		if len(values) == 2 {
			total += values[0] * values[1]
		}
	}
	return total, nil
}
