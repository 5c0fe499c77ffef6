package day3

import (
	"fmt"

	aoc "github.com/internet-diglett/aoc2023"
)

// charClass is what a schematic character can be: a digit, a symbol
// (anything that is neither a digit nor '.'), or a blank ('.').
type charClass int

const (
	classBlank charClass = iota
	classDigit
	classSymbol
)

// state is the scanner's mode: idle, or partway through a digit run.
type state int

const (
	scanning state = iota
	parsingNumber
)

// action is what the scanner must do with the current character.
type action int

const (
	actNone action = iota
	actStartRun
	actExtendRun
	actFinishRun
	actMarkSymbol
	actFinishRunAndMark
)

// classify buckets a schematic character. Digit-ness and symbol-ness
// are computed independently; a character that tests as both breaks
// the classification invariant and is fatal.
func classify(c byte) (charClass, error) {
	isDigit := c >= '0' && c <= '9'
	isSymbol := !(isDigit || c == '.')
	switch {
	case isDigit && isSymbol:
		return classBlank, fmt.Errorf("%w: %q is both digit and symbol", aoc.ErrInvariantViolation, c)
	case isDigit:
		return classDigit, nil
	case isSymbol:
		return classSymbol, nil
	default:
		return classBlank, nil
	}
}

// transition is the scanner's transition table. It is pure so each
// (state, class) pair can be checked in isolation; end-of-line
// finalization is the caller's job.
func transition(s state, c charClass) (action, state) {
	switch s {
	case scanning:
		switch c {
		case classDigit:
			return actStartRun, parsingNumber
		case classSymbol:
			return actMarkSymbol, scanning
		default:
			return actNone, scanning
		}
	case parsingNumber:
		switch c {
		case classDigit:
			return actExtendRun, parsingNumber
		case classSymbol:
			return actFinishRunAndMark, scanning
		default:
			return actFinishRun, scanning
		}
	}
	panic(fmt.Sprintf("unknown scanner state %d", s))
}

// scanRow runs the scanner over one row, appending finished part
// numbers to the returned slice and marking symbol neighborhoods in
// adj. A run still open at end of line is finalized there.
func scanRow(row int, line []byte, adj map[aoc.Pt]Symbol) ([]PartNumber, error) {
	var (
		parts []PartNumber
		mode  = scanning
		begin int
	)

	finish := func(end int) error {
		value, err := aoc.Uint(string(line[begin : end+1]))
		if err != nil {
			return err
		}
		parts = append(parts, PartNumber{Row: row, Begin: begin, End: end, Value: value})
		return nil
	}

	for i := 0; i < len(line); i++ {
		class, err := classify(line[i])
		if err != nil {
			return nil, fmt.Errorf("row %d col %d: %w", row, i, err)
		}
		act, next := transition(mode, class)
		switch act {
		case actNone:
		case actStartRun:
			begin = i
		case actExtendRun:
		case actFinishRun:
			if err := finish(i - 1); err != nil {
				return nil, err
			}
		case actMarkSymbol:
			markNeighborhood(row, i, line[i], adj)
		case actFinishRunAndMark:
			if err := finish(i - 1); err != nil {
				return nil, err
			}
			markNeighborhood(row, i, line[i], adj)
		}
		mode = next
	}
	if mode == parsingNumber {
		if err := finish(len(line) - 1); err != nil {
			return nil, err
		}
	}
	return parts, nil
}

// markNeighborhood maps every cell of the symbol's 3x3 neighborhood
// (clamped at the top and left edges) to the symbol, overwriting any
// symbol previously recorded at a shared cell.
func markNeighborhood(row, col int, c byte, adj map[aoc.Pt]Symbol) {
	sym := Symbol{Row: row, Column: col, Char: c}
	for y := max(row-1, 0); y <= row+1; y++ {
		for x := max(col-1, 0); x <= col+1; x++ {
			adj[aoc.Pt{X: x, Y: y}] = sym
		}
	}
}
