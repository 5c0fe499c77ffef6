// Package day1 extracts calibration values: each line contributes a
// two-digit number built from the first and last digit found on it.
package day1

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/internet-diglett/aoc2023"
)

// numerics are every token that counts as a digit in part two, in
// value order: "0".."9" then "zero".."nine".
var numerics = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// tokenValue maps a numerics entry to its digit value.
func tokenValue(tok string) (uint64, error) {
	for i, n := range numerics {
		if n == tok {
			return uint64(i % 10), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a digit or number word", aoc.ErrParseFailure, tok)
}

// firstAndLastDigits combines the first and last ASCII digits on the
// line into a two-digit value. A lone digit is used twice.
func firstAndLastDigits(line string) (uint64, error) {
	var digits []uint64
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			digits = append(digits, uint64(c-'0'))
		}
	}
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: no digits in %q", aoc.ErrEmptyResult, line)
	}
	return digits[0]*10 + digits[len(digits)-1], nil
}

// firstAndLastDigitOrWord is the part-two variant: number words count
// too, and occurrences may overlap ("oneight" holds both 1 and 8).
func firstAndLastDigitOrWord(line string) (uint64, error) {
	digits, err := digitsAndNumberWords(line)
	if err != nil {
		return 0, err
	}
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: no digits or number words in %q", aoc.ErrEmptyResult, line)
	}
	return digits[0]*10 + digits[len(digits)-1], nil
}

// digitsAndNumberWords finds every occurrence of every numerics token
// in line, ordered by starting byte offset. Search resumes one byte
// past each hit so occurrences sharing characters are all found.
func digitsAndNumberWords(line string) ([]uint64, error) {
	type match struct {
		offset int
		token  string
	}
	var matches []match
	for _, tok := range numerics {
		for from := 0; ; {
			i := strings.Index(line[from:], tok)
			if i < 0 {
				break
			}
			matches = append(matches, match{offset: from + i, token: tok})
			from += i + 1
		}
	}
	slices.SortFunc(matches, func(a, b match) int { return a.offset - b.offset })

	digits := make([]uint64, 0, len(matches))
	for _, m := range matches {
		v, err := tokenValue(m.token)
		if err != nil {
			return nil, err
		}
		digits = append(digits, v)
	}
	return digits, nil
}

// SolvePartOne sums the two-digit value of every line.
func SolvePartOne(text string) (uint64, error) {
	var total uint64
	for _, line := range aoc.Lines(text) {
		v, err := firstAndLastDigits(line)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// SolvePartTwo sums the two-digit value of every line, counting
// spelled-out number words as digits.
func SolvePartTwo(text string) (uint64, error) {
	var total uint64
	for _, line := range aoc.Lines(text) {
		v, err := firstAndLastDigitOrWord(line)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}
