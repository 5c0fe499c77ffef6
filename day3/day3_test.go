package day3

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/internet-diglett/aoc2023"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestScan(t *testing.T) {
	s, err := Scan(example)
	require.NoError(t, err)

	assert.Len(t, s.Parts, 10)
	assert.Equal(t, PartNumber{Row: 0, Begin: 0, End: 2, Value: 467}, s.Parts[0])
	assert.Equal(t, PartNumber{Row: 9, Begin: 5, End: 7, Value: 598}, s.Parts[len(s.Parts)-1])

	// The '*' on row 1 covers the cell under 467's last digit.
	sym, ok := s.Symbols[aoc.Pt{X: 2, Y: 0}]
	require.True(t, ok)
	assert.Equal(t, Symbol{Row: 1, Column: 3, Char: '*'}, sym)

	// 114 on row 0 has no symbol anywhere near its span.
	assert.False(t, s.nearSymbol(PartNumber{Row: 0, Begin: 5, End: 7, Value: 114}))
}

func TestSolvePartOne(t *testing.T) {
	got, err := SolvePartOne(example)
	require.NoError(t, err)
	assert.Equal(t, uint64(4361), got)
}

func TestSolvePartTwo(t *testing.T) {
	got, err := SolvePartTwo(example)
	require.NoError(t, err)
	assert.Equal(t, uint64(467835), got)
}

// TestGearTieBreak pins down the overwrite-on-insert adjacency
// semantics: a part number flanked by two '*' symbols is credited to
// whichever symbol wrote the first matching cell of its span last.
// In "1*2*3" the middle number's only cell is covered by both stars,
// and the right star's write wins, so the right star pairs {2,3}
// (ratio 6) while the left star keeps only {1} and is not a gear.
func TestGearTieBreak(t *testing.T) {
	got, err := SolvePartTwo("1*2*3\n")
	require.NoError(t, err)
	assert.Equal(t, uint64(6), got)

	// The cell under '2' was written by the left star first, then
	// overwritten by the right one.
	s, err := Scan("1*2*3\n")
	require.NoError(t, err)
	sym, ok := s.Symbols[aoc.Pt{X: 2, Y: 0}]
	require.True(t, ok)
	assert.Equal(t, 3, sym.Column)
}

// A number next to several stars is credited to exactly one of them,
// left to right over its span.
func TestGearFirstCellWins(t *testing.T) {
	got, err := SolvePartTwo("11*22*33\n")
	require.NoError(t, err)
	// The star at column 2 collects 11 and 22; the star at column 5
	// is left with only 33.
	assert.Equal(t, uint64(11*22), got)
}

func TestScanIsIdempotent(t *testing.T) {
	grid := aoc.ByteGrid(example)
	before := grid.Hash()

	first, err := Scan(example)
	require.NoError(t, err)
	second, err := Scan(example)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-scan produced different structures (-first +second):\n%s", diff)
	}
	assert.Equal(t, before, grid.Hash(), "scanning must not disturb the source grid")
}
