package day4

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/internet-diglett/aoc2023"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestParseLine(t *testing.T) {
	got, err := ParseLine("Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53")
	require.NoError(t, err)

	want := Card{
		ID:      1,
		Winning: map[uint64]bool{41: true, 48: true, 83: true, 86: true, 17: true},
		Have:    []uint64{83, 86, 6, 31, 17, 9, 48, 53},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLine mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind error
	}{
		{"no colon", "Card 1 41 48 | 83 86", aoc.ErrMalformedInput},
		{"no card id", "Card1: 41 | 83", aoc.ErrMalformedInput},
		{"no pipe", "Card 1: 41 48 83", aoc.ErrMalformedInput},
		{"bad id", "Card x: 41 | 83", aoc.ErrParseFailure},
		{"bad number", "Card 1: 41 forty | 83", aoc.ErrParseFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestMatchCountAndScore(t *testing.T) {
	tests := []struct {
		line    string
		matches int
		score   uint64
	}{
		{"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53", 4, 8},
		{"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19", 2, 2},
		{"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83", 1, 1},
		{"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36", 0, 0},
	}
	for _, tt := range tests {
		c, err := ParseLine(tt.line)
		require.NoError(t, err)
		assert.Equal(t, tt.matches, c.MatchCount(), "matches for %q", tt.line)
		assert.Equal(t, tt.score, c.Score(), "score for %q", tt.line)
	}
}

func TestSolvePartOne(t *testing.T) {
	got, err := SolvePartOne(example)
	require.NoError(t, err)
	assert.Equal(t, uint64(13), got)
}

func TestSolvePartTwo(t *testing.T) {
	got, err := SolvePartTwo(example)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), got)
}

// Copies cascading past the last real card reference ids that do not
// exist; they must never reach the final sum.
func TestSolvePartTwoCascadePastEnd(t *testing.T) {
	t.Run("single card", func(t *testing.T) {
		got, err := SolvePartTwo("Card 1: 1 2 | 1 2\n")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got)
	})

	t.Run("last card wins into the void", func(t *testing.T) {
		text := "Card 1: 1 | 1\n" + "Card 2: 5 6 7 | 5 6 7\n"
		// Card 1 awards a copy of card 2 (2 instances); both instances
		// of card 2 cascade to cards 3, 4, 5, which do not exist.
		got, err := SolvePartTwo(text)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), got)
	})
}

func TestSolvePartTwoIsIdempotent(t *testing.T) {
	first, err := SolvePartTwo(example)
	require.NoError(t, err)
	second, err := SolvePartTwo(example)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
