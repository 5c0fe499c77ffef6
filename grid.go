package aoc

import (
	"reflect"

	"tailscale.com/util/deephash"
)

// Grid is a row-major 2D grid. Rows are 0-indexed top to bottom.
type Grid[T any] [][]T

// ByteGrid builds a Grid of raw bytes from the lines of text. Rows may
// be ragged if the input is.
func ByteGrid(text string) Grid[byte] {
	lines := Lines(text)
	g := make(Grid[byte], len(lines))
	for i, line := range lines {
		g[i] = []byte(line)
	}
	return g
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Pt is a grid cell: X is the column, Y is the row.
type Pt struct {
	X, Y int
}

type hashFn[T any] func(*T) deephash.Sum

var hashers map[reflect.Type]any // map[reflect.Type]hashFn[T]

// Hash returns a structural hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}
