// Package aoc is the shared plumbing for Advent of Code solvers: line
// splitting, integer parsing, generic summing, and a worker-pool
// map/sum for the solvers that can run data-parallel.
package aoc

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// The error kinds solvers report. Wrap them with fmt.Errorf("%w: ...")
// so callers can errors.Is on the kind while the message keeps the
// offending line or field.
var (
	// ErrMalformedInput means an expected separator (space, colon,
	// semicolon, '|') was missing from a line.
	ErrMalformedInput = errors.New("malformed input")
	// ErrParseFailure means a field that should be a number wasn't.
	ErrParseFailure = errors.New("parse failure")
	// ErrEmptyResult means a line yielded nothing where at least one
	// value is required.
	ErrEmptyResult = errors.New("empty result")
	// ErrInvariantViolation means a character classified as both digit
	// and symbol, which is impossible by construction.
	ErrInvariantViolation = errors.New("invariant violation")
)

// Lines splits text into lines, dropping a single trailing newline the
// way puzzle input files end. An empty text has no lines.
func Lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Uint parses s as an unsigned decimal, trimming surrounding space.
func Uint(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrParseFailure, s)
	}
	return v, nil
}

// Uints parses each string with Uint.
func Uints(s ...string) ([]uint64, error) {
	out := make([]uint64, 0, len(s))
	for _, v := range s {
		n, err := Uint(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Fold reduces in with f, starting from defVal.
func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapSum maps f over in across a fixed pool of workers, each
// owning a contiguous chunk, and sums the results. The first error
// aborts the whole computation; which error wins when several chunks
// fail is unspecified. Only valid when f has no cross-element
// dependency. workers <= 0 means GOMAXPROCS.
func ParallelMapSum[I any, O Number](in []I, workers int, f func(I) (O, error)) (O, error) {
	var zero O
	if len(in) == 0 {
		return zero, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(in) {
		workers = len(in)
	}

	partial := make([]O, workers)
	chunk := (len(in) + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		if lo >= len(in) {
			break
		}
		hi := lo + chunk
		if hi > len(in) {
			hi = len(in)
		}
		g.Go(func() error {
			var sum O
			for _, v := range in[lo:hi] {
				o, err := f(v)
				if err != nil {
					return err
				}
				sum += o
			}
			partial[w] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}
	return Sum(partial...), nil
}
