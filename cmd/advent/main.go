// Command advent runs the solvers for the first four Advent of Code
// 2023 puzzles against a plaintext input file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/internet-diglett/aoc2023/day1"
	"github.com/internet-diglett/aoc2023/day2"
	"github.com/internet-diglett/aoc2023/day3"
	"github.com/internet-diglett/aoc2023/day4"
)

var (
	day      int
	input    string
	parallel bool
	workers  int
	verbose  bool

	logger *zap.Logger
)

// solver is the pair of pure functions a day exposes.
type solver struct {
	partOne func(string) (uint64, error)
	partTwo func(string) (uint64, error)
}

var solvers = map[int]solver{
	1: {day1.SolvePartOne, day1.SolvePartTwo},
	2: {day2.SolvePartOne, day2.SolvePartTwo},
	3: {day3.SolvePartOne, day3.SolvePartTwo},
	4: {day4.SolvePartOne, day4.SolvePartTwo},
}

// parallelSolvers holds the worker-pool variants. Only day 1 has one:
// its lines are independent, while day 4's cascading counter is
// inherently sequential.
func parallelSolvers() map[int]solver {
	return map[int]solver{
		1: {
			partOne: func(text string) (uint64, error) { return day1.SolvePartOneParallel(text, workers) },
			partTwo: func(text string) (uint64, error) { return day1.SolvePartTwoParallel(text, workers) },
		},
	}
}

var rootCmd = &cobra.Command{
	Use:          "advent",
	Short:        "Solvers for Advent of Code 2023, days 1-4",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	text := string(raw)

	table := solvers
	if parallel {
		table = parallelSolvers()
	}
	s, ok := table[day]
	if !ok {
		return fmt.Errorf("solver not implemented for day %d (parallel=%v)", day, parallel)
	}

	t0 := time.Now()
	partOne, err := s.partOne(text)
	if err != nil {
		return err
	}
	partTwo, err := s.partTwo(text)
	if err != nil {
		return err
	}
	logger.Debug("solved",
		zap.Int("day", day),
		zap.Bool("parallel", parallel),
		zap.Duration("took", time.Since(t0)))

	fmt.Printf("part one: %d\n", partOne)
	fmt.Printf("part two: %d\n", partTwo)
	return nil
}

func init() {
	rootCmd.Flags().IntVarP(&day, "day", "d", 0, "which day's puzzle are you solving?")
	rootCmd.Flags().StringVarP(&input, "input", "i", "", "plaintext file containing your unique puzzle input")
	rootCmd.Flags().BoolVar(&parallel, "parallel", false, "use the worker-pool variant where one exists")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "worker pool size for --parallel (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("day")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
