package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"aoc2024/internal/puzzle"
	"aoc2024/internal/runner"

	"github.com/spf13/cobra"
)

var (
	runAll    bool
	runSample bool
	runDebug  bool
)

// runCmd solves one or more days
var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve the given days",
	Long: `Solves each given day and prints its answers.

Examples:
  aoc run 1
  aoc run 4 6 --sample
  aoc run --all`,
	RunE: runDays,
}

// listCmd lists the registered solvers
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range puzzle.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", p.Day, p.Title)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "Solve every day")
	runCmd.Flags().BoolVar(&runSample, "sample", false, "Use the sample inputs (sized puzzles switch to the example dimensions)")
	runCmd.Flags().BoolVar(&runDebug, "debug", false, "Print solver debug output")
}

// parseDays converts day arguments to day numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		if day < puzzle.FirstDay || day > puzzle.LastDay {
			return nil, fmt.Errorf("day %d out of range %d-%d", day, puzzle.FirstDay, puzzle.LastDay)
		}
		days = append(days, day)
	}
	return days, nil
}

func runDays(cmd *cobra.Command, args []string) error {
	if runAll && len(args) > 0 {
		return fmt.Errorf("--all cannot be combined with day arguments")
	}
	if !runAll && len(args) == 0 {
		return fmt.Errorf("specify one or more days, or --all")
	}
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := runner.New(cfg, logger).Run(ctx, days, runSample)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Day %d: %s", res.Day, res.Title)))
		}
		for _, line := range res.Answers.Lines() {
			fmt.Fprintln(out, line)
		}
		if runDebug && res.Answers.Debug != "" {
			fmt.Fprint(out, res.Answers.Debug)
		}
		if verbose {
			fmt.Fprintln(out, timingStyle.Render(res.Elapsed.Round(time.Microsecond).String()))
		}
	}
	return nil
}
