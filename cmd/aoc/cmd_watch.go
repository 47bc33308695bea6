package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"aoc2024/internal/runner"

	"github.com/spf13/cobra"
)

var watchSample bool

// watchCmd re-solves a day on every input change
var watchCmd = &cobra.Command{
	Use:   "watch <day>",
	Short: "Re-run a day whenever its input file changes",
	Long: `Solves the day once, then again each time its input file is written.
Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: watchDay,
}

func init() {
	watchCmd.Flags().BoolVar(&watchSample, "sample", false, "Watch the sample input")
}

func watchDay(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := runner.New(cfg, logger).NewWatcher(days[0], watchSample)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Stop()
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Path(), err)
	}

	return printWatchResults(cmd, w.Results())
}

func printWatchResults(cmd *cobra.Command, results <-chan runner.WatchResult) error {
	out := cmd.OutOrStdout()
	for res := range results {
		if res.Err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), res.Err)
			continue
		}
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Day %d: %s", res.Result.Day, res.Result.Title)))
		for _, line := range res.Result.Answers.Lines() {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
