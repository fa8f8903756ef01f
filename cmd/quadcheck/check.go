package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fp128/internal/verify"
)

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "print a line for every passing check")
	rootCmd.Flags().String("args", "", "TOML file with extra argument overrides")
	rootCmd.Flags().Bool("timings", false, "print time spent per category to stderr")
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	verbose = verbose || len(args) > 0

	argTable := verify.DefaultArgs()
	argsPath, err := cmd.Flags().GetString("args")
	if err != nil {
		return fmt.Errorf("failed to get args flag: %w", err)
	}
	if argsPath != "" {
		doc, err := os.ReadFile(argsPath)
		if err != nil {
			return fmt.Errorf("read arguments: %w", err)
		}
		if err := argTable.Merge(argsPath, string(doc)); err != nil {
			return fmt.Errorf("load arguments: %w", err)
		}
	}

	colored, err := useColor(cmd)
	if err != nil {
		return err
	}
	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	reporter := verify.NewReporter(cmd.OutOrStdout(), verbose, colored)
	rep, err := verify.Run(cmd.Context(), verify.Options{Args: argTable, Observer: reporter})
	if err != nil {
		return err
	}
	reporter.Summary(rep)
	if timings, _ := cmd.Flags().GetBool("timings"); timings {
		fmt.Fprint(cmd.ErrOrStderr(), rep.Timings.Summary())
	}
	if rep.Failures > 0 {
		dumpRing(cmd, tracer)
	}
	return exitStatus(rep.ExitCode())
}
