// Command quadcheck verifies that the quad facade reaches the same runtime
// entry points as the directly named symbols, and inspects the build's
// target profile, symbol table and constants.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fp128/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "quadcheck [verbose]",
	Short: "Check the quad-precision facade against the runtime",
	Long: `quadcheck calls every canonical quad operation through the facade and
through the directly named runtime symbol and compares the results bit for
bit. A positional argument, whatever it says, turns on verbose output. The
exit status is the number of failed checks.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

// exitError carries a non-zero status that is not itself an error, such as
// a failure count.
type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func exitStatus(n int) error {
	if n <= 0 {
		return nil
	}
	return exitError(min(n, 255))
}

func main() {
	rootCmd.Version = version.Current().Version

	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(constantsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 1024, "events kept by the ring buffer")

	if err := rootCmd.Execute(); err != nil {
		var code exitError
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, "quadcheck:", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}
