package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"solcfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "solcfmt [log]",
	Short: "Colorize Solidity compiler diagnostics",
	Long: `solcfmt reads a captured solc diagnostic log and prints it with warnings,
errors and caret annotations highlighted for the terminal.

Without an argument the log path comes from solcfmt.toml ([input].log) or
defaults to "solcstd" in the working directory.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: startInstrumentation,
	RunE:              runFormat,
}

// stopInstrumentation is set by startInstrumentation and run once the
// command returns, including on error.
var stopInstrumentation func()

// main initializes the CLI by setting the command version, registering subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	registerRootFlags(rootCmd)

	err := rootCmd.Execute()
	if stopInstrumentation != nil {
		stopInstrumentation()
	}
	if err != nil {
		os.Exit(1)
	}
}

func registerRootFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("summary", false, "print warning and error totals after the log")

	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().String("config", "", "path to solcfmt.toml (default: search upwards from the working directory)")
	cmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr)")
	cmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|detail)")
	cmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	cmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	cmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
}

func startInstrumentation(cmd *cobra.Command, _ []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return fmt.Errorf("failed to set up profiling: %w", err)
	}
	closeTracing, err := setupTracing(cmd)
	if err != nil {
		stopProfiling()
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	stopInstrumentation = func() {
		closeTracing()
		stopProfiling()
	}
	return nil
}
