package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"solcfmt/internal/diag"
	"solcfmt/internal/diagfmt"
	"solcfmt/internal/source"
	"solcfmt/internal/trace"
)

var parseCmd = &cobra.Command{
	Use:   "parse [log]",
	Short: "Print the parsed diagnostics of a solc log",
	Long: `Parse a solc diagnostic log and print warnings and errors as structured
records instead of colorized text. The log path is resolved the same way as
for the root command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	registerParseFlags(parseCmd)
}

func registerParseFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "json", "output format (json|msgpack|short)")
	cmd.Flags().Bool("all", false, "include caret and plain lines (json and msgpack)")
	cmd.Flags().Int("max", 0, "maximum number of records to emit (0 = unlimited)")
	cmd.Flags().String("paths", "auto", "path display mode (auto|absolute|relative|basename)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	includeAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	maxRecords, err := cmd.Flags().GetInt("max")
	if err != nil {
		return fmt.Errorf("failed to get max flag: %w", err)
	}
	pathsStr, err := cmd.Flags().GetString("paths")
	if err != nil {
		return fmt.Errorf("failed to get paths flag: %w", err)
	}
	pathMode, ok := diagfmt.ParsePathMode(strings.ToLower(pathsStr))
	if !ok {
		return fmt.Errorf("unknown --paths value %q (expected auto|absolute|relative|basename)", pathsStr)
	}
	if maxRecords < 0 {
		return fmt.Errorf("--max must not be negative, got %d", maxRecords)
	}

	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := loadConfigFile(configPath, ".")
	if err != nil {
		return err
	}
	path := logPath(args, cfg)

	tr := trace.FromContext(cmd.Context())
	span := trace.Begin(tr, trace.ScopeCommand, "parse", 0)
	defer span.WithExtra("log", path).End(format)

	lines, err := source.ReadLines(path)
	if err != nil {
		return err
	}
	diags := diag.ParseLines(lines)

	opts := diagfmt.Opts{
		PathMode: pathMode,
		Max:      maxRecords,
		All:      includeAll,
	}
	out := cmd.OutOrStdout()
	switch strings.ToLower(format) {
	case "json":
		return diagfmt.JSON(out, diags, opts)
	case "msgpack":
		return diagfmt.Msgpack(out, diags, opts)
	case "short":
		return diagfmt.Short(out, diags)
	default:
		return fmt.Errorf("unknown format %q (expected json|msgpack|short)", format)
	}
}
