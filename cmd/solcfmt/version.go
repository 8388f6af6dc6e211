package main

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"solcfmt/internal/termstyle"
	"solcfmt/internal/version"
)

// buildInfo is the version metadata plus how this terminal would be styled.
type buildInfo struct {
	Version   string
	GitCommit string
	BuildDate string

	ColorMode termstyle.Mode
	Styling   string // resolver name, e.g. "terminfo xterm-256color"
	Fallback  string // terminfo load error papered over with ANSI
}

type versionOptions struct {
	format   string
	showHash bool
	showDate bool
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	ColorMode string `json:"color_mode"`
	Styling   string `json:"styling"`
	Fallback  string `json:"terminfo_error,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show solcfmt build information and the styling in effect",
	Long: `Show the solcfmt version and which escape sequences the current output
would get under --color: terminfo (with the entry name), fixed ANSI, or none.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	registerVersionFlags(versionCmd)
}

func registerVersionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("hash", false, "include git commit hash")
	cmd.Flags().Bool("date", false, "include build timestamp")
	cmd.Flags().Bool("full", false, "show all recorded build metadata")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	opts, err := readVersionOptions(cmd)
	if err != nil {
		return err
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return err
	}

	info := collectBuildInfo(mode, cmd.OutOrStdout())
	if opts.format == "json" {
		return renderVersionJSON(cmd.OutOrStdout(), info, opts)
	}
	renderVersionPretty(cmd.OutOrStdout(), info, opts)
	return nil
}

func readVersionOptions(cmd *cobra.Command) (versionOptions, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return versionOptions{}, fmt.Errorf("failed to get format flag: %w", err)
	}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return versionOptions{}, fmt.Errorf("failed to get full flag: %w", err)
	}
	hash, err := cmd.Flags().GetBool("hash")
	if err != nil {
		return versionOptions{}, fmt.Errorf("failed to get hash flag: %w", err)
	}
	date, err := cmd.Flags().GetBool("date")
	if err != nil {
		return versionOptions{}, fmt.Errorf("failed to get date flag: %w", err)
	}

	opts := versionOptions{
		format:   strings.ToLower(format),
		showHash: hash || full,
		showDate: date || full,
	}
	switch opts.format {
	case "pretty", "json":
		return opts, nil
	default:
		return versionOptions{}, fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func collectBuildInfo(mode termstyle.Mode, out io.Writer) buildInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	info := buildInfo{
		Version:   v,
		GitCommit: strings.TrimSpace(version.GitCommit),
		BuildDate: strings.TrimSpace(version.BuildDate),
		ColorMode: mode,
	}

	r, fallback := termstyle.ResolverFor(mode, outputFile(out))
	info.Styling = fmt.Sprint(r)
	if fallback != nil {
		info.Fallback = fallback.Error()
	}
	return info
}

func renderVersionPretty(out io.Writer, info buildInfo, opts versionOptions) {
	fmt.Fprintf(out, "solcfmt %s\n", info.Version)
	fmt.Fprintf(out, "color:  %s -> %s\n", info.ColorMode, info.Styling)
	if info.Fallback != "" {
		fmt.Fprintf(out, "        %s\n", info.Fallback)
	}
	if opts.showHash {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate))
	}
}

// renderVersionJSON never colors the version string.
func renderVersionJSON(out io.Writer, info buildInfo, opts versionOptions) error {
	payload := versionPayload{
		Tool:      "solcfmt",
		Version:   stripANSI(info.Version),
		ColorMode: string(info.ColorMode),
		Styling:   info.Styling,
		Fallback:  info.Fallback,
	}
	if opts.showHash {
		payload.GitCommit = valueOrUnknown(info.GitCommit)
	}
	if opts.showDate {
		payload.BuildDate = valueOrUnknown(info.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

var ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiEscapePattern.ReplaceAllString(s, "")
}
