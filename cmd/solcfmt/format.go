package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"solcfmt/internal/observ"
	"solcfmt/internal/render"
	"solcfmt/internal/termstyle"
	"solcfmt/internal/trace"
)

// formatSettings is the merged result of flags, config file and defaults.
type formatSettings struct {
	LogPath string
	Color   termstyle.Mode
	Summary bool
	Config  string // path of the config file in use, "" if none
}

// resolveFormatSettings merges settings with flag > config > default priority.
func resolveFormatSettings(cmd *cobra.Command, args []string) (formatSettings, error) {
	root := cmd.Root()

	configPath, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return formatSettings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := loadConfigFile(configPath, ".")
	if err != nil {
		return formatSettings{}, err
	}

	s := formatSettings{LogPath: logPath(args, cfg), Color: termstyle.ModeAuto}
	if cfg != nil {
		s.Config = cfg.Path
	}

	colorFlag, err := root.PersistentFlags().GetString("color")
	if err != nil {
		return formatSettings{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch {
	case root.PersistentFlags().Changed("color"):
		if s.Color, err = readColorMode(colorFlag); err != nil {
			return formatSettings{}, err
		}
	case cfg.defines("output", "color"):
		// validated by loadProjectConfig
		s.Color, _ = termstyle.ParseMode(cfg.Config.Output.Color)
	default:
		if s.Color, err = readColorMode(colorFlag); err != nil {
			return formatSettings{}, err
		}
	}

	if f := cmd.Flags().Lookup("summary"); f != nil {
		switch {
		case f.Changed:
			if s.Summary, err = cmd.Flags().GetBool("summary"); err != nil {
				return formatSettings{}, fmt.Errorf("failed to get summary flag: %w", err)
			}
		case cfg.defines("output", "summary"):
			s.Summary = cfg.Config.Output.Summary
		}
	}
	return s, nil
}

// runFormat executes the root command: it resolves the log path and color
// mode, then writes the colorized log to stdout. The log is read completely
// before anything is written.
func runFormat(cmd *cobra.Command, args []string) error {
	settings, err := resolveFormatSettings(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeCommand, "solcfmt", 0)

	out := cmd.OutOrStdout()
	styler, colored, fallback := styleFor(settings.Color, out)
	if fallback != nil {
		trace.Point(tr, trace.ScopeCommand, "terminfo", fallback.Error(), span.ID())
	}

	timer := observ.NewTimer()
	var stats render.Stats
	err = timer.Measure("format", func() (string, error) {
		var formatErr error
		stats, formatErr = render.FormatFile(ctx, out, settings.LogPath, render.Options{
			Styler:       styler,
			Summary:      settings.Summary,
			SummaryColor: colored,
		})
		return strconv.Itoa(stats.Lines) + " lines", formatErr
	})

	if showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings"); showTimings {
		if werr := timer.WriteSummary(cmd.ErrOrStderr()); werr != nil && err == nil {
			err = werr
		}
	}

	span.WithExtra("log", settings.LogPath).
		WithExtra("color", string(settings.Color)).
		WithExtra("config", settings.Config).
		WithExtra("lines", strconv.Itoa(stats.Lines))
	if err != nil {
		span.End("failed")
		return err
	}
	span.End("")
	return nil
}
