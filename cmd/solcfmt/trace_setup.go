package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solcfmt/internal/trace"
)

// traceFlags is the parsed --trace/--trace-level pair.
type traceFlags struct {
	output string
	level  trace.Level
}

func readTraceFlags(cmd *cobra.Command) (traceFlags, error) {
	flags := cmd.Root().PersistentFlags()
	output, err := flags.GetString("trace")
	if err != nil {
		return traceFlags{}, fmt.Errorf("failed to get trace flag: %w", err)
	}
	raw, err := flags.GetString("trace-level")
	if err != nil {
		return traceFlags{}, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	level, err := trace.ParseLevel(raw)
	if err != nil {
		return traceFlags{}, err
	}
	// --trace alone turns on phase events
	if level == trace.LevelOff && output != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	return traceFlags{output: output, level: level}, nil
}

// setupTracing attaches a tracer to the command context (Nop when tracing
// is off) and returns the function that flushes and closes it.
func setupTracing(cmd *cobra.Command) (func(), error) {
	tf, err := readTraceFlags(cmd)
	if err != nil {
		return nil, err
	}
	tracer, err := trace.New(trace.Config{Level: tf.level, OutputPath: tf.output})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	if root := cmd.Root(); root != cmd {
		root.SetContext(ctx)
	}
	if tracer == trace.Nop {
		return func() {}, nil
	}

	return func() {
		// Close flushes first
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
		}
	}, nil
}
