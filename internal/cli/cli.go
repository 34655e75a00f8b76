// Package cli parses command-line arguments and drives a build from the
// terminal: load, build, report diagnostics, exit non-zero when any
// error-severity diagnostic exists.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/archgridgo/internal/ctxlog"
	"github.com/vk/archgridgo/internal/diag"
	"github.com/vk/archgridgo/internal/hcladapter"
	"github.com/vk/archgridgo/internal/workspace"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated CLI configuration.
type Config struct {
	Path      string
	LogFormat string
	LogLevel  string
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("archgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ArchGridGo - a declarative architecture-model compiler.

Usage:
  archgridgo [options] [WORKSPACE_PATH]

Arguments:
  WORKSPACE_PATH
    Path to a workspace .hcl file.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("workspace", "", "Path to the workspace file.")
	wFlag := flagSet.String("w", "", "Path to the workspace file (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *fileFlag != "" {
		path = *fileFlag
	} else if *wFlag != "" {
		path = *wFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{Path: path, LogFormat: logFormat, LogLevel: logLevel}, false, nil
}

// Run executes one build and writes the report to out. A build with
// error-severity diagnostics returns an ExitError with code 1.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	ctx = ctxlog.WithLogger(ctx, NewLogger(out, cfg))

	sink := diag.NewSink()
	file, err := hcladapter.NewLoader().LoadFile(ctx, cfg.Path, sink)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	ws := workspace.Build(ctx, file, sink)

	for _, d := range sink.All() {
		fmt.Fprintln(out, d.String())
	}
	fmt.Fprintf(out, "workspace %q: %d elements, %d relationships, %d views\n",
		ws.Name, len(ws.Model.AllElements()), len(ws.Model.AllRelationships()), len(ws.Views))

	if sink.HasErrors() {
		return &ExitError{Code: 1, Message: fmt.Sprintf("build finished with %d error(s)", sink.Count(diag.Error))}
	}
	return nil
}

// NewLogger builds the slog logger from the CLI configuration.
func NewLogger(out io.Writer, cfg *Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}
