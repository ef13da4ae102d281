package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/prompt"
)

// Version information set at build time.
var version = "dev"

// app carries the streams and collaborators shared by every command.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	driver  prompt.Driver
	verbose bool
	logger  *slog.Logger
}

func main() {
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		driver: prompt.NewSurveyDriver(),
	}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formbuilder",
		Short: "Build and render HTML forms from definitions or OpenAPI operations",
		Long: `formbuilder turns declarative form definitions (YAML or JSON) and
OpenAPI request bodies into HTML forms.

Previous submissions and validation errors can be replayed with --old and
--error, or collected interactively with --interactive.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(a.stderr, a.verbose)
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		renderCmd(a),
		rulesCmd(a),
		listCmd(a),
	)
	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		a.logger = newLogger(a.stderr, a.verbose)
	}
	return a.logger
}
