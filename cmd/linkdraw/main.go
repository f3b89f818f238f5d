// Package main is the entry point for the linkdraw diagram editor.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/linkdraw/internal/app"
	"github.com/dshills/linkdraw/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	var noWatch bool

	root := &cobra.Command{
		Use:   "linkdraw",
		Short: "linkdraw - a terminal node and link diagram editor",
		Long: "linkdraw edits node and link diagrams with the mouse.\n\n" +
			"  left drag on a node     move it\n" +
			"  right drag from a node  draw a link, release on the target\n" +
			"  left drag on canvas     lasso links, Delete removes them\n" +
			"  double click            add a node\n" +
			"  arrows / wheel          pan, Ctrl+wheel or +/- zoom\n" +
			"  Esc cancels, q quits",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Watch = !noWatch && opts.ConfigPath != ""
			return runEditor(opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to a .toml or .yaml config file")
	flags.StringVarP(&opts.ScenePath, "scene", "s", "", "Lua scene to load instead of the built-in example")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.LogFile, "log-file", "", "file to write logs to")
	flags.BoolVar(&noWatch, "no-watch", false, "do not reload the config file when it changes")

	root.AddCommand(
		inspectCmd(),
		configCmd(),
		versionCmd(),
	)
	return root
}

func runEditor(opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return err
	}

	term, err := backend.NewTerminal()
	if err != nil {
		application.Close()
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return err
	}
	if err := application.SetBackend(term); err != nil {
		application.Close()
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return err
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "linkdraw %s\n", version)
			fmt.Fprintf(out, "Commit: %s\n", commit)
			fmt.Fprintf(out, "Built: %s\n", date)
		},
	}
}
