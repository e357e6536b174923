package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	xgxchain "github.com/xgx-io/xgx-chain"
)

// exitStatus carries the exit code of a chain the command already rendered.
type exitStatus struct {
	code int
}

func (e *exitStatus) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type globalFlags struct {
	verbose bool
	noColor bool
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "xgxchain",
		Short:         "Build and inspect error chains",
		Long:          `xgxchain builds error chains, renders their composed stacks, and exits with the exit code the chain resolved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				pterm.DisableColor()
			} else {
				pterm.EnableColor()
			}
			setupLogger(stderr, flags.verbose)
			cmd.SetContext(slogctx.With(cmd.Context(), slog.String("command", cmd.Name())))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(demoCmd(), inspectCmd())

	return cmd
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// flag errors surface before any command configures logging
	setupLogger(stderr, false)

	cmd := rootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var status *exitStatus
	if errors.As(err, &status) {
		return status.code
	}

	slogctx.Error(ctx, "Command failed", slogctx.Err(err))
	_, _ = fmt.Fprintln(stderr, pterm.Error.Sprint(err.Error()))

	if code, ok := xgxchain.ExitCodeOf(err); ok && code != 0 {
		return code
	}
	return 1
}

// statusOf turns a rendered chain into the command's result.
func statusOf(e *xgxchain.Error) error {
	code, ok := e.ExitCode()
	if !ok || code == 0 {
		return nil
	}
	return &exitStatus{code: code}
}
