package main

import (
	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	xgxchain "github.com/xgx-io/xgx-chain"
)

type demoFlags struct {
	code     string
	exitCode int
}

func demoCmd() *cobra.Command {
	flags := &demoFlags{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the AError → BError → CError chain and print its stacks",
		Long: `The demo command builds a three-level chain. AError carries the code given
with --code, BError inherits it, and CError carries the exit code given with
--exit-code. Both the full and the orphan stack of CError are printed, and the
process exits with CError's exit code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := buildDemo(flags, cmd.Flags().Changed("exit-code"))

			slogctx.Debug(cmd.Context(), "Built demo chain", "chain", c)

			w := cmd.OutOrStdout()
			renderSummary(w, c)
			if err := renderStack(w, "Stack", c.Stack(), false); err != nil {
				return err
			}
			if err := renderStack(w, "Orphan stack", c.OrphanStack(), false); err != nil {
				return err
			}
			return statusOf(c)
		},
	}

	cmd.Flags().StringVar(&flags.code, "code", "EDEMO", "code carried by the innermost error")
	cmd.Flags().IntVar(&flags.exitCode, "exit-code", 0, "exit code carried by the outermost error")

	return cmd
}

func buildDemo(flags *demoFlags, withExitCode bool) *xgxchain.Error {
	a := xgxchain.Create(xgxchain.Record{Message: "AError", Code: flags.code})
	b := xgxchain.New("BError", a)

	opts := []xgxchain.Option{xgxchain.WithParent(b)}
	if withExitCode {
		opts = append(opts, xgxchain.WithExitCode(flags.exitCode))
	}
	return xgxchain.Create("CError", opts...)
}
