package main

import (
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	slogctx "github.com/veqryn/slog-context"

	xgxchain "github.com/xgx-io/xgx-chain"
	"github.com/xgx-io/xgx-chain/internal/descriptor"
)

const inspectDomain = "inspect"

type inspectFlags struct {
	orphan   bool
	segments bool
}

func inspectCmd() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Build a chain from a YAML or JSON descriptor",
		Long: `The inspect command decodes an error descriptor (message, code, level,
exitCode, errno, orphanStack, stack, and a nested parent or cause), builds the
chain, and prints what it resolved. The process exits with the resolved exit
code when there is one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := slogctx.With(cmd.Context(), "file", args[0])

			d, err := descriptor.Load(args[0])
			if err != nil {
				return oops.In(inspectDomain).Wrapf(err, "failed to load descriptor")
			}

			e, err := xgxchain.Construct(d, nil, xgxchain.WithoutStack())
			if err != nil {
				return oops.In(inspectDomain).With("file", args[0]).Wrapf(err, "failed to build chain")
			}
			slogctx.Debug(ctx, "Built chain from descriptor", "chain", e)

			w := cmd.OutOrStdout()
			renderSummary(w, e)

			stack, title := e.Stack(), "Stack"
			if flags.orphan {
				stack, title = e.OrphanStack(), "Orphan stack"
			}
			if err := renderStack(w, title, stack, flags.segments); err != nil {
				return oops.In(inspectDomain).Wrapf(err, "failed to render %s", strings.ToLower(title))
			}
			return statusOf(e)
		},
	}

	cmd.Flags().BoolVar(&flags.orphan, "orphan", false, "print only the orphan stack")
	cmd.Flags().BoolVar(&flags.segments, "segments", false, "print one stack segment per line")

	return cmd
}
