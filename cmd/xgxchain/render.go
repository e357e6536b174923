package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	xgxchain "github.com/xgx-io/xgx-chain"
)

func renderSummary(w io.Writer, e *xgxchain.Error) {
	label := pterm.NewStyle(pterm.FgLightCyan)

	exitCode := "none"
	if n, ok := e.ExitCode(); ok {
		exitCode = strconv.Itoa(n)
	}

	lines := []string{
		label.Sprint("Message:   ") + e.Message(),
		label.Sprint("Code:      ") + orNone(e.Code()),
		label.Sprint("Level:     ") + orNone(e.Level()),
		label.Sprint("Exit code: ") + exitCode,
		label.Sprint("Ancestors: ") + strconv.Itoa(len(e.Ancestors())),
	}

	title := pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Error chain")
	_, _ = fmt.Fprintln(w, pterm.DefaultBox.WithTitle(title).WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).Sprint(strings.Join(lines, "\n")))
}

// renderStack prints a stack under a heading, either verbatim or as one
// bullet per segment.
func renderStack(w io.Writer, title, stack string, segments bool) error {
	_, _ = fmt.Fprintln(w, pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint(title))

	if !segments {
		_, err := fmt.Fprintln(w, stack)
		return err
	}

	var items []pterm.BulletListItem
	for _, s := range strings.Split(stack, xgxchain.StackSeparator) {
		items = append(items, pterm.BulletListItem{Level: 0, Text: s})
	}
	out, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func orNone(v xgxchain.Value) string {
	if v.IsZero() {
		return "none"
	}
	return v.String()
}
