// format.go: fmt.Formatter and slog.LogValuer for xgx-chain.
//
// Behavior:
//
//	%s, %v   → message (Error()).
//	%+v      → full stack: this error, then every ancestor, joined by
//	           StackSeparator.
//	%q       → quoted message.
//
// LogValue renders a chain as a slog group so structured loggers show its
// metadata without this package logging anything itself.
package xgxchain

import (
	"fmt"
	"io"
	"log/slog"
)

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.stack)
			return
		}
		_, _ = io.WriteString(s, e.message)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.message)
	default:
		_, _ = io.WriteString(s, e.message)
	}
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs, slog.String("msg", e.message))
	if !e.code.IsZero() {
		attrs = append(attrs, slog.Any("code", e.code.Any()))
	}
	if !e.level.IsZero() {
		attrs = append(attrs, slog.Any("level", e.level.Any()))
	}
	if n, ok := e.ExitCode(); ok {
		attrs = append(attrs, slog.Int("exit_code", n))
	}
	if len(e.ancestors) > 0 {
		attrs = append(attrs, slog.Int("ancestors", len(e.ancestors)))
	}
	attrs = append(attrs, slog.String("stack", e.stack))
	return slog.GroupValue(attrs...)
}
