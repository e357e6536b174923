// foreign.go: metadata and stack probes for errors built elsewhere.
//
// A native error has no fields to read, so its metadata comes from the
// methods it implements:
//   - stacks: pkg/errors StackTrace(), go-errors ErrorStack(), samber/oops Stacktrace()
//   - exit code: ExitCode() int (e.g. *exec.ExitError), through the unwrap chain
//   - errno: syscall.Errno, through the unwrap chain
//   - code/level: Code() / Level() on the error itself
//
// Exit codes and errnos are looked up through Unwrap because the standard
// library always wraps them (*os.PathError, *exec.ExitError). The lookup stops
// at the first chain it meets: below that point the chain has already resolved
// its exit code, and its ancestors' raw values no longer apply. Codes and
// levels belong to the error that declares them.
package xgxchain

import (
	"fmt"
	"syscall"

	pkgerrors "github.com/pkg/errors"
)

type (
	stackTracer  interface{ StackTrace() pkgerrors.StackTrace }
	errorStacker interface{ ErrorStack() string }
	oopsStacker  interface{ Stacktrace() string }
	exitCoder    interface{ ExitCode() int }
	textCoder    interface{ Code() string }
	intCoder     interface{ Code() int }
	anyCoder     interface{ Code() any }
	textLeveler  interface{ Level() string }
	anyLeveler   interface{ Level() any }
)

// nativeStack returns the best stack text a foreign error offers, or "".
func nativeStack(err error) string {
	switch t := err.(type) {
	case stackTracer:
		return err.Error() + fmt.Sprintf("%+v", t.StackTrace())
	case errorStacker:
		return t.ErrorStack()
	case oopsStacker:
		return t.Stacktrace()
	}
	return ""
}

// nativeExitCode reports an ExitCode() found along err's unwrap graph, or the
// resolved exit code of the first chain on the way.
func nativeExitCode(err error) (int, bool) {
	return probeUnwrap(err, func(e error) (int, bool) {
		if ec, ok := e.(exitCoder); ok {
			return ec.ExitCode(), true
		}
		return 0, false
	}, Lineage.ExitCode)
}

// nativeErrno reports a syscall.Errno found along err's unwrap graph above the
// first chain.
func nativeErrno(err error) (int, bool) {
	return probeUnwrap(err, func(e error) (int, bool) {
		if en, ok := e.(syscall.Errno); ok {
			return int(en), true
		}
		return 0, false
	}, func(Lineage) (int, bool) { return 0, false })
}

// probeUnwrap runs probe over err's unwrap graph depth-first and returns the
// first hit. Descent stops at chains: atChain answers for them instead.
func probeUnwrap(err error, probe func(error) (int, bool), atChain func(Lineage) (int, bool)) (int, bool) {
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)

	var visit func(e error, depth int) (int, bool)
	visit = func(e error, depth int) (int, bool) {
		if isAbsent(e) || depth >= maxWalkDepth || !markSeen(e, seenErr, seenPtr) {
			return 0, false
		}
		if l, ok := asChain(e); ok {
			return atChain(l)
		}
		if n, ok := probe(e); ok {
			return n, true
		}
		switch u := e.(type) {
		case multiUnwrapper:
			for _, k := range u.Unwrap() {
				if n, ok := visit(k, depth+1); ok {
					return n, true
				}
			}
		case singleUnwrapper:
			return visit(u.Unwrap(), depth+1)
		}
		return 0, false
	}
	return visit(err, 0)
}

// nativeCode reads a Code() method declared by err itself.
func nativeCode(err error) (any, bool) {
	switch t := err.(type) {
	case textCoder:
		return t.Code(), true
	case intCoder:
		return t.Code(), true
	case anyCoder:
		return t.Code(), true
	}
	return nil, false
}

// nativeLevel reads a Level() method declared by err itself.
func nativeLevel(err error) (any, bool) {
	switch t := err.(type) {
	case textLeveler:
		return t.Level(), true
	case anyLeveler:
		return t.Level(), true
	}
	return nil, false
}
