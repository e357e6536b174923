// doc.go: package documentation for xgx-chain
//
// Package xgxchain wraps errors in a value that remembers where they came
// from. A chain carries:
//   - its message and immediate parent (exposed through Unwrap)
//   - its ancestors: the flattened, linear lineage, nearest first
//   - an exit code, a code and a level, inherited from the lineage when the
//     error itself does not declare them
//   - an orphan stack (this error alone) and a full stack (this error and
//     every ancestor, joined by StackSeparator)
//
// # Building Chains
//
//	a := xgxchain.New("read config", nil)
//	b := xgxchain.New("start server", a)
//	c := xgxchain.Create("boot", xgxchain.WithParent(b), xgxchain.WithExitCode(3))
//
//	fmt.Printf("%+v\n", c)
//	// boot
//	//     at main.main (/src/main.go:12)
//	// ↳ start server
//	//     at main.main (/src/main.go:11)
//	// ↳ read config
//	//     at main.main (/src/main.go:10)
//
// Inputs may be a chain, a native error, a Record, a map[string]any
// descriptor, or a string. Descriptors may nest their parent (or cause)
// recursively; non-error parents are turned into chains as well.
//
// # Inheritance Order
//
// Exit code, code and level are resolved once, at construction, by walking
// [input, self, ...ancestors] and taking the first valid value:
//
//	+-----------+------------------------------------+----------------------------+
//	| Target    | Fields read per candidate          | Valid when                 |
//	+-----------+------------------------------------+----------------------------+
//	| exit code | first declared of exitCode, errno, | the declared field parses  |
//	|           | code                               | as an integral number      |
//	| code      | code                               | non-nil and non-empty      |
//	| level     | level                              | non-nil and non-empty      |
//	+-----------+------------------------------------+----------------------------+
//
// Numeric-looking codes and levels become numbers ("0" → 0); everything else
// is kept as text. Only text codes tag stacks: "[ENOENT]: open /etc/app".
//
// Resolution is a snapshot. Changing an ancestor's exit code afterwards does
// not change descendants that were already built.
//
// # Native Errors
//
// Errors from other packages contribute what they expose:
//   - pkg/errors, go-errors and samber/oops stacks become their stack text
//   - ExitCode() int and syscall.Errno (found through Unwrap) become exit codes
//   - Code() and Level() methods become code and level
//   - errors.Unwrap(err) becomes the parent when err is the input
//
// # Identity Across Copies
//
// IsChain accepts *Error and any Lineage reporting KlassID, so chains built by
// a vendored or version-skewed copy of this package are still recognised.
//
// # Failure Policy
//
// An absent input (nil, "", false, numeric zero, nil pointer) is a programming
// error: New, Create and Ensure panic with *InvalidInputError, Construct
// returns it. Every other oddity degrades to empty values.
package xgxchain
