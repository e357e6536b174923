// Command xgxchain builds error chains from the command line: a fixed
// demonstration chain, or chains decoded from YAML/JSON descriptor files. The
// process exits with the chain's resolved exit code.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancelOnSignal := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancelOnSignal()
	os.Exit(code)
}
