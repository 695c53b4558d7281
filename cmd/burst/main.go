package main

import (
	"context"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-burst/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS env value, in which
	// case the runtime default stays in place.
	undo, _ := maxprocs.Set(maxprocs.Logger(logging.Default().Debugf))

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	undo()

	os.Exit(code)
}
