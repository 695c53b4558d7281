//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel a run: interrupt, termination and hangup.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
