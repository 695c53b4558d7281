package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-burst"
	"github.com/alnah/go-burst/internal/config"
)

// Exit codes for the burst CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or role setup
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // Markup or reference errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, burst.ErrUnknownRole) ||
		errors.Is(err, burst.ErrUnknownURIScheme) ||
		errors.Is(err, burst.ErrFootnoteSymbolsExhausted) ||
		errors.Is(err, burst.ErrUnknownTarget) ||
		errors.Is(err, burst.ErrUnknownSubstitution) ||
		errors.Is(err, burst.ErrAnonymousTargetsExhausted) ||
		errors.Is(err, burst.ErrHighlight) ||
		errors.Is(err, burst.ErrBlockConversion) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, burst.ErrInvalidRoleName) ||
		errors.Is(err, burst.ErrRoleExists) ||
		errors.Is(err, burst.ErrNilRoleFunc) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
