package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-burst"
	"github.com/alnah/go-burst/internal/config"
	"github.com/alnah/go-burst/internal/hints"
)

// hintFor returns a hint for err, or "" when none applies.
// roles are the names the converter knows.
func hintFor(err error, roles []string) string {
	switch {
	case errors.Is(err, burst.ErrUnknownRole):
		return hints.ForUnknownRole(roles)
	case errors.Is(err, burst.ErrUnknownURIScheme):
		return hints.ForUnknownScheme()
	case errors.Is(err, burst.ErrFootnoteSymbolsExhausted):
		return hints.ForFootnoteSymbols()
	case errors.Is(err, burst.ErrUnknownTarget):
		return hints.ForUnresolvedReference("targets")
	case errors.Is(err, burst.ErrAnonymousTargetsExhausted):
		return hints.ForUnresolvedReference("anonymous")
	case errors.Is(err, burst.ErrUnknownSubstitution):
		return hints.ForUnresolvedReference("substitutions")
	case errors.Is(err, config.ErrConfigNotFound):
		dir := ""
		if base, dirErr := os.UserConfigDir(); dirErr == nil {
			dir = filepath.Join(base, "go-burst")
		}
		return hints.ForConfigNotFound(dir)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// withHint appends the hint for err to its message, keeping err in the chain.
func withHint(err error, roles []string) error {
	hint := hintFor(err, roles)
	if err == nil || hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
