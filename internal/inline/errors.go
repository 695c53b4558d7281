package inline

import (
	"errors"
	"fmt"
)

// Sentinel errors for rendering.
var (
	ErrUnknownRole              = errors.New("unknown interpreted text role")
	ErrUnknownURIScheme         = errors.New("unhandled hyperlink scheme")
	ErrFootnoteSymbolsExhausted = errors.New("footnote symbols exhausted")
)

// Sentinel errors for role registration.
var (
	ErrInvalidRoleName = errors.New("invalid role name")
	ErrRoleExists      = errors.New("role already registered")
	ErrNilRoleFunc     = errors.New("role has no render function")
)

// RenderError reports the markup that aborted a render.
// Err is one of the rendering sentinels; Subject is the offending
// role name, URI scheme or footnote label.
type RenderError struct {
	Err     error
	Subject string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Subject)
}

// Unwrap returns the sentinel for errors.Is matching.
func (e *RenderError) Unwrap() error {
	return e.Err
}
