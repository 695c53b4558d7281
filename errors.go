package burst

import (
	"errors"

	"github.com/alnah/go-burst/internal/blocks"
	"github.com/alnah/go-burst/internal/inline"
	"github.com/alnah/go-burst/internal/resolve"
)

// Rendering errors. A render that fails on markup returns an error wrapping
// a *RenderError that carries one of these.
var (
	ErrUnknownRole              = inline.ErrUnknownRole
	ErrUnknownURIScheme         = inline.ErrUnknownURIScheme
	ErrFootnoteSymbolsExhausted = inline.ErrFootnoteSymbolsExhausted
)

// Role registration errors.
var (
	ErrInvalidRoleName = inline.ErrInvalidRoleName
	ErrRoleExists      = inline.ErrRoleExists
	ErrNilRoleFunc     = inline.ErrNilRoleFunc
)

// Reference resolution errors.
var (
	ErrUnknownTarget             = resolve.ErrUnknownTarget
	ErrUnknownSubstitution       = resolve.ErrUnknownSubstitution
	ErrAnonymousTargetsExhausted = resolve.ErrAnonymousTargetsExhausted
)

// Conversion errors.
var (
	ErrHighlight       = errors.New("syntax highlighting failed")
	ErrBlockConversion = blocks.ErrBlockConversion
)

// RenderError reports the markup that aborted a render: the unknown role
// name, the unhandled URI scheme or the footnote label.
type RenderError = inline.RenderError
