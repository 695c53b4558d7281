package burst

import (
	"fmt"

	"github.com/alnah/go-burst/internal/inline"
	"github.com/alnah/go-burst/internal/resolve"
)

// Renderer renders inline markup to HTML fragments.
// Create with NewRenderer; a Renderer is safe for concurrent use.
type Renderer struct {
	roles  *inline.Registry
	inline *inline.Renderer
}

// defaultRenderer has the built-in roles only; its construction cannot fail.
var defaultRenderer, _ = newRenderer(converterConfig{})

// NewRenderer creates a Renderer with the built-in roles plus the roles
// given as options. Registration errors wrap ErrInvalidRoleName,
// ErrRoleExists or ErrNilRoleFunc.
func NewRenderer(opts ...Option) (*Renderer, error) {
	var cfg converterConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return newRenderer(cfg)
}

func newRenderer(cfg converterConfig) (*Renderer, error) {
	roles := inline.NewRegistry()
	for _, r := range cfg.roles {
		if err := roles.Register(r.name, r.role); err != nil {
			return nil, fmt.Errorf("registering role: %w", err)
		}
	}
	return &Renderer{roles: roles, inline: inline.NewRenderer(roles)}, nil
}

// Render rewrites the inline markup in text as HTML.
// Nothing is returned with an error; markup errors wrap a *RenderError.
func (r *Renderer) Render(text string) (string, error) {
	return r.inline.Render(text)
}

// Roles returns the names of every role r knows, sorted.
func (r *Renderer) Roles() []string {
	return r.roles.Names()
}

// Render renders text with the built-in roles.
func Render(text string) (string, error) {
	return defaultRenderer.Render(text)
}

// Resolve replaces the placeholder tokens in a rendered fragment with the
// values in t. Unless lenient, a token without a value is an error wrapping
// ErrUnknownTarget, ErrUnknownSubstitution or ErrAnonymousTargetsExhausted.
func Resolve(fragment string, t Table, lenient bool) (string, error) {
	var opts []resolve.Option
	if lenient {
		opts = append(opts, resolve.WithLenient())
	}
	return resolve.New(t, opts...).Resolve(fragment)
}
