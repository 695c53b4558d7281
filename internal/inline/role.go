package inline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dlclark/regexp2"
)

// roleName matches a valid role name (the part between colons).
const roleName = `[A-Za-z0-9_+.\-]+`

var roleNamePattern = regexp2.MustCompile(`^`+roleName+`\z`, regexp2.None)

// builtinRole is the closed set of roles every Registry knows.
type builtinRole int

const (
	roleTitle builtinRole = iota
	roleFunction
	roleSubscript
	roleSuperscript
)

// builtinRoles maps role names, aliases included, to built-in roles.
// The empty name is the default role.
var builtinRoles = map[string]builtinRole{
	"":            roleTitle,
	"func":        roleFunction,
	"sub":         roleSubscript,
	"subscript":   roleSubscript,
	"sup":         roleSuperscript,
	"superscript": roleSuperscript,
}

// RoleFunc renders the body of an interpreted text span. key is the content
// key of text.
type RoleFunc func(key, text string) (string, error)

// Role is an extension role.
type Role struct {
	Render RoleFunc

	// Protected output is held back until the end of the render, so no
	// later pass rewrites it.
	Protected bool
}

// Registry maps role names to renderers.
// It is not safe to Register while a Renderer using it is rendering.
type Registry struct {
	extensions map[string]Role
}

// NewRegistry returns a Registry holding only the built-in roles.
func NewRegistry() *Registry {
	return &Registry{extensions: map[string]Role{}}
}

// Register adds an extension role under name.
func (r *Registry) Register(name string, role Role) error {
	ok, err := roleNamePattern.MatchString(name)
	if err != nil || !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRoleName, name)
	}
	if _, builtin := builtinRoles[name]; builtin {
		return fmt.Errorf("%w: %q", ErrRoleExists, name)
	}
	if _, dup := r.extensions[name]; dup {
		return fmt.Errorf("%w: %q", ErrRoleExists, name)
	}
	if role.Render == nil {
		return fmt.Errorf("%w: %q", ErrNilRoleFunc, name)
	}
	r.extensions[name] = role
	return nil
}

// Names returns every known role name, sorted, without the default role.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(builtinRoles)+len(r.extensions))
	for name := range builtinRoles {
		if name != "" {
			names = append(names, name)
		}
	}
	for name := range r.extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve renders text with the role called name.
// protect reports whether the output must be held back from later passes.
// The default role returns an interpreted text token for key rather than
// markup.
func (r *Registry) Resolve(name, key, text string) (out string, protect bool, err error) {
	if role, ok := builtinRoles[name]; ok {
		return renderBuiltin(role, key, text), false, nil
	}
	ext, ok := r.extensions[name]
	if !ok {
		return "", false, &RenderError{Err: ErrUnknownRole, Subject: name}
	}
	out, err = ext.Render(key, text)
	if err != nil {
		return "", false, fmt.Errorf("role %q: %w", name, err)
	}
	return out, ext.Protected, nil
}

func renderBuiltin(role builtinRole, key, text string) string {
	switch role {
	case roleFunction:
		text = strings.TrimSpace(text)
		id := strings.ReplaceAll(text, `"`, "")
		return `<a href="#func_` + id + `">` + text + `</a>`
	case roleSubscript:
		return "<sub>" + text + "</sub>"
	case roleSuperscript:
		return "<sup>" + text + "</sup>"
	default:
		return token(tagInterpreted, key)
	}
}
