package burst

import (
	"github.com/alnah/go-burst/internal/blocks"
	"github.com/alnah/go-burst/internal/inline"
	"github.com/alnah/go-burst/internal/resolve"
)

// RoleFunc renders the text of an interpreted text span. key is Key(text).
type RoleFunc = inline.RoleFunc

// Role is an extension role. Protected output is not rewritten by later
// passes.
type Role = inline.Role

// Table maps hyperlink labels, anonymous hyperlinks in document order and
// substitution names to their values.
type Table = resolve.Table

// Key returns the content key used in placeholder tokens for text.
func Key(text string) string {
	return inline.Key(text)
}

// Input holds the text and per-conversion options.
type Input struct {
	// Text is the inline markup to render. Empty text converts to empty output.
	Text string

	// Table resolves the placeholder tokens rendering leaves behind.
	// Nil leaves them in the output.
	Table *Table

	// Lenient keeps tokens Table has no entry for instead of failing.
	Lenient bool

	// Blocks groups the output into paragraphs, headings and lists.
	Blocks bool

	// Document wraps the output in a complete HTML document. Implies Blocks.
	Document *Document
}

// Document configures the HTML document wrapper.
type Document struct {
	Title string // Empty = "Document"
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	HTML string
}

// Option configures a Renderer or a Converter.
type Option func(*converterConfig)

// namedRole is a role waiting for registration.
type namedRole struct {
	name string
	role Role
}

// converterConfig holds options shared by Renderer and Converter.
type converterConfig struct {
	roles  []namedRole
	blocks blocks.Converter
}

// WithRole registers an extension role under name.
// Names are made of ASCII letters, digits and "_+.-", and may not shadow a
// built-in role.
func WithRole(name string, role Role) Option {
	return func(c *converterConfig) {
		c.roles = append(c.roles, namedRole{name: name, role: role})
	}
}

// WithCodeRole registers the "code" role, highlighting its text as language.
func WithCodeRole(language string) Option {
	return WithRole(CodeRoleName, CodeRole(language))
}

// withBlockConverter replaces the block layer (tests only).
func withBlockConverter(b blocks.Converter) Option {
	return func(c *converterConfig) {
		c.blocks = b
	}
}
