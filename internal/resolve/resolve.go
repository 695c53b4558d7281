// Package resolve substitutes the hyperlink, substitution and anonymous
// hyperlink tokens left by the inline renderer with values from a Table.
package resolve

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/alnah/go-burst/internal/inline"
)

// Sentinel errors for strict resolution.
var (
	ErrUnknownTarget             = errors.New("unknown hyperlink target")
	ErrUnknownSubstitution       = errors.New("unknown substitution")
	ErrAnonymousTargetsExhausted = errors.New("anonymous hyperlink targets exhausted")
)

// tokenPattern matches every token the renderer leaves for a resolver.
// The renderer never leaves tokens inside code elements, so a code element
// is matched whole and copied: token text there is literal content.
var tokenPattern = regexp.MustCompile(`(?s)(<code[\s>].*?</code>)|\[\[(hlr|subr):([0-9a-f]{40})\]\]|` + regexp.QuoteMeta(inline.AnonymousToken))

// Table holds the values tokens resolve to.
type Table struct {
	// Targets maps reference names, exactly as written in the text, to URLs.
	Targets map[string]string `yaml:"targets"`

	// Anonymous holds URLs for anonymous hyperlinks, in document order.
	Anonymous []string `yaml:"anonymous"`

	// Substitutions maps substitution names to replacement text.
	Substitutions map[string]string `yaml:"substitutions"`
}

// Resolver rewrites tokens using a Table. It is safe for concurrent use.
type Resolver struct {
	targets       map[string]string
	substitutions map[string]string
	anonymous     []string
	lenient       bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLenient leaves tokens without a table entry in place instead of failing.
func WithLenient() Option {
	return func(r *Resolver) { r.lenient = true }
}

// New indexes t by content key. Values are HTML-escaped once, here.
func New(t Table, opts ...Option) *Resolver {
	r := &Resolver{
		targets:       make(map[string]string, len(t.Targets)),
		substitutions: make(map[string]string, len(t.Substitutions)),
		anonymous:     make([]string, len(t.Anonymous)),
	}
	for label, url := range t.Targets {
		r.targets[inline.Key(label)] = html.EscapeString(url)
	}
	for name, text := range t.Substitutions {
		r.substitutions[inline.Key(name)] = html.EscapeString(text)
	}
	for i, url := range t.Anonymous {
		r.anonymous[i] = html.EscapeString(url)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns fragment with every known token replaced.
// Anonymous hyperlinks take Table.Anonymous entries in order of appearance.
func (r *Resolver) Resolve(fragment string) (string, error) {
	matches := tokenPattern.FindAllStringSubmatchIndex(fragment, -1)
	if len(matches) == 0 {
		return fragment, nil
	}

	var b strings.Builder
	b.Grow(len(fragment))
	last, anon := 0, 0
	for _, m := range matches {
		b.WriteString(fragment[last:m[0]])
		last = m[1]
		tok := fragment[m[0]:m[1]]

		if m[2] >= 0 {
			b.WriteString(tok)
			continue
		}

		if m[4] < 0 {
			if anon < len(r.anonymous) {
				b.WriteString(r.anonymous[anon])
				anon++
				continue
			}
			if !r.lenient {
				return "", fmt.Errorf("%w: %d targets for more anonymous hyperlinks", ErrAnonymousTargetsExhausted, len(r.anonymous))
			}
			b.WriteString(tok)
			continue
		}

		tag, key := fragment[m[4]:m[5]], fragment[m[6]:m[7]]
		table, sentinel := r.targets, ErrUnknownTarget
		if tag == "subr" {
			table, sentinel = r.substitutions, ErrUnknownSubstitution
		}
		if value, ok := table[key]; ok {
			b.WriteString(value)
			continue
		}
		if !r.lenient {
			return "", fmt.Errorf("%w: key %s", sentinel, key)
		}
		b.WriteString(tok)
	}
	b.WriteString(fragment[last:])
	return b.String(), nil
}
