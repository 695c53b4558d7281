package inline

import "fmt"

// state is everything a single render mutates.
type state struct {
	roles     *Registry
	store     *store
	footnotes *footnotes
}

// pass is one whole-buffer rewrite.
type pass struct {
	name string
	run  func(st *state, buf string) (string, error)
}

// passes run in this order. Each one only sees the output of the previous.
var passes = []pass{
	{"literals", protectLiterals},
	{"interpreted text", extractInterpretedText},
	{"strong emphasis", replaceStrongEmphasis},
	{"emphasis", replaceEmphasis},
	{"internal targets", replaceInternalTargets},
	{"anonymous hyperlinks", replaceAnonymousHyperlinks},
	{"hyperlink references", replaceHyperlinkReferences},
	{"footnote references", replaceFootnoteReferences},
	{"substitution references", replaceSubstitutionReferences},
	{"interpreted text restore", restoreInterpretedText},
	{"standalone hyperlinks", replaceStandaloneHyperlinks},
	{"literals restore", restoreLiterals},
}

// Renderer renders inline markup to HTML.
// A Renderer keeps no per-render state and is safe for concurrent use,
// provided its Registry is not modified.
type Renderer struct {
	roles *Registry
}

// NewRenderer returns a Renderer resolving interpreted text with roles.
// A nil Registry means built-in roles only.
func NewRenderer(roles *Registry) *Renderer {
	if roles == nil {
		roles = NewRegistry()
	}
	return &Renderer{roles: roles}
}

// Render rewrites the inline markup in text as HTML.
// On error no output is returned; errors from markup wrap a *RenderError.
func (r *Renderer) Render(text string) (string, error) {
	st := &state{
		roles:     r.roles,
		store:     newStore(),
		footnotes: newFootnotes(),
	}

	buf := text
	for _, p := range passes {
		var err error
		buf, err = p.run(st, buf)
		if err != nil {
			return "", fmt.Errorf("%s: %w", p.name, err)
		}
	}
	return buf, nil
}
