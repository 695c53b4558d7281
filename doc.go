// Package burst renders reStructuredText-style inline markup to HTML.
//
// # Quick Start
//
// Render a paragraph with the built-in roles:
//
//	html, err := burst.Render("This is *emphasised* and ``literal``.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// This is <em>emphasised</em> and <code>literal</code>.
//
// # Rendering Passes
//
// Markup is rewritten by an ordered series of whole-text passes:
//
//  1. Inline literals are set aside
//  2. Interpreted text is rendered through its role
//  3. Strong emphasis, then emphasis
//  4. Internal targets, anonymous and named hyperlink references
//  5. Footnote and substitution references
//  6. Interpreted text and literals are put back
//  7. Bare http and https URIs become links
//
// Hyperlink references, anonymous hyperlinks and substitution references
// come out as placeholder tokens ([[hlr:KEY]], [[anon-hl]], [[subr:KEY]])
// since their targets live outside the inline text. KEY is the SHA-1 hex
// digest of the label (see Key). Resolve them with a Table:
//
//	out, err := burst.Resolve(html, burst.Table{
//	    Targets: map[string]string{"Go": "https://go.dev"},
//	}, false)
//
// # Roles
//
// Interpreted text (`text`, :role:`text` or `text`:role:) is rendered by
// a role. Built-in roles are the default title role, func, sub (subscript)
// and sup (superscript). Add more with WithRole, or WithCodeRole for
// syntax highlighted code:
//
//	r, err := burst.NewRenderer(
//	    burst.WithRole("kbd", burst.Role{Render: func(_, text string) (string, error) {
//	        return "<kbd>" + text + "</kbd>", nil
//	    }}),
//	    burst.WithCodeRole("go"),
//	)
//
// # Documents
//
// Converter chains rendering, reference resolution and an optional block
// layer that groups the result into paragraphs, headings and lists:
//
//	conv, err := burst.NewConverter()
//	result, err := conv.Convert(ctx, burst.Input{
//	    Text:     text,
//	    Table:    &table,
//	    Document: &burst.Document{Title: "Notes"},
//	})
//
// # Concurrency
//
// Renderer and Converter keep no state between calls and are safe for
// concurrent use.
package burst
