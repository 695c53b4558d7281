// Package inline renders inline reStructuredText-style markup to HTML.
//
// Rendering is a fixed sequence of whole-buffer passes:
//  1. Protect ``literal`` spans behind placeholder tokens
//  2. Extract interpreted text and dispatch it to a role
//  3. Strong emphasis, then emphasis
//  4. Internal targets, anonymous hyperlinks, hyperlink references
//  5. Footnote references and substitution references
//  6. Restore interpreted text, link standalone URIs, restore literals
//
// A pass never re-scans its own output. Spans that a later pass must see
// untouched are swapped for tokens of the form [[tag:key]], where key is the
// SHA-1 of the original text (see Key). Literal, interpreted and protected
// role tokens are always resolved before Render returns. Hyperlink reference
// ([[hlr:key]]), substitution ([[subr:key]]) and anonymous hyperlink
// ([[anon-hl]]) tokens are left in the output for an external resolver.
package inline
