// Package blocks turns rendered inline HTML into block-level HTML
// (paragraphs, section headings, lists) and wraps it in a document.
package blocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	goldhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrBlockConversion indicates block conversion failed.
var ErrBlockConversion = errors.New("block conversion failed")

// documentTemplate wraps a body in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// entityFixes maps footnote symbol entities that are not HTML5 named
// references to ones that are, so goldmark keeps them as entities.
var entityFixes = strings.NewReplacer(
	"&asterisk;", "&ast;",
	"&numbersign;", "&num;",
)

// Converter turns an inline HTML fragment into block HTML.
type Converter interface {
	ToHTML(ctx context.Context, fragment string) (string, error)
}

// GoldmarkConverter finds blocks with goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter that only recognizes block
// structure. Inline markup was already rendered, so raw HTML is the only
// inline syntax goldmark is given.
func NewGoldmarkConverter() *GoldmarkConverter {
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewSetextHeadingParser(), 100),
			util.Prioritized(parser.NewThematicBreakParser(), 200),
			util.Prioritized(parser.NewListParser(), 300),
			util.Prioritized(parser.NewListItemParser(), 400),
			util.Prioritized(parser.NewCodeBlockParser(), 500),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewRawHTMLParser(), 400),
		),
		parser.WithAutoHeadingID(),
	)
	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithRendererOptions(
			goldhtml.WithXHTML(),
			// The fragment is our own renderer's output; literals are escaped there.
			goldhtml.WithUnsafe(),
			renderer.WithNodeRenderers(util.Prioritized(&indentedBlockRenderer{}, 100)),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts fragment to block HTML.
// Goldmark does not take a context, so conversion runs in a goroutine and
// ToHTML returns early when ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(entityFixes.Replace(fragment)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrBlockConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// indentedBlockRenderer renders indented blocks. After a paragraph ending
// in "::" the block is a literal block, otherwise a block quote. Lines are
// already HTML and are written unescaped.
type indentedBlockRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *indentedBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindCodeBlock, r.render)
}

func (r *indentedBlockRenderer) render(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	open, closing := "<blockquote>\n", "</blockquote>\n"
	if introducesLiteral(n.PreviousSibling(), source) {
		open, closing = `<pre class="literal-block">`, "</pre>\n"
	}

	_, _ = w.WriteString(open)
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		_, _ = w.Write(line.Value(source))
	}
	_, _ = w.WriteString(closing)
	return ast.WalkSkipChildren, nil
}

// introducesLiteral reports whether n is a paragraph ending in "::".
func introducesLiteral(n ast.Node, source []byte) bool {
	p, ok := n.(*ast.Paragraph)
	if !ok || p.Lines().Len() == 0 {
		return false
	}
	last := p.Lines().At(p.Lines().Len() - 1)
	return strings.HasSuffix(strings.TrimSpace(string(last.Value(source))), "::")
}

// Document wraps body in an HTML5 document titled title.
func Document(title, body string) string {
	if title == "" {
		title = "Document"
	}
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), body)
}
