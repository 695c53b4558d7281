package burst

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

// CodeRoleName is the role name WithCodeRole registers.
const CodeRoleName = "code"

// CodeRole returns a protected role highlighting its text with chroma.
// language is a chroma lexer name or alias, or a linguist alias such as
// "node". Unknown languages fall back to plain text. Output is
// <code class="highlight language-NAME"> holding class-based token spans;
// styling is left to the page's stylesheet.
func CodeRole(language string) Role {
	name := "plaintext"
	lexer := lookupLexer(language)
	if lexer != nil {
		name = strings.ToLower(strings.ReplaceAll(lexer.Config().Name, " ", "-"))
	} else {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.PreventSurroundingPre(true),
	)
	open := `<code class="highlight language-` + name + `">`

	return Role{
		Protected: true,
		Render: func(_, text string) (string, error) {
			iterator, err := lexer.Tokenise(nil, text)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrHighlight, err)
			}
			var b strings.Builder
			b.WriteString(open)
			if err := formatter.Format(&b, styles.Fallback, iterator); err != nil {
				return "", fmt.Errorf("%w: %v", ErrHighlight, err)
			}
			b.WriteString("</code>")
			return b.String(), nil
		},
	}
}

func lookupLexer(language string) chroma.Lexer {
	if language == "" {
		return nil
	}
	if lexer := lexers.Get(language); lexer != nil {
		return lexer
	}
	if linguist, ok := enry.GetLanguageByAlias(language); ok {
		return lexers.Get(linguist)
	}
	return nil
}
