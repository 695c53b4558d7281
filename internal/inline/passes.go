package inline

import (
	"html"
	"strconv"

	"github.com/dlclark/regexp2"
)

// rewrite replaces every match of re in buf with the result of fn.
// After the first error no further match is rewritten and the error is
// returned instead of the buffer.
func rewrite(re *regexp2.Regexp, buf string, fn func(m *regexp2.Match) (string, error)) (string, error) {
	var firstErr error
	out, err := re.ReplaceFunc(buf, func(m regexp2.Match) string {
		if firstErr != nil {
			return m.String()
		}
		repl, err := fn(&m)
		if err != nil {
			firstErr = err
			return m.String()
		}
		return repl
	}, -1, -1)
	if err != nil {
		return "", err
	}
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// group returns the text captured by the named group and whether it took
// part in the match.
func group(m *regexp2.Match, name string) (string, bool) {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

func skipped(m *regexp2.Match) bool {
	_, ok := group(m, "skip")
	return ok
}

func anchor(href, text string) string {
	return "<a href='" + href + "'>" + text + "</a>"
}

func protectLiterals(st *state, buf string) (string, error) {
	return rewrite(literalPattern, buf, func(m *regexp2.Match) (string, error) {
		text, _ := group(m, "text")
		return st.store.protect(tagLiteral, text), nil
	})
}

func extractInterpretedText(st *state, buf string) (string, error) {
	return rewrite(interpretedPattern, buf, func(m *regexp2.Match) (string, error) {
		if skipped(m) {
			return m.String(), nil
		}
		role, ok := group(m, "pre")
		if !ok {
			role, _ = group(m, "post")
		}
		text, _ := group(m, "text")
		key := st.store.put(tagInterpreted, text)

		out, protect, err := st.roles.Resolve(role, key, text)
		if err != nil {
			return "", err
		}
		if protect {
			return st.store.protect(tagRaw, out), nil
		}
		return out, nil
	})
}

func replaceStrongEmphasis(_ *state, buf string) (string, error) {
	return rewrite(strongPattern, buf, func(m *regexp2.Match) (string, error) {
		text, _ := group(m, "text")
		return "<strong>" + text + "</strong>", nil
	})
}

func replaceEmphasis(_ *state, buf string) (string, error) {
	return rewrite(emphasisPattern, buf, func(m *regexp2.Match) (string, error) {
		text, _ := group(m, "text")
		return "<em>" + text + "</em>", nil
	})
}

func replaceInternalTargets(_ *state, buf string) (string, error) {
	return rewrite(internalTargetPattern, buf, func(m *regexp2.Match) (string, error) {
		text, _ := group(m, "text")
		return anchor(HyperlinkToken(text), text), nil
	})
}

func replaceAnonymousHyperlinks(_ *state, buf string) (string, error) {
	return rewrite(anonymousPattern, buf, func(m *regexp2.Match) (string, error) {
		if skipped(m) {
			return m.String(), nil
		}
		text, ok := group(m, "word")
		if !ok {
			text, _ = group(m, "text")
		}
		return anchor(AnonymousToken, text), nil
	})
}

func replaceHyperlinkReferences(_ *state, buf string) (string, error) {
	return rewrite(hyperlinkPattern, buf, func(m *regexp2.Match) (string, error) {
		if skipped(m) {
			return m.String(), nil
		}
		if target, ok := group(m, "target"); ok {
			text, _ := group(m, "text")
			return anchor(target, text), nil
		}
		ref, ok := group(m, "ref")
		if !ok {
			ref, _ = group(m, "word")
		}
		return anchor(HyperlinkToken(ref), ref), nil
	})
}

func replaceFootnoteReferences(st *state, buf string) (string, error) {
	return rewrite(footnotePattern, buf, func(m *regexp2.Match) (string, error) {
		label, _ := group(m, "label")
		id, text := label, label
		switch label {
		case "#":
			n := strconv.Itoa(st.footnotes.nextNumber())
			id, text = n, n
		case "*":
			symbol, err := st.footnotes.nextSymbol()
			if err != nil {
				return "", err
			}
			id, text = symbol, symbolEntity(symbol)
		}
		return "[" + anchor("#footnote-"+id, text) + "]", nil
	})
}

func replaceSubstitutionReferences(_ *state, buf string) (string, error) {
	return rewrite(substitutionPattern, buf, func(m *regexp2.Match) (string, error) {
		text, _ := group(m, "text")
		return SubstitutionToken(text), nil
	})
}

func restoreInterpretedText(st *state, buf string) (string, error) {
	return st.store.restore(buf, tagInterpreted, func(text string) string { return text }), nil
}

func replaceStandaloneHyperlinks(_ *state, buf string) (string, error) {
	return rewrite(standaloneURIPattern, buf, func(m *regexp2.Match) (string, error) {
		if skipped(m) {
			return m.String(), nil
		}
		uri, _ := group(m, "uri")
		scheme, ok := group(m, "scheme")
		if !ok {
			scheme, _ = group(m, "mailto")
		}
		switch scheme {
		case "http", "https":
			return `<a href="` + uri + `">` + uri + `</a>`, nil
		default:
			return "", &RenderError{Err: ErrUnknownURIScheme, Subject: scheme}
		}
	})
}

func restoreLiterals(st *state, buf string) (string, error) {
	buf = st.store.restore(buf, tagRaw, func(out string) string { return out })
	return st.store.restore(buf, tagLiteral, func(text string) string {
		return "<code>" + html.EscapeString(text) + "</code>"
	}), nil
}
