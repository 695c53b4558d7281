package inline

import "github.com/dlclark/regexp2"

// Building blocks shared by several patterns. Word characters are ASCII only.
const (
	notWordNext = `(?![A-Za-z0-9_])`
	anchorElem  = `<a\s[^>]*>.*?</a>`
	htmlTag     = `</?[A-Za-z][A-Za-z0-9]*(?:\s[^<>]*)?/?>`
	tokenElem   = `\[\[[^\[\]\s]*\]\]`
)

// Precompiled pass patterns. Patterns with a "skip" group match spans that
// must be left as they are; the pass returns those matches unchanged.
var (
	literalPattern = regexp2.MustCompile("``(?<text>.+?)``", regexp2.Singleline)

	// Internal targets (_`x`) and hyperlink references (`x`_, `x`__) are
	// skipped so passes 5-7 still see their backticks.
	interpretedPattern = regexp2.MustCompile(
		"(?<skip>_`[^`]+`|`[^`]+`__?"+notWordNext+")"+
			"|(?<!_)(?::(?<pre>"+roleName+"):)?`(?<text>[^`]+)`(?::(?<post>"+roleName+"):)?",
		regexp2.None)

	strongPattern = regexp2.MustCompile(`\*\*(?<text>.+?)\*\*`, regexp2.Singleline)

	// A star followed by "]_" belongs to an auto-symbol footnote reference.
	emphasisPattern = regexp2.MustCompile(`\*(?!\]_)(?<text>[^*]+?)\*(?!\]_)`, regexp2.None)

	internalTargetPattern = regexp2.MustCompile("_`(?<text>[^`]+)`", regexp2.None)

	anonymousPattern = regexp2.MustCompile(
		"(?<skip>"+anchorElem+")"+
			"|(?<word>[A-Za-z0-9_]+)__"+notWordNext+
			"|`(?<text>[^`]+)`__"+notWordNext,
		regexp2.Singleline)

	hyperlinkPattern = regexp2.MustCompile(
		"(?<skip>"+anchorElem+"|"+htmlTag+")"+
			"|`(?<text>[^`]+?) <(?<target>[^`<>]+)>`_"+notWordNext+
			"|`(?<ref>[^`]+)`_"+notWordNext+
			"|(?<word>[A-Za-z0-9_]+)_"+notWordNext,
		regexp2.Singleline)

	footnotePattern = regexp2.MustCompile(`\[(?<label>[0-9]+|#|\*)\]_`, regexp2.None)

	// The substituted name neither starts nor ends with whitespace.
	substitutionPattern = regexp2.MustCompile(`\|(?<text>[^|\s](?:[^|]*[^|\s])?)\|`, regexp2.None)

	standaloneURIPattern = regexp2.MustCompile(
		"(?<skip>"+anchorElem+"|"+tokenElem+"|"+htmlTag+")"+
			`|(?<uri>(?:(?<scheme>https?|s?ftps?|file|smb|afp|nfs|(?:x-)?man(?:-page)?|gopher)://|(?<mailto>mailto):)`+
			`[-:@a-zA-Z0-9_.,~%+/?=&#;]+(?<![-.,?:#;]))`,
		regexp2.Singleline)
)
