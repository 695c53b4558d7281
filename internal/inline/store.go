package inline

import (
	"crypto/sha1" // #nosec G505 -- content addressing, not security
	"encoding/hex"
	"strings"
)

// AnonymousToken marks the href of an anonymous hyperlink.
const AnonymousToken = "[[anon-hl]]"

// Token tags. The "[[tag:" prefix is reserved and never produced by markup.
const (
	tagLiteral      = "il"
	tagInterpreted  = "it"
	tagRaw          = "rw"
	tagHyperlink    = "hlr"
	tagSubstitution = "subr"
)

// Key returns the content key used in placeholder tokens:
// the lowercase hex SHA-1 of text.
func Key(text string) string {
	sum := sha1.Sum([]byte(text)) // #nosec G401 -- content addressing, not security
	return hex.EncodeToString(sum[:])
}

// HyperlinkToken returns the token standing in for the target of the
// hyperlink reference named label.
func HyperlinkToken(label string) string {
	return token(tagHyperlink, Key(label))
}

// SubstitutionToken returns the token standing in for the substitution
// named name.
func SubstitutionToken(name string) string {
	return token(tagSubstitution, Key(name))
}

func token(tag, key string) string {
	return "[[" + tag + ":" + key + "]]"
}

// store holds the original text behind literal, interpreted and raw tokens
// for a single render. Identical text shares one entry.
type store struct {
	tables map[string]map[string]string
}

func newStore() *store {
	return &store{tables: map[string]map[string]string{
		tagLiteral:     {},
		tagInterpreted: {},
		tagRaw:         {},
	}}
}

// put records text under tag and returns its key.
func (s *store) put(tag, text string) string {
	key := Key(text)
	s.tables[tag][key] = text
	return key
}

// protect records text under tag and returns the token to put in its place.
func (s *store) protect(tag, text string) string {
	return token(tag, s.put(tag, text))
}

// restore replaces every token of tag in buf with render(original).
// Tokens never overlap, so one Replacer pass is order independent.
func (s *store) restore(buf, tag string, render func(string) string) string {
	table := s.tables[tag]
	if len(table) == 0 {
		return buf
	}
	pairs := make([]string, 0, 2*len(table))
	for key, text := range table {
		pairs = append(pairs, token(tag, key), render(text))
	}
	return strings.NewReplacer(pairs...).Replace(buf)
}
