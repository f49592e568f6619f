package vectorizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// minTokenLen is the shortest token, in runes, that enters the vocabulary.
const minTokenLen = 2

// Tokenizer splits text into case-normalized word tokens. A token is a
// maximal run of letters, digits, combining marks and underscores that is at
// least minTokenLen runes long. Not safe for concurrent use.
type Tokenizer struct {
	caser cases.Caser
}

// NewTokenizer creates a Tokenizer with language-neutral lower-casing.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{caser: cases.Lower(language.Und)}
}

// Normalize applies the same cleaning, NFC composition and lower-casing
// that Tokenize applies before splitting. Stop words go through it so their
// casing always matches the tokens they are compared against.
func (t *Tokenizer) Normalize(text string) string {
	text = cleanText(text)
	text = norm.NFC.String(text)
	return t.caser.String(text)
}

// Tokenize returns the tokens of text in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	text = t.Normalize(text)

	var tokens []string
	for _, field := range strings.FieldsFunc(text, isSeparator) {
		if len([]rune(field)) < minTokenLen {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// cleanText removes control characters and replaces whitespace with spaces.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0 || r == unicode.ReplacementChar || isControl(r) {
			continue
		}
		if unicode.IsSpace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

// isSeparator reports whether r ends a token.
func isSeparator(r rune) bool {
	if r == '_' {
		return false
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.In(r, unicode.Mn, unicode.Mc)
}
