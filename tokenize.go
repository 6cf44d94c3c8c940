package sentiment

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits raw text into normalized tokens.
type Tokenizer interface {
	Tokenize(string) []Token
}

// wordTokenizer lower-cases text and splits it on anything that is not a
// word character. Punctuation becomes a separator rather than being deleted
// so "well-known" yields two tokens instead of "wellknown".
type wordTokenizer struct {
	sanitizer *strings.Replacer
}

// NewWordTokenizer returns the default Tokenizer.
func NewWordTokenizer() Tokenizer {
	return &wordTokenizer{sanitizer: sanitizer}
}

// Tokenize splits text into lower-cased word tokens. A text made only of
// punctuation or whitespace yields no tokens.
func (t *wordTokenizer) Tokenize(text string) []Token {
	clean := strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, t.sanitizer.Replace(norm.NFC.String(text)))

	fields := strings.Fields(clean)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Text: f, Position: i}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

// sentiText is the case- and punctuation-aware view of a text the scorer
// works on. Words keep their case; leading and trailing punctuation is
// stripped unless the token is itself an emoticon or pure punctuation.
type sentiText struct {
	words        []string
	lower        []string
	allCaps      []bool
	capsDiff     bool
	exclamations int
	questions    int
}

func newSentiText(text string, lex *Lexicon) *sentiText {
	text = sanitizer.Replace(norm.NFC.String(text))

	st := &sentiText{
		exclamations: strings.Count(text, "!"),
		questions:    strings.Count(text, "?"),
	}

	capsCount := 0
	for _, raw := range strings.Fields(text) {
		word := stripPunctuation(raw, lex)
		caps := isAllCaps(word)
		if caps {
			capsCount++
		}
		st.words = append(st.words, word)
		st.lower = append(st.lower, strings.ToLower(word))
		st.allCaps = append(st.allCaps, caps)
	}

	// Emphasis by capitals only counts when some, but not all, words are
	// upper-case.
	diff := len(st.words) - capsCount
	st.capsDiff = diff > 0 && diff < len(st.words)

	return st
}

func (st *sentiText) len() int {
	return len(st.words)
}

// at returns the lower-cased word at i, or "" when i is out of range.
func (st *sentiText) at(i int) string {
	if i < 0 || i >= len(st.lower) {
		return ""
	}
	return st.lower[i]
}

// phrase joins the lower-cased words from..to inclusive. It reports false
// when the span does not fit the text.
func (st *sentiText) phrase(from, to int) (string, bool) {
	if from < 0 || to >= len(st.lower) || from > to {
		return "", false
	}
	return strings.Join(st.lower[from:to+1], " "), true
}

// stripPunctuation removes surrounding punctuation from a whitespace token.
func stripPunctuation(token string, lex *Lexicon) string {
	if lex.Has(token) {
		return token
	}
	// Emoticons followed by sentence punctuation, as in ":)!" or "<3.".
	if trimmed := strings.TrimRight(token, "!?.,;"); trimmed != "" && lex.Has(trimmed) {
		return trimmed
	}
	stripped := strings.TrimFunc(token, isPunctuationRune)
	if stripped == "" {
		return token
	}
	return stripped
}

func isPunctuationRune(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// isPunctuation reports whether text consists only of punctuation or symbols.
func isPunctuation(text string) bool {
	if len(text) == 0 {
		return false
	}
	for _, r := range text {
		if !isPunctuationRune(r) {
			return false
		}
	}
	return true
}

// isWord reports whether text contains at least one letter.
func isWord(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isAllCaps(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

var sanitizer = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
	"&rsquo;", "'")
