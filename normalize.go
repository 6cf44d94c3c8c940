package sentiment

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball/english"
)

// StopwordSet decides which tokens carry no content.
type StopwordSet interface {
	Contains(word string) bool
}

// Stemmer reduces a word to its root by suffix stripping.
type Stemmer interface {
	Stem(word string) string
}

// Lemmatizer reduces a word to its dictionary form.
type Lemmatizer interface {
	Lemma(word string) string
}

// Normalizer turns raw text into normalized tokens in four stages:
// tokenize, remove stopwords, then stem and lemmatize, where stemming and
// lemmatization both start from the stopword-filtered tokens.
//
// A Normalizer holds only read-only data and is safe for concurrent use.
type Normalizer struct {
	tokenizer  Tokenizer
	stopwords  StopwordSet
	stemmer    Stemmer
	lemmatizer Lemmatizer
}

// NormalizerOptFunc represents a setting that replaces one stage of a
// Normalizer.
type NormalizerOptFunc func(*Normalizer)

// UsingTokenizer sets the tokenization stage.
func UsingTokenizer(x Tokenizer) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.tokenizer = x
	}
}

// UsingStopwords sets the stopword set.
func UsingStopwords(x StopwordSet) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.stopwords = x
	}
}

// UsingStemmer sets the stemming stage.
func UsingStemmer(x Stemmer) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.stemmer = x
	}
}

// UsingLemmatizer sets the lemmatization stage.
func UsingLemmatizer(x Lemmatizer) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.lemmatizer = x
	}
}

// NewNormalizer creates a Normalizer. Stages not given as options default to
// English: the bbalet stopword list, the Snowball English stemmer and the
// golem English lemmatizer. Loading the lemmatizer dictionary can fail.
func NewNormalizer(opts ...NormalizerOptFunc) (*Normalizer, error) {
	n := new(Normalizer)
	for _, applyOpt := range opts {
		applyOpt(n)
	}

	if n.tokenizer == nil {
		n.tokenizer = NewWordTokenizer()
	}
	if n.stopwords == nil {
		n.stopwords = EnglishStopwords()
	}
	if n.stemmer == nil {
		n.stemmer = EnglishStemmer()
	}
	if n.lemmatizer == nil {
		lemmatizer, err := EnglishLemmatizer()
		if err != nil {
			return nil, err
		}
		n.lemmatizer = lemmatizer
	}

	return n, nil
}

// Tokenize runs the tokenization stage.
func (n *Normalizer) Tokenize(text string) []Token {
	return n.tokenizer.Tokenize(text)
}

// RemoveStopwords drops stopwords and punctuation-only tokens, preserving
// the order of the survivors.
func (n *Normalizer) RemoveStopwords(tokens []Token) []Token {
	var kept []Token
	for _, tok := range tokens {
		if tok.Text == "" || isPunctuation(tok.Text) || n.stopwords.Contains(tok.Text) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// Stem replaces every token with its stem.
func (n *Normalizer) Stem(tokens []Token) []Token {
	return mapTokens(tokens, n.stemmer.Stem)
}

// Lemmatize replaces every token with its lemma.
func (n *Normalizer) Lemmatize(tokens []Token) []Token {
	return mapTokens(tokens, n.lemmatizer.Lemma)
}

// Normalize runs the full pipeline and returns the lemmatized tokens.
func (n *Normalizer) Normalize(text string) []Token {
	return n.Lemmatize(n.RemoveStopwords(n.Tokenize(text)))
}

// Reduce runs the pipeline and returns the branch selected by r.
func (n *Normalizer) Reduce(text string, r Reduction) []Token {
	filtered := n.RemoveStopwords(n.Tokenize(text))
	if r == Stemmed {
		return n.Stem(filtered)
	}
	return n.Lemmatize(filtered)
}

// Stepwise runs every stage and returns all intermediate results.
func (n *Normalizer) Stepwise(text string) Stages {
	tokens := n.Tokenize(text)
	filtered := n.RemoveStopwords(tokens)
	return Stages{
		Tokens:     tokens,
		Filtered:   filtered,
		Stemmed:    n.Stem(filtered),
		Lemmatized: n.Lemmatize(filtered),
	}
}

// JoinTokens joins token texts with single spaces.
func JoinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

// mapTokens derives a new token slice; the input is left untouched. A stage
// that yields an empty form keeps the original text.
func mapTokens(tokens []Token, fn func(string) string) []Token {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		derived := fn(tok.Text)
		if derived == "" {
			derived = tok.Text
		}
		out[i] = Token{Text: derived, Position: tok.Position}
	}
	return out
}

// wordSet is a StopwordSet backed by a fixed list.
type wordSet map[string]bool

// NewStopwordSet creates a StopwordSet from a word list.
func NewStopwordSet(words ...string) StopwordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

func (s wordSet) Contains(word string) bool {
	return s[strings.ToLower(word)]
}

// unionStopwords reports a stopword when any of its sets does.
type unionStopwords []StopwordSet

func (u unionStopwords) Contains(word string) bool {
	for _, set := range u {
		if set.Contains(word) {
			return true
		}
	}
	return false
}

// contractionStopwords fills the gaps of the bbalet English list: the
// pronoun "i" and the fragments left when the tokenizer splits contractions
// such as "don't" or "we've" at the apostrophe.
var contractionStopwords = []string{
	"i", "s", "t", "d", "ll", "m", "o", "re", "ve", "y", "ma",
	"ain", "aren", "couldn", "didn", "doesn", "don", "hadn", "hasn", "haven",
	"isn", "mightn", "mustn", "needn", "shan", "shouldn", "wasn", "weren",
	"won", "wouldn",
}

// libraryStopwords asks the bbalet/stopwords list whether a word is a
// stopword by checking whether cleaning removes it entirely.
type libraryStopwords struct {
	langCode string
}

// EnglishStopwords returns the English stopword set: the bbalet list plus
// the pronoun and contraction fragments it lacks.
func EnglishStopwords() StopwordSet {
	return unionStopwords{
		libraryStopwords{langCode: "en"},
		NewStopwordSet(contractionStopwords...),
	}
}

func (s libraryStopwords) Contains(word string) bool {
	// The library's word segmenter drops digits, so only words with letters
	// can be judged.
	if !isWord(word) {
		return false
	}
	return strings.TrimSpace(stopwords.CleanString(word, s.langCode, false)) == ""
}

// StemmerFunc adapts a function to the Stemmer interface.
type StemmerFunc func(string) string

func (f StemmerFunc) Stem(word string) string {
	return f(word)
}

// EnglishStemmer returns the Snowball (Porter2) English stemmer.
func EnglishStemmer() Stemmer {
	return StemmerFunc(func(word string) string {
		return english.Stem(word, true)
	})
}

// LemmatizerFunc adapts a function to the Lemmatizer interface.
type LemmatizerFunc func(string) string

func (f LemmatizerFunc) Lemma(word string) string {
	return f(word)
}

// EnglishLemmatizer loads the golem English dictionary.
func EnglishLemmatizer() (Lemmatizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemma dictionary: %w", err)
	}
	return lemmatizer, nil
}
