package sentiment

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyLexicon is returned when a lexicon would be built without any
// valenced words.
var ErrEmptyLexicon = errors.New("lexicon has no sentiment words")

const (
	// Empirically derived mean intensity change for booster words.
	boostIncrement = 0.293
	boostDecrement = -0.293
)

// BoosterKind tells whether a degree modifier strengthens or weakens.
type BoosterKind string

const (
	Increase BoosterKind = "increase"
	Decrease BoosterKind = "decrease"
)

// Booster describes a degree modifier such as "extremely" or "slightly".
type Booster struct {
	Kind      BoosterKind
	Magnitude float64
}

// delta returns the signed adjustment of the booster.
func (b Booster) delta() float64 {
	if b.Kind == Decrease {
		return -b.Magnitude
	}
	return b.Magnitude
}

// LexiconSeed is the raw data a Lexicon is built from. Boosters map a word to
// a signed delta; positive values intensify, negative values dampen.
type LexiconSeed struct {
	Words        map[string]float64
	Boosters     map[string]float64
	Negations    []string
	Idioms       map[string]float64
	Contrastives []string
}

// Lexicon is an immutable word-to-valence store with the modifier tables the
// scorer needs. It is safe for concurrent use.
type Lexicon struct {
	words        map[string]float64
	boosters     map[string]float64
	negations    map[string]bool
	idioms       map[string]float64
	contrastives map[string]bool
}

// ExternalLexicon represents a lexicon file that extends the seed table.
type ExternalLexicon struct {
	Words        []WordEntry    `json:"words,omitempty" yaml:"words,omitempty"`
	Boosters     []BoosterEntry `json:"boosters,omitempty" yaml:"boosters,omitempty"`
	Intensifiers []string       `json:"intensifiers,omitempty" yaml:"intensifiers,omitempty"`
	Diminishers  []string       `json:"diminishers,omitempty" yaml:"diminishers,omitempty"`
	Negations    []string       `json:"negations,omitempty" yaml:"negations,omitempty"`
	Idioms       []WordEntry    `json:"idioms,omitempty" yaml:"idioms,omitempty"`
	Contrastives []string       `json:"contrastives,omitempty" yaml:"contrastives,omitempty"`
}

// WordEntry is a word or phrase with its valence.
type WordEntry struct {
	Word    string  `json:"word" yaml:"word"`
	Valence float64 `json:"valence" yaml:"valence"`
}

// BoosterEntry is a modifier with an explicit signed factor.
type BoosterEntry struct {
	Word   string  `json:"word" yaml:"word"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// NewLexicon builds a Lexicon from seed data. Keys are lower-cased so every
// lookup is case-insensitive; a later duplicate replaces an earlier one.
func NewLexicon(seed LexiconSeed) (*Lexicon, error) {
	lex := &Lexicon{
		words:        make(map[string]float64, len(seed.Words)),
		boosters:     make(map[string]float64, len(seed.Boosters)),
		negations:    make(map[string]bool, len(seed.Negations)),
		idioms:       make(map[string]float64, len(seed.Idioms)),
		contrastives: make(map[string]bool, len(seed.Contrastives)),
	}

	for word, valence := range seed.Words {
		if err := lex.addWord(word, valence); err != nil {
			return nil, err
		}
	}
	for word, delta := range seed.Boosters {
		if err := lex.addBooster(word, delta); err != nil {
			return nil, err
		}
	}
	for phrase, valence := range seed.Idioms {
		if err := lex.addIdiom(phrase, valence); err != nil {
			return nil, err
		}
	}
	for _, word := range seed.Negations {
		lex.negations[normalizeKey(word)] = true
	}
	for _, word := range seed.Contrastives {
		lex.contrastives[normalizeKey(word)] = true
	}

	if len(lex.words) == 0 {
		return nil, ErrEmptyLexicon
	}
	return lex, nil
}

// DefaultLexicon returns the built-in English lexicon.
func DefaultLexicon() *Lexicon {
	lex, err := NewLexicon(DefaultSeed())
	if err != nil {
		panic(fmt.Sprintf("sentiment: invalid built-in lexicon: %v", err))
	}
	return lex
}

// LoadLexicon builds the built-in lexicon and merges an external JSON or YAML
// file into it. An empty path yields the built-in lexicon.
func LoadLexicon(path string) (*Lexicon, error) {
	seed := DefaultSeed()
	if path != "" {
		external, err := readExternalLexicon(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load external lexicon: %w", err)
		}
		seed = external.mergeInto(seed)
	}
	return NewLexicon(seed)
}

// readExternalLexicon parses a lexicon file, choosing the decoder by extension.
func readExternalLexicon(path string) (*ExternalLexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	var external ExternalLexicon
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &external); err != nil {
			return nil, fmt.Errorf("error parsing lexicon YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &external); err != nil {
			return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
		}
	}
	return &external, nil
}

// mergeInto returns a copy of seed extended with the external entries.
// Keys are folded the way the Lexicon folds them, so an external entry
// replaces a seed entry that differs from it only in case or spacing.
func (e *ExternalLexicon) mergeInto(seed LexiconSeed) LexiconSeed {
	merged := LexiconSeed{
		Words:        make(map[string]float64, len(seed.Words)+len(e.Words)),
		Boosters:     make(map[string]float64, len(seed.Boosters)+len(e.Boosters)),
		Idioms:       make(map[string]float64, len(seed.Idioms)+len(e.Idioms)),
		Negations:    append(append([]string(nil), seed.Negations...), e.Negations...),
		Contrastives: append(append([]string(nil), seed.Contrastives...), e.Contrastives...),
	}
	for k, v := range seed.Words {
		merged.Words[normalizeKey(k)] = v
	}
	for k, v := range seed.Boosters {
		merged.Boosters[normalizeKey(k)] = v
	}
	for k, v := range seed.Idioms {
		merged.Idioms[idiomKey(k)] = v
	}

	for _, entry := range e.Words {
		merged.Words[normalizeKey(entry.Word)] = entry.Valence
	}
	for _, entry := range e.Idioms {
		merged.Idioms[idiomKey(entry.Word)] = entry.Valence
	}
	for _, entry := range e.Boosters {
		merged.Boosters[normalizeKey(entry.Word)] = entry.Factor
	}
	for _, word := range e.Intensifiers {
		merged.Boosters[normalizeKey(word)] = boostIncrement
	}
	for _, word := range e.Diminishers {
		merged.Boosters[normalizeKey(word)] = boostDecrement
	}
	return merged
}

func (l *Lexicon) addWord(word string, valence float64) error {
	key := normalizeKey(word)
	if key == "" {
		return fmt.Errorf("empty lexicon word")
	}
	if math.IsNaN(valence) || math.IsInf(valence, 0) {
		return fmt.Errorf("invalid valence for %q", word)
	}
	l.words[key] = valence
	return nil
}

func (l *Lexicon) addBooster(word string, delta float64) error {
	key := normalizeKey(word)
	if key == "" || delta == 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return fmt.Errorf("invalid booster %q: %v", word, delta)
	}
	l.boosters[key] = delta
	return nil
}

func (l *Lexicon) addIdiom(phrase string, valence float64) error {
	key := idiomKey(phrase)
	if key == "" || math.IsNaN(valence) || math.IsInf(valence, 0) {
		return fmt.Errorf("invalid idiom %q: %v", phrase, valence)
	}
	l.idioms[key] = valence
	return nil
}

// Valence returns the base valence of a word. A miss is not an error; it
// means the word carries no sentiment.
func (l *Lexicon) Valence(word string) (float64, bool) {
	v, ok := l.words[normalizeKey(word)]
	return v, ok
}

// Has reports whether the word has a valence entry.
func (l *Lexicon) Has(word string) bool {
	_, ok := l.words[normalizeKey(word)]
	return ok
}

// IsNegation reports whether the word is in the closed negation set.
func (l *Lexicon) IsNegation(word string) bool {
	return l.negations[normalizeKey(word)]
}

// Booster returns the degree modifier for a word or phrase, if any.
func (l *Lexicon) Booster(word string) (Booster, bool) {
	delta, ok := l.boosters[normalizeKey(word)]
	if !ok {
		return Booster{}, false
	}
	if delta < 0 {
		return Booster{Kind: Decrease, Magnitude: -delta}, true
	}
	return Booster{Kind: Increase, Magnitude: delta}, true
}

// Idiom returns the fixed valence of a multi-word phrase.
func (l *Lexicon) Idiom(phrase string) (float64, bool) {
	v, ok := l.idioms[normalizeKey(phrase)]
	return v, ok
}

// IsContrastive reports whether the word is a contrastive conjunction.
func (l *Lexicon) IsContrastive(word string) bool {
	return l.contrastives[normalizeKey(word)]
}

// Len returns the number of valenced words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

func normalizeKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// idiomKey folds a phrase and collapses its inner whitespace.
func idiomKey(phrase string) string {
	return strings.Join(strings.Fields(normalizeKey(phrase)), " ")
}
