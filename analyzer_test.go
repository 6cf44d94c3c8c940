package sentiment

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	testAnalyzerOnce sync.Once
	testAnalyzer     *Analyzer
	testAnalyzerErr  error
)

func newTestAnalyzer(t testing.TB) *Analyzer {
	t.Helper()
	testAnalyzerOnce.Do(func() {
		testAnalyzer, testAnalyzerErr = NewAnalyzer(DefaultConfig())
	})
	if testAnalyzerErr != nil {
		t.Fatalf("NewAnalyzer: %v", testAnalyzerErr)
	}
	return testAnalyzer
}

func TestAnalyzeEmpty(t *testing.T) {
	a := newTestAnalyzer(t)
	for _, text := range []string{"", "   "} {
		r := a.Analyze(text)
		if r.OriginalScores.Compound != 0 || r.Label != Neutral || r.NormalizedText != "" {
			t.Errorf("Analyze(%q) = %+v, want a neutral result", text, r)
		}
		if r.OriginalScores.Neutral != 1 || r.NormalizedScores.Neutral != 1 {
			t.Errorf("Analyze(%q): expected neutral bundles, got %+v", text, r)
		}
	}
}

func TestAnalyzeScenarios(t *testing.T) {
	tests := []struct {
		text  string
		label Sentiment
		check func(float64) bool
		desc  string
	}{
		{"I love this product!", Positive, func(c float64) bool { return c > 0.5 }, "Strong positive"},
		{"This is terrible.", Negative, func(c float64) bool { return c < -0.3 }, "Plain negative"},
		{"The weather is nice today.", Positive, func(c float64) bool { return c > 0 }, "Mild positive"},
		{"The table is made of wood.", Neutral, func(c float64) bool { return c == 0 }, "No sentiment"},
	}

	a := newTestAnalyzer(t)
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			r := a.Analyze(tt.text)
			if r.Label != tt.label {
				t.Errorf("Label: got %s, want %s", r.Label, tt.label)
			}
			if !tt.check(r.OriginalScores.Compound) {
				t.Errorf("Unexpected compound %.4f for %q", r.OriginalScores.Compound, tt.text)
			}
			if r.OriginalText != tt.text {
				t.Errorf("Original text not preserved: %q", r.OriginalText)
			}
		})
	}
}

func TestAnalyzeNormalizedText(t *testing.T) {
	a := newTestAnalyzer(t)
	r := a.Analyze("I love this product!")

	if r.NormalizedText != "love product" {
		t.Errorf("NormalizedText = %q, want %q", r.NormalizedText, "love product")
	}
	if r.NormalizedScores != a.Score(r.NormalizedText) {
		t.Error("Normalized scores should be the scores of the normalized text")
	}
	if r.Label != Classify(r.OriginalScores.Compound) {
		t.Error("Label should come from the original compound score")
	}
	if math.Abs(r.Delta()-(r.NormalizedScores.Compound-r.OriginalScores.Compound)) > 1e-12 {
		t.Errorf("Delta = %v", r.Delta())
	}
}

func TestAnalyzeWithReduction(t *testing.T) {
	a := newTestAnalyzer(t)
	text := "I am enjoying the wonderful parks"

	stemmed := a.AnalyzeWith(text, Stemmed)
	if !strings.Contains(stemmed.NormalizedText, "wonder park") {
		t.Errorf("Stemmed text = %q", stemmed.NormalizedText)
	}
	lemmatized := a.AnalyzeWith(text, Lemmatized)
	if !strings.Contains(lemmatized.NormalizedText, "wonderful park") {
		t.Errorf("Lemmatized text = %q", lemmatized.NormalizedText)
	}
	if lemmatized != a.Analyze(text) {
		t.Error("Analyze should default to the lemmatized branch")
	}
	if stemmed.OriginalScores != lemmatized.OriginalScores {
		t.Error("The reduction must not change the original scores")
	}

	b, err := NewAnalyzer(DefaultConfig(), WithReduction(Stemmed), WithSegmentation(false))
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	if got := b.Analyze(text); got != stemmed {
		t.Errorf("WithReduction(Stemmed): got %q, want %q", got.NormalizedText, stemmed.NormalizedText)
	}
}

func TestNormalizeStepwise(t *testing.T) {
	a := newTestAnalyzer(t)
	stages := a.NormalizeStepwise("The children are running")
	if len(stages.Tokens) != 4 {
		t.Errorf("Tokens = %q", texts(stages.Tokens))
	}
	if JoinTokens(stages.Lemmatized) != a.Analyze("The children are running").NormalizedText {
		t.Error("Stepwise lemmatized stage should match the normalized text")
	}
}

func TestAnalyzeSentences(t *testing.T) {
	a := newTestAnalyzer(t)
	results := a.AnalyzeSentences("I love this product. This is terrible.")

	if len(results) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %+v", len(results), results)
	}
	if results[0].Result.Label != Positive || results[1].Result.Label != Negative {
		t.Errorf("Unexpected labels: %s, %s", results[0].Result.Label, results[1].Result.Label)
	}
	if !strings.HasPrefix(results[1].Text, "This is terrible") {
		t.Errorf("Second sentence = %q", results[1].Text)
	}

	if got := a.AnalyzeSentences("   "); len(got) != 0 {
		t.Errorf("Blank text yielded %d sentences", len(got))
	}
}

func TestAnalyzeSentencesWithoutSegmentation(t *testing.T) {
	a, err := NewAnalyzer(DefaultConfig(), WithSegmentation(false))
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	results := a.AnalyzeSentences("I love this product. This is terrible.")
	if len(results) != 1 {
		t.Fatalf("Expected the whole text as one sentence, got %d", len(results))
	}
}

func TestNewAnalyzerErrors(t *testing.T) {
	config := DefaultConfig()
	config.Alpha = -1
	if _, err := NewAnalyzer(config, WithSegmentation(false)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	if _, err := NewAnalyzer(DefaultConfig(), WithReduction("soundex")); !errors.Is(err, ErrUnknownReduction) {
		t.Errorf("Expected ErrUnknownReduction, got %v", err)
	}

	config = DefaultConfig()
	config.ExternalLexicon = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := NewAnalyzer(config, WithSegmentation(false)); err == nil {
		t.Error("Expected an error for a missing lexicon file")
	}
}

func TestAnalyzerWithCustomLexicon(t *testing.T) {
	lex, err := NewLexicon(LexiconSeed{Words: map[string]float64{"zorgy": 3}})
	if err != nil {
		t.Fatalf("NewLexicon: %v", err)
	}
	a, err := NewAnalyzer(DefaultConfig(), UsingLexicon(lex), UsingNormalizer(newTestNormalizer(t)), WithSegmentation(false))
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	if got := a.Analyze("so zorgy").Label; got != Positive {
		t.Errorf("Label = %s, want Positive", got)
	}
	if got := a.Analyze("I love it").Label; got != Neutral {
		t.Errorf("Words outside the custom lexicon should be neutral, got %s", got)
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	a := newTestAnalyzer(t)
	inputs := []string{
		"I absolutely love this product! It's amazing and works perfectly.",
		"This is the worst experience I've ever had. Terrible service!",
		"The product is okay. It has some good features but also some drawbacks.",
	}
	want := make([]AnalysisResult, len(inputs))
	for i, text := range inputs {
		want[i] = a.Analyze(text)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for j, text := range inputs {
			j, text := j, text
			wg.Add(1)
			go func() {
				defer wg.Done()
				if got := a.Analyze(text); got != want[j] {
					t.Errorf("Concurrent result differs for %q", text)
				}
				a.AnalyzeSentences(text)
			}()
		}
	}
	wg.Wait()
}

func BenchmarkAnalyze(b *testing.B) {
	a := newTestAnalyzer(b)
	text := "I'm extremely happy with the fantastic results! The product is absolutely amazing and wonderful."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Analyze(text)
	}
}
