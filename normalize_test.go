package sentiment

import (
	"reflect"
	"sync"
	"testing"
)

var (
	testNormalizerOnce sync.Once
	testNormalizer     *Normalizer
	testNormalizerErr  error
)

func newTestNormalizer(t testing.TB) *Normalizer {
	t.Helper()
	testNormalizerOnce.Do(func() {
		testNormalizer, testNormalizerErr = NewNormalizer()
	})
	if testNormalizerErr != nil {
		t.Fatalf("NewNormalizer: %v", testNormalizerErr)
	}
	return testNormalizer
}

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"Hello, World!", []string{"hello", "world"}, "Punctuation is dropped"},
		{"well-known facts", []string{"well", "known", "facts"}, "Hyphen splits"},
		{"  spaced\tout\n", []string{"spaced", "out"}, "Whitespace"},
		{"Café ÜBER", []string{"café", "über"}, "Unicode letters"},
		{"route 66", []string{"route", "66"}, "Digits"},
		{"", []string{}, "Empty"},
		{"?!...", []string{}, "Punctuation only"},
	}

	tokenizer := NewWordTokenizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := texts(tokenizer.Tokenize(tt.text))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	tokens := NewWordTokenizer().Tokenize("one two three")
	for i, tok := range tokens {
		if tok.Position != i {
			t.Errorf("Token %q at position %d, want %d", tok.Text, tok.Position, i)
		}
	}
}

func TestTokenizationIsFixedPoint(t *testing.T) {
	tokenizer := NewWordTokenizer()
	for _, text := range []string{
		"I'm feeling very disappointed with the results. Not what I expected at all.",
		"The weather is nice today. I went for a walk in the park.",
		"Well-known, “quoted” text!",
	} {
		once := texts(tokenizer.Tokenize(text))
		twice := texts(tokenizer.Tokenize(JoinTokens(tokenizer.Tokenize(text))))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Re-tokenizing %q changed %q to %q", text, once, twice)
		}
	}
}

func TestRemoveStopwords(t *testing.T) {
	n, err := NewNormalizer(UsingStopwords(NewStopwordSet("the", "is", "a")))
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}

	tokens := []Token{{"the", 0}, {"movie", 1}, {"is", 2}, {"a", 3}, {"hit", 4}, {"!", 5}, {"", 6}}
	got := n.RemoveStopwords(tokens)
	want := []Token{{"movie", 1}, {"hit", 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveStopwords = %v, want %v", got, want)
	}
}

func TestEnglishStopwords(t *testing.T) {
	stopwords := EnglishStopwords()
	for _, w := range []string{"the", "is", "a", "and", "i", "s", "t", "don", "ve", "ll", "m", "d"} {
		if !stopwords.Contains(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}
	for _, w := range []string{"love", "product", "nice", "42"} {
		if stopwords.Contains(w) {
			t.Errorf("%q should not be a stopword", w)
		}
	}
}

func TestContractionsNormalizeAway(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"I love this product!", "love product"},
		{"I don't love rain", "love rain"},
		{"We've hated rain, they'll hate snow", "hated rain hate snow"},
	}

	n := newTestNormalizer(t)
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := JoinTokens(n.Stepwise(tt.text).Filtered); got != tt.expected {
				t.Errorf("Filtered = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStemAndLemmatize(t *testing.T) {
	n := newTestNormalizer(t)

	stems := []struct{ word, stem string }{
		{"running", "run"},
		{"parks", "park"},
		{"enjoying", "enjoy"},
		{"wonderful", "wonder"},
	}
	for _, tt := range stems {
		got := n.Stem([]Token{{tt.word, 0}})
		if got[0].Text != tt.stem {
			t.Errorf("Stem(%q) = %q, want %q", tt.word, got[0].Text, tt.stem)
		}
	}

	lemmas := []struct{ word, lemma string }{
		{"parks", "park"},
		{"children", "child"},
	}
	for _, tt := range lemmas {
		got := n.Lemmatize([]Token{{tt.word, 0}})
		if got[0].Text != tt.lemma {
			t.Errorf("Lemmatize(%q) = %q, want %q", tt.word, got[0].Text, tt.lemma)
		}
	}
}

func TestStepwise(t *testing.T) {
	n := newTestNormalizer(t)
	stages := n.Stepwise("The children are enjoying the parks")

	if len(stages.Tokens) != 6 {
		t.Fatalf("Expected 6 tokens, got %q", texts(stages.Tokens))
	}
	if len(stages.Filtered) == 0 || len(stages.Filtered) >= len(stages.Tokens) {
		t.Fatalf("Stopwords were not removed: %q", texts(stages.Filtered))
	}
	for _, branch := range [][]Token{stages.Stemmed, stages.Lemmatized} {
		if len(branch) != len(stages.Filtered) {
			t.Fatalf("Branch length %d, want %d", len(branch), len(stages.Filtered))
		}
		for i := range branch {
			if branch[i].Position != stages.Filtered[i].Position {
				t.Errorf("Branch token %q lost its position", branch[i].Text)
			}
		}
	}

	if got := JoinTokens(n.Normalize("The children are enjoying the parks")); got != JoinTokens(stages.Lemmatized) {
		t.Errorf("Normalize = %q, want the lemmatized branch %q", got, JoinTokens(stages.Lemmatized))
	}
	if got := JoinTokens(n.Reduce("The children are enjoying the parks", Stemmed)); got != JoinTokens(stages.Stemmed) {
		t.Errorf("Reduce(Stemmed) = %q, want %q", got, JoinTokens(stages.Stemmed))
	}

	again := n.Stepwise(JoinTokens(stages.Tokens))
	if !reflect.DeepEqual(again, stages) {
		t.Errorf("Stepwise is not stable over its own tokens:\n%+v\n%+v", again, stages)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	n := newTestNormalizer(t)
	if got := n.Normalize(""); len(got) != 0 {
		t.Errorf("Normalize(\"\") = %v, want no tokens", got)
	}
	if got := JoinTokens(nil); got != "" {
		t.Errorf("JoinTokens(nil) = %q", got)
	}
}

func TestDerivedStagesDoNotMutateInput(t *testing.T) {
	n, err := NewNormalizer(UsingStemmer(StemmerFunc(func(string) string { return "x" })))
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	tokens := []Token{{"running", 0}}
	n.Stem(tokens)
	if tokens[0].Text != "running" {
		t.Errorf("Stem mutated its input: %q", tokens[0].Text)
	}

	empty, err := NewNormalizer(UsingLemmatizer(LemmatizerFunc(func(string) string { return "" })))
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	if got := empty.Lemmatize(tokens); got[0].Text != "running" {
		t.Errorf("An empty lemma should keep the word, got %q", got[0].Text)
	}
}

func BenchmarkNormalize(b *testing.B) {
	n := newTestNormalizer(b)
	text := "I absolutely love this product! It's amazing and works perfectly."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.Normalize(text)
	}
}
