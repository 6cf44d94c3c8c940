package sentiment

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1/english"
)

// An AnalyzerOpt represents a setting that changes how an Analyzer is built.
//
// For example, it might feed the stemmed branch to the normalized score:
//
//	a, err := sentiment.NewAnalyzer(sentiment.DefaultConfig(), sentiment.WithReduction(sentiment.Stemmed))
type AnalyzerOpt func(opts *AnalyzerOpts)

// AnalyzerOpts controls the Analyzer creation process:
type AnalyzerOpts struct {
	Lexicon    *Lexicon    // Lexicon to score with; loaded from the config when nil
	Normalizer *Normalizer // Normalizer to use; English defaults when nil
	Reduction  Reduction   // Overrides the config's reduction when set
	Segment    bool        // If true, split text into sentences for AnalyzeSentences
}

// UsingLexicon specifies the Lexicon to use.
func UsingLexicon(lex *Lexicon) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Lexicon = lex
	}
}

// UsingNormalizer specifies the Normalizer to use.
func UsingNormalizer(n *Normalizer) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Normalizer = n
	}
}

// WithReduction selects the normalization branch that feeds the normalized
// score.
func WithReduction(r Reduction) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Reduction = r
	}
}

// WithSegmentation can enable (the default) or disable sentence segmentation.
func WithSegmentation(include bool) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Segment = include
	}
}

// Analyzer scores a text as written and again after normalization, so the
// effect of normalization on sentiment can be measured.
//
// All methods are safe for concurrent use.
type Analyzer struct {
	normalizer *Normalizer
	scorer     *Scorer
	classifier Classifier
	reduction  Reduction

	mu      sync.Mutex
	segment func(string) []span
}

// span is a sentence located in its source text.
type span struct {
	text       string
	start, end int
}

// NewAnalyzer creates an Analyzer from config. Every error is an
// initialization failure: an invalid config, an unreadable external lexicon
// or a dictionary that could not be loaded.
func NewAnalyzer(config Config, opts ...AnalyzerOpt) (*Analyzer, error) {
	base := AnalyzerOpts{Segment: true}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Reduction != "" {
		config.Reduction = base.Reduction
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	lex := base.Lexicon
	if lex == nil {
		var err error
		if lex, err = LoadLexicon(config.ExternalLexicon); err != nil {
			return nil, err
		}
	}

	normalizer := base.Normalizer
	if normalizer == nil {
		var err error
		if normalizer, err = NewNormalizer(); err != nil {
			return nil, err
		}
	}

	a := &Analyzer{
		normalizer: normalizer,
		scorer:     NewScorer(lex, config),
		classifier: NewClassifier(config.PositiveThreshold, config.NegativeThreshold),
		reduction:  config.Reduction,
		segment:    wholeText,
	}
	if base.Segment {
		segment, err := newSegmenter()
		if err != nil {
			return nil, err
		}
		a.segment = segment
	}
	return a, nil
}

// Analyze compares the scores of text before and after normalization. The
// label always comes from the original text's compound score.
func (a *Analyzer) Analyze(text string) AnalysisResult {
	return a.analyze(text, a.reduction)
}

// AnalyzeWith is like Analyze but feeds the given branch to the normalized
// score. An unknown reduction falls back to lemmatization.
func (a *Analyzer) AnalyzeWith(text string, r Reduction) AnalysisResult {
	return a.analyze(text, r)
}

func (a *Analyzer) analyze(text string, r Reduction) AnalysisResult {
	original := a.scorer.Score(text)
	normalizedText := JoinTokens(a.normalizer.Reduce(text, r))
	return AnalysisResult{
		OriginalText:     text,
		NormalizedText:   normalizedText,
		OriginalScores:   original,
		NormalizedScores: a.scorer.Score(normalizedText),
		Label:            a.classifier.Classify(original.Compound),
	}
}

// Score returns the polarity scores of text without normalization.
func (a *Analyzer) Score(text string) Scores {
	return a.scorer.Score(text)
}

// ScoreDetailed returns the scores of text with the per-token trail.
func (a *Analyzer) ScoreDetailed(text string) ScoreDetail {
	return a.scorer.ScoreDetailed(text)
}

// Classify labels a compound score with the analyzer's thresholds.
func (a *Analyzer) Classify(compound float64) Sentiment {
	return a.classifier.Classify(compound)
}

// NormalizeStepwise returns every intermediate normalization stage.
func (a *Analyzer) NormalizeStepwise(text string) Stages {
	return a.normalizer.Stepwise(text)
}

// AnalyzeSentences analyzes each sentence of text on its own. Offsets are
// byte positions into text.
func (a *Analyzer) AnalyzeSentences(text string) []SentenceResult {
	a.mu.Lock()
	spans := a.segment(text)
	a.mu.Unlock()

	results := make([]SentenceResult, 0, len(spans))
	for _, s := range spans {
		results = append(results, SentenceResult{
			Text:   s.text,
			Start:  s.start,
			End:    s.end,
			Result: a.Analyze(s.text),
		})
	}
	return results
}

// newSegmenter loads the English Punkt model.
func newSegmenter() (func(string) []span, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	return func(text string) []span {
		var spans []span
		for _, s := range tokenizer.Tokenize(text) {
			trimmed := strings.TrimSpace(s.Text)
			if trimmed == "" {
				continue
			}
			spans = append(spans, span{text: trimmed, start: s.Start, end: s.End})
		}
		return spans
	}, nil
}

// wholeText treats the entire text as a single sentence.
func wholeText(text string) []span {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return []span{{text: trimmed, start: 0, end: len(text)}}
}
