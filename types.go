package sentiment

// A Token represents a normalized unit of text.
type Token struct {
	Text     string // The token's surface form after the stage that produced it.
	Position int    // Index of the token in the tokenized input.
}

// Scores holds the polarity breakdown of a text.
//
// Positive, Negative and Neutral are proportions that sum to 1. Compound is
// the normalized sum of all adjusted valences in [-1, 1].
type Scores struct {
	Positive float64
	Negative float64
	Neutral  float64
	Compound float64
}

// neutralScores is the result for texts without any sentiment signal.
var neutralScores = Scores{Neutral: 1}

// Sentiment represents the terminal classification of a text.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// String returns the display form of the sentiment.
func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Reduction selects which normalization branch feeds the normalized score.
type Reduction string

const (
	Lemmatized Reduction = "lemmatized"
	Stemmed    Reduction = "stemmed"
)

// AnalysisResult is the outcome of a single Analyze call.
type AnalysisResult struct {
	OriginalText     string
	NormalizedText   string
	OriginalScores   Scores
	NormalizedScores Scores
	Label            Sentiment
}

// Delta returns how much normalization moved the compound score.
func (r AnalysisResult) Delta() float64 {
	return r.NormalizedScores.Compound - r.OriginalScores.Compound
}

// Stages holds the output of every normalization stage.
//
// Stemmed and Lemmatized are both derived from Filtered.
type Stages struct {
	Tokens     []Token
	Filtered   []Token
	Stemmed    []Token
	Lemmatized []Token
}

// SentenceResult pairs a sentence with its analysis.
type SentenceResult struct {
	Text   string
	Start  int
	End    int
	Result AnalysisResult
}

// TokenContribution records how a single token affected the score.
type TokenContribution struct {
	Word          string
	Position      int
	BaseValence   float64
	AdjustedScore float64
	Negated       bool
	Boosted       bool
	Emphasized    bool
}

// ScoreDetail is a Scores value plus the per-token trail that produced it.
type ScoreDetail struct {
	Scores
	Contributions []TokenContribution
	Emphasis      float64 // Punctuation amplifier applied to the sum.
	RawSum        float64 // Sum before normalization.
}
