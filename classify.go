package sentiment

const (
	defaultPositiveThreshold = 0.05
	defaultNegativeThreshold = -0.05
)

// Classifier maps a compound score to a Sentiment label.
type Classifier struct {
	positive float64
	negative float64
}

// NewClassifier creates a Classifier with the given inclusive thresholds.
func NewClassifier(positive, negative float64) Classifier {
	return Classifier{positive: positive, negative: negative}
}

// DefaultClassifier uses the ±0.05 thresholds.
func DefaultClassifier() Classifier {
	return NewClassifier(defaultPositiveThreshold, defaultNegativeThreshold)
}

// Classify labels a compound score. Both thresholds are inclusive; anything
// strictly between them, or not a number at all, is Neutral.
func (c Classifier) Classify(compound float64) Sentiment {
	switch {
	case compound >= c.positive:
		return Positive
	case compound <= c.negative:
		return Negative
	default:
		return Neutral
	}
}

// Classify labels a compound score with the default thresholds.
func Classify(compound float64) Sentiment {
	return DefaultClassifier().Classify(compound)
}
