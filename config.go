package sentiment

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidConfig is wrapped by every Config validation failure.
	ErrInvalidConfig = errors.New("invalid sentiment config")
	// ErrUnknownReduction is returned for a Reduction other than Lemmatized
	// or Stemmed.
	ErrUnknownReduction = errors.New("unknown reduction")
)

// Config holds the tunable constants of scoring and classification.
type Config struct {
	// Compound scores at or above PositiveThreshold are Positive; at or
	// below NegativeThreshold they are Negative.
	PositiveThreshold float64 `koanf:"positive_threshold" validate:"gte=0,lte=1"`
	NegativeThreshold float64 `koanf:"negative_threshold" validate:"gte=-1,lte=0"`

	// NegationWindow is how many preceding tokens are inspected for
	// negations and boosters.
	NegationWindow int `koanf:"negation_window" validate:"gte=1,lte=10"`
	// NegationScalar multiplies the valence of a negated word.
	NegationScalar float64 `koanf:"negation_scalar" validate:"gte=-1,lt=0"`
	// CapsIncrement is added to the magnitude of an all-caps word when the
	// text mixes cases.
	CapsIncrement float64 `koanf:"caps_increment" validate:"gte=0"`
	// Alpha approximates the maximum expected raw sum in compound
	// normalization.
	Alpha float64 `koanf:"alpha" validate:"gt=0"`

	ExclamationBoost float64 `koanf:"exclamation_boost" validate:"gte=0"`
	MaxExclamations  int     `koanf:"max_exclamations" validate:"gte=0"`
	QuestionBoost    float64 `koanf:"question_boost" validate:"gte=0"`
	MaxQuestionBoost float64 `koanf:"max_question_boost" validate:"gte=0"`

	// Valences before and after the first contrastive conjunction are
	// scaled by ContrastBefore and ContrastAfter.
	ContrastBefore float64 `koanf:"contrast_before" validate:"gte=0"`
	ContrastAfter  float64 `koanf:"contrast_after" validate:"gte=0"`

	// Reduction selects the normalization branch used for the normalized
	// score.
	Reduction Reduction `koanf:"reduction" validate:"oneof=lemmatized stemmed"`
	// ExternalLexicon is an optional JSON or YAML file merged into the
	// built-in lexicon.
	ExternalLexicon string `koanf:"external_lexicon"`
}

// DefaultConfig returns the standard scoring constants.
func DefaultConfig() Config {
	return Config{
		PositiveThreshold: 0.05,
		NegativeThreshold: -0.05,
		NegationWindow:    3,
		NegationScalar:    -0.74,
		CapsIncrement:     0.733,
		Alpha:             15,
		ExclamationBoost:  0.292,
		MaxExclamations:   4,
		QuestionBoost:     0.18,
		MaxQuestionBoost:  0.96,
		ContrastBefore:    0.5,
		ContrastAfter:     1.5,
		Reduction:         Lemmatized,
	}
}

// Validate checks that the configuration can be used for scoring.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"positive threshold": c.PositiveThreshold,
		"negative threshold": c.NegativeThreshold,
		"negation scalar":    c.NegationScalar,
		"caps increment":     c.CapsIncrement,
		"alpha":              c.Alpha,
		"exclamation boost":  c.ExclamationBoost,
		"question boost":     c.QuestionBoost,
		"max question boost": c.MaxQuestionBoost,
		"contrast before":    c.ContrastBefore,
		"contrast after":     c.ContrastAfter,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidConfig, name)
		}
	}

	switch {
	case c.PositiveThreshold < 0 || c.PositiveThreshold > 1:
		return fmt.Errorf("%w: positive threshold %v outside [0, 1]", ErrInvalidConfig, c.PositiveThreshold)
	case c.NegativeThreshold < -1 || c.NegativeThreshold > 0:
		return fmt.Errorf("%w: negative threshold %v outside [-1, 0]", ErrInvalidConfig, c.NegativeThreshold)
	case c.NegationWindow < 1:
		return fmt.Errorf("%w: negation window must be at least 1", ErrInvalidConfig)
	case c.NegationScalar >= 0:
		return fmt.Errorf("%w: negation scalar must be negative", ErrInvalidConfig)
	case c.Alpha <= 0:
		return fmt.Errorf("%w: alpha must be positive", ErrInvalidConfig)
	case c.CapsIncrement < 0, c.ExclamationBoost < 0, c.QuestionBoost < 0, c.MaxQuestionBoost < 0:
		return fmt.Errorf("%w: emphasis constants must not be negative", ErrInvalidConfig)
	case c.MaxExclamations < 0:
		return fmt.Errorf("%w: max exclamations must not be negative", ErrInvalidConfig)
	case c.ContrastBefore < 0, c.ContrastAfter < 0:
		return fmt.Errorf("%w: contrast weights must not be negative", ErrInvalidConfig)
	}

	return c.Reduction.Validate()
}

// Validate reports ErrUnknownReduction for anything but Lemmatized or Stemmed.
func (r Reduction) Validate() error {
	switch r {
	case Lemmatized, Stemmed:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownReduction, string(r))
}
