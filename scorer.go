package sentiment

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Lookback dampening of a booster: full strength right before the word,
// then 95% and 90% of it one and two tokens further away.
var boosterDistance = []float64{1, 0.95, 0.9}

// Scorer computes rule-based polarity scores from a Lexicon.
//
// A Scorer is immutable after construction and safe for concurrent use.
type Scorer struct {
	lexicon *Lexicon
	config  Config
}

// NewScorer creates a Scorer. A nil lexicon selects the built-in one.
func NewScorer(lex *Lexicon, config Config) *Scorer {
	if lex == nil {
		lex = DefaultLexicon()
	}
	if config.NegationWindow < 1 {
		config.NegationWindow = 1
	}
	return &Scorer{lexicon: lex, config: config}
}

// Lexicon returns the lexicon the scorer reads from.
func (s *Scorer) Lexicon() *Lexicon {
	return s.lexicon
}

// Score returns the polarity scores of text. Any text, including the empty
// one, yields a valid result.
func (s *Scorer) Score(text string) Scores {
	return s.ScoreDetailed(text).Scores
}

// tokenScore is the intermediate state of one token while scoring.
type tokenScore struct {
	hit        bool
	base       float64
	negated    bool
	boosted    bool
	emphasized bool
}

// ScoreDetailed is like Score but also reports how every sentiment-bearing
// token contributed.
func (s *Scorer) ScoreDetailed(text string) ScoreDetail {
	st := newSentiText(text, s.lexicon)
	if st.len() == 0 {
		return ScoreDetail{Scores: neutralScores}
	}

	valences := make([]float64, st.len())
	trail := make([]tokenScore, st.len())
	for i := range st.words {
		word := st.lower[i]
		// Degree modifiers only shape their neighbours.
		if _, ok := s.lexicon.Booster(word); ok {
			continue
		}
		if word == "kind" && st.at(i+1) == "of" {
			continue
		}
		valences[i], trail[i] = s.valence(st, i)
	}

	s.contrastCheck(st, valences)

	detail := s.aggregate(st, valences)
	for i, ts := range trail {
		if !ts.hit {
			continue
		}
		detail.Contributions = append(detail.Contributions, TokenContribution{
			Word:          st.words[i],
			Position:      i,
			BaseValence:   ts.base,
			AdjustedScore: valences[i],
			Negated:       ts.negated,
			Boosted:       ts.boosted,
			Emphasized:    ts.emphasized,
		})
	}
	return detail
}

// valence computes the adjusted valence of the token at i.
func (s *Scorer) valence(st *sentiText, i int) (float64, tokenScore) {
	word := st.lower[i]
	base, ok := s.lexicon.Valence(word)
	if !ok {
		return 0, tokenScore{}
	}
	ts := tokenScore{hit: true, base: base}
	valence := base

	// "no" as a determiner moves its weight onto the word it governs.
	if word == "no" && s.lexicon.Has(st.at(i+1)) {
		valence = 0
	}
	if st.at(i-1) == "no" || st.at(i-2) == "no" ||
		(st.at(i-3) == "no" && (st.at(i-1) == "or" || st.at(i-1) == "nor")) {
		valence = base * s.config.NegationScalar
		ts.negated = true
	}

	if st.allCaps[i] && st.capsDiff {
		valence = awayFromZero(valence, s.config.CapsIncrement)
		ts.emphasized = true
	}

	for back := 1; back <= s.config.NegationWindow; back++ {
		j := i - back
		if j < 0 {
			break
		}
		if s.lexicon.Has(st.lower[j]) {
			continue
		}
		if adjust := s.boosterScalar(st, j, valence); adjust != 0 {
			valence += adjust * boosterDistance[min(back, len(boosterDistance))-1]
			ts.boosted = true
		}
		var negated bool
		valence, negated = s.negationCheck(st, valence, i, back)
		ts.negated = ts.negated || negated
	}

	valence = s.idiomCheck(st, valence, i)

	var negated bool
	valence, negated = s.leastCheck(st, valence, i)
	ts.negated = ts.negated || negated

	return valence, ts
}

// boosterScalar returns the signed adjustment the modifier at j applies to a
// word of the given valence.
func (s *Scorer) boosterScalar(st *sentiText, j int, valence float64) float64 {
	b, ok := s.lexicon.Booster(st.lower[j])
	if !ok {
		return 0
	}
	adjust := b.delta()
	if valence < 0 {
		adjust = -adjust
	}
	if st.allCaps[j] && st.capsDiff {
		if valence > 0 {
			adjust += s.config.CapsIncrement
		} else {
			adjust -= s.config.CapsIncrement
		}
	}
	return adjust
}

// negationCheck inspects the token back positions before i.
func (s *Scorer) negationCheck(st *sentiText, valence float64, i, back int) (float64, bool) {
	j := i - back
	if back > 1 {
		between := st.lower[j+1 : i]
		// "never so good" intensifies rather than negates.
		if st.lower[j] == "never" && containsAny(between, "so", "this") {
			return valence * 1.25, false
		}
		// "without a doubt" is affirmative.
		if st.lower[j] == "without" && containsAny(between, "doubt") {
			return valence, false
		}
	}
	if s.isNegated(st.lower[j]) {
		return valence * s.config.NegationScalar, true
	}
	return valence, false
}

// leastCheck handles "least" which negates unless part of "at least" or
// "very least".
func (s *Scorer) leastCheck(st *sentiText, valence float64, i int) (float64, bool) {
	if st.at(i-1) != "least" || s.lexicon.Has("least") {
		return valence, false
	}
	if prev := st.at(i - 2); prev == "at" || prev == "very" {
		return valence, false
	}
	return valence * s.config.NegationScalar, true
}

// idiomCheck replaces the valence with that of a fixed phrase around i and
// applies multi-word boosters preceding it.
func (s *Scorer) idiomCheck(st *sentiText, valence float64, i int) float64 {
	for _, span := range [][2]int{
		{i - 1, i}, {i - 2, i}, {i - 2, i - 1}, {i - 3, i - 1}, {i - 3, i - 2},
		{i, i + 1}, {i, i + 2},
	} {
		phrase, ok := st.phrase(span[0], span[1])
		if !ok {
			continue
		}
		if v, ok := s.lexicon.Idiom(phrase); ok {
			valence = v
			break
		}
	}

	for _, span := range [][2]int{{i - 3, i - 1}, {i - 3, i - 2}, {i - 2, i - 1}} {
		phrase, ok := st.phrase(span[0], span[1])
		if !ok {
			continue
		}
		if b, ok := s.lexicon.Booster(phrase); ok {
			if valence < 0 {
				valence -= b.delta()
			} else {
				valence += b.delta()
			}
		}
	}
	return valence
}

// contrastCheck shifts weight to the clause after the first contrastive
// conjunction.
func (s *Scorer) contrastCheck(st *sentiText, valences []float64) {
	at := -1
	for i, w := range st.lower {
		if s.lexicon.IsContrastive(w) {
			at = i
			break
		}
	}
	if at < 0 {
		return
	}
	for i := range valences {
		switch {
		case i < at:
			valences[i] *= s.config.ContrastBefore
		case i > at:
			valences[i] *= s.config.ContrastAfter
		}
	}
}

func (s *Scorer) isNegated(word string) bool {
	return s.lexicon.IsNegation(word) || strings.Contains(word, "n't")
}

// punctuationEmphasis is the amplifier contributed by '!' and '?'.
func (s *Scorer) punctuationEmphasis(st *sentiText) float64 {
	emphasis := float64(min(st.exclamations, s.config.MaxExclamations)) * s.config.ExclamationBoost
	switch {
	case st.questions > 3:
		emphasis += s.config.MaxQuestionBoost
	case st.questions > 1:
		emphasis += float64(st.questions) * s.config.QuestionBoost
	}
	return emphasis
}

// aggregate turns adjusted valences into the final scores.
func (s *Scorer) aggregate(st *sentiText, valences []float64) ScoreDetail {
	emphasis := s.punctuationEmphasis(st)

	sum := floats.Sum(valences)
	if sum != 0 {
		sum = awayFromZero(sum, emphasis)
	}
	compound := normalizeScore(sum, s.config.Alpha)

	posSum, negSum, neutral := siftSentiments(valences)
	switch {
	case posSum > math.Abs(negSum):
		posSum += emphasis
	case posSum < math.Abs(negSum):
		negSum -= emphasis
	}
	total := posSum + math.Abs(negSum) + float64(neutral)

	return ScoreDetail{
		Scores:   roundScores(math.Abs(posSum/total), math.Abs(negSum/total), compound),
		Emphasis: emphasis,
		RawSum:   sum,
	}
}

// siftSentiments splits valences into positive and negative mass. Every
// non-zero valence is pushed one unit away from zero so that weak words still
// register; zero valences count as neutral.
func siftSentiments(valences []float64) (pos, neg float64, neutral int) {
	for _, v := range valences {
		switch {
		case v > 0:
			pos += v + 1
		case v < 0:
			neg += v - 1
		default:
			neutral++
		}
	}
	return pos, neg, neutral
}

// roundScores rounds the proportions to three decimals and the compound to
// four. Neutral takes the remainder so the proportions still sum to 1.
func roundScores(pos, neg, compound float64) Scores {
	pos = scalar.Round(pos, 3)
	neg = scalar.Round(neg, 3)
	neu := scalar.Round(1-pos-neg, 3)
	if neu < 0 {
		if pos >= neg {
			pos += neu
		} else {
			neg += neu
		}
		neu = 0
	}
	return Scores{
		Positive: pos,
		Negative: neg,
		Neutral:  neu,
		Compound: scalar.Round(compound, 4),
	}
}

// normalizeScore maps a raw sum into [-1, 1] with x/sqrt(x*x+alpha).
func normalizeScore(score, alpha float64) float64 {
	norm := score / math.Sqrt(score*score+alpha)
	return math.Max(-1, math.Min(1, norm))
}

// awayFromZero grows the magnitude of v by delta, keeping its sign. Zero is
// treated as negative.
func awayFromZero(v, delta float64) float64 {
	if v > 0 {
		return v + delta
	}
	return v - delta
}

func containsAny(words []string, targets ...string) bool {
	for _, w := range words {
		for _, t := range targets {
			if w == t {
				return true
			}
		}
	}
	return false
}
