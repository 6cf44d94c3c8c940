package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	sentiment "github.com/akram911v/text-sentiment-analyzer"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	labelStyles  = map[sentiment.Sentiment]lipgloss.Style{
		sentiment.Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4")).Bold(true),
		sentiment.Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		sentiment.Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Bold(true),
	}
)

func renderLabel(s sentiment.Sentiment) string {
	return labelStyles[s].Render(s.String())
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

// printResult writes the scores of a single analysis.
func printResult(w io.Writer, r sentiment.AnalysisResult) {
	fmt.Fprintln(w, headingStyle.Render("Results:"))
	fmt.Fprintf(w, "Original text: %s\n", r.OriginalText)
	fmt.Fprintf(w, "Normalized text: %s\n", r.NormalizedText)
	fmt.Fprintf(w, "Sentiment: %s\n", renderLabel(r.Label))
	fmt.Fprintf(w, "Compound Score: %.4f\n", r.OriginalScores.Compound)
	fmt.Fprintf(w, "Positive Score: %.4f\n", r.OriginalScores.Positive)
	fmt.Fprintf(w, "Neutral Score: %.4f\n", r.OriginalScores.Neutral)
	fmt.Fprintf(w, "Negative Score: %.4f\n", r.OriginalScores.Negative)
}

// printComparison writes the compound scores before and after normalization.
func printComparison(w io.Writer, r sentiment.AnalysisResult) {
	fmt.Fprintln(w, headingStyle.Render("Comparison of normalization effect:"))
	fmt.Fprintf(w, "Original text: %s\n", r.OriginalText)
	fmt.Fprintf(w, "Normalized text: %s\n", r.NormalizedText)
	fmt.Fprintf(w, "Original compound score: %.4f\n", r.OriginalScores.Compound)
	fmt.Fprintf(w, "Normalized compound score: %.4f\n", r.NormalizedScores.Compound)
	fmt.Fprintf(w, "Difference: %.4f\n", math.Abs(r.Delta()))
}

// printStages writes every normalization stage on its own line.
func printStages(w io.Writer, stages sentiment.Stages) {
	fmt.Fprintln(w, headingStyle.Render("Normalization stages:"))
	for _, stage := range []struct {
		name   string
		tokens []sentiment.Token
	}{
		{"Tokens", stages.Tokens},
		{"Without stopwords", stages.Filtered},
		{"Stemmed", stages.Stemmed},
		{"Lemmatized", stages.Lemmatized},
	} {
		fmt.Fprintf(w, "%-18s %s\n", stage.name+":", quoteTokens(stage.tokens))
	}
}

// printContributions writes the per-token trail of a detailed score.
func printContributions(w io.Writer, d sentiment.ScoreDetail) {
	if len(d.Contributions) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No sentiment-bearing words."))
		return
	}
	rows := make([][]string, 0, len(d.Contributions))
	for _, c := range d.Contributions {
		rows = append(rows, []string{
			c.Word,
			fmt.Sprintf("%.3f", c.BaseValence),
			fmt.Sprintf("%.3f", c.AdjustedScore),
			flags(c),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"Word", "Base", "Adjusted", "Modifiers"}, rows))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("raw sum %.3f, punctuation emphasis %.3f", d.RawSum, d.Emphasis)))
}

// demoTable renders the summary table of several analyses.
func demoTable(results []sentiment.AnalysisResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			truncate(r.OriginalText, 50),
			firstWords(r.NormalizedText, 10),
			r.Label.String(),
			fmt.Sprintf("%.4f", r.OriginalScores.Compound),
		})
	}
	return renderTable([]string{"Text", "Normalized Text", "Sentiment", "Compound Score"}, rows)
}

// sentenceTable renders a per-sentence breakdown.
func sentenceTable(results []sentiment.SentenceResult) string {
	rows := make([][]string, 0, len(results))
	for _, s := range results {
		rows = append(rows, []string{
			fmt.Sprintf("%d-%d", s.Start, s.End),
			truncate(s.Text, 50),
			s.Result.Label.String(),
			fmt.Sprintf("%.4f", s.Result.OriginalScores.Compound),
			fmt.Sprintf("%.4f", s.Result.NormalizedScores.Compound),
		})
	}
	return renderTable([]string{"Span", "Sentence", "Sentiment", "Compound", "Normalized"}, rows)
}

func flags(c sentiment.TokenContribution) string {
	var parts []string
	if c.Negated {
		parts = append(parts, "negated")
	}
	if c.Boosted {
		parts = append(parts, "boosted")
	}
	if c.Emphasized {
		parts = append(parts, "caps")
	}
	return strings.Join(parts, ", ")
}

func quoteTokens(tokens []sentiment.Token) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = fmt.Sprintf("%q", tok.Text)
	}
	return "[" + strings.Join(quoted, " ") + "]"
}

// truncate shortens text to n runes, marking the cut with "...".
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

// firstWords keeps the first n words of text, marking a cut with "...".
func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return text
	}
	return strings.Join(words[:n], " ") + "..."
}
