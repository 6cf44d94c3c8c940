package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	sentiment "github.com/akram911v/text-sentiment-analyzer"
)

const quitCommand = "quit"

// demoTexts are the reference inputs of the demo command.
var demoTexts = []string{
	"I absolutely love this product! It's amazing and works perfectly.",
	"This is the worst experience I've ever had. Terrible service!",
	"The product is okay. It has some good features but also some drawbacks.",
	"The weather is nice today. I went for a walk in the park.",
	"I'm feeling very disappointed with the results. Not what I expected at all.",
}

const compareSample = "I'm extremely happy with the fantastic results! The product is absolutely amazing and wonderful."

var errNoText = errors.New("no text given")

// app carries what every subcommand needs once the root has initialized.
type app struct {
	in       io.Reader
	out      io.Writer
	logger   *charmlog.Logger
	analyzer *sentiment.Analyzer
}

// configFlags maps CLI flags to configuration keys.
var configFlags = map[string]string{
	"reduction":          "reduction",
	"lexicon":            "external_lexicon",
	"positive-threshold": "positive_threshold",
	"negative-threshold": "negative_threshold",
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out}

	root := &cobra.Command{
		Use:           "sentiment",
		Short:         "Rule-based sentiment analysis with text normalization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, errOut)
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	root.PersistentFlags().String("reduction", string(sentiment.Lemmatized), "Branch fed to the normalized score (lemmatized, stemmed)")
	root.PersistentFlags().String("lexicon", "", "JSON or YAML file merged into the built-in lexicon")
	root.PersistentFlags().Float64("positive-threshold", 0.05, "Compound score at or above which text is positive")
	root.PersistentFlags().Float64("negative-threshold", -0.05, "Compound score at or below which text is negative")

	root.AddCommand(
		a.analyzeCmd(),
		a.stepsCmd(),
		a.compareCmd(),
		a.demoCmd(),
		a.interactiveCmd(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command, errOut io.Writer) error {
	flags := cmd.Flags()
	level, err := flags.GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logJSON, err := flags.GetBool("log-json")
	if err != nil {
		return fmt.Errorf("failed to get log-json flag: %w", err)
	}
	a.logger = newLogger(errOut, level, logJSON)

	overrides := map[string]any{}
	for flag, key := range configFlags {
		if !flags.Changed(flag) {
			continue
		}
		value, err := flagValue(cmd, flag)
		if err != nil {
			return err
		}
		overrides[key] = value
	}

	cfg, err := loadConfig(overrides)
	if err != nil {
		a.logger.Error("invalid configuration", "err", err)
		return err
	}

	a.analyzer, err = sentiment.NewAnalyzer(cfg)
	if err != nil {
		a.logger.Error("failed to initialize analyzer", "err", err)
		return err
	}
	a.logger.Debug("analyzer ready", "reduction", cfg.Reduction, "lexicon", cfg.ExternalLexicon)
	return nil
}

func flagValue(cmd *cobra.Command, name string) (any, error) {
	flags := cmd.Flags()
	switch name {
	case "positive-threshold", "negative-threshold":
		v, err := flags.GetFloat64(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		return v, nil
	default:
		v, err := flags.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		return v, nil
	}
}

func (a *app) analyzeCmd() *cobra.Command {
	var detail, sentences bool
	cmd := &cobra.Command{
		Use:   "analyze <text>",
		Short: "Score a text before and after normalization",
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := joinArgs(args)
			if err != nil {
				return err
			}
			result := a.analyzer.Analyze(text)
			a.logAnalysis(result)
			printResult(a.out, result)
			if detail {
				fmt.Fprintln(a.out)
				printContributions(a.out, a.analyzer.ScoreDetailed(text))
			}
			if sentences {
				fmt.Fprintln(a.out)
				fmt.Fprintln(a.out, sentenceTable(a.analyzer.AnalyzeSentences(text)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&detail, "detail", false, "Show how every word contributed")
	cmd.Flags().BoolVar(&sentences, "sentences", false, "Also score every sentence on its own")
	return cmd
}

func (a *app) stepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps <text>",
		Short: "Show every normalization stage",
		RunE: func(_ *cobra.Command, args []string) error {
			text, err := joinArgs(args)
			if err != nil {
				return err
			}
			printStages(a.out, a.analyzer.NormalizeStepwise(text))
			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [text]",
		Short: "Compare compound scores before and after normalization",
		RunE: func(_ *cobra.Command, args []string) error {
			text := compareSample
			if len(args) > 0 {
				text = strings.Join(args, " ")
			}
			printComparison(a.out, a.analyzer.Analyze(text))
			return nil
		},
	}
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Analyze a set of reference texts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			results := make([]sentiment.AnalysisResult, len(demoTexts))
			for i, text := range demoTexts {
				results[i] = a.analyzer.Analyze(text)
			}
			fmt.Fprintln(a.out, headingStyle.Render("Sentiment analysis results:"))
			fmt.Fprintln(a.out, demoTable(results))
			return nil
		},
	}
}

func (a *app) interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Analyze lines read from standard input until \"quit\"",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.readLoop()
		},
	}
}

// readLoop analyzes one line at a time until the quit sentinel or EOF.
func (a *app) readLoop() error {
	fmt.Fprintf(a.out, "Enter text for sentiment analysis (or '%s' to exit):\n", quitCommand)
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, quitCommand) {
			return nil
		}
		if line == "" {
			continue
		}
		result := a.analyzer.Analyze(line)
		a.logAnalysis(result)
		printResult(a.out, result)
		fmt.Fprintln(a.out, strings.Repeat("=", 50))
		fmt.Fprintf(a.out, "Enter next text (or '%s' to exit):\n", quitCommand)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (a *app) logAnalysis(r sentiment.AnalysisResult) {
	a.logger.Debug("analyzed text",
		"label", r.Label,
		"compound", r.OriginalScores.Compound,
		"normalized_compound", r.NormalizedScores.Compound,
	)
}

func joinArgs(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", errNoText
	}
	return text, nil
}
