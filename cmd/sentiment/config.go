package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	sentiment "github.com/akram911v/text-sentiment-analyzer"
)

const envPrefix = "SENTIMENT_"

// loadConfig layers the built-in defaults, SENTIMENT_* environment variables
// and explicit flag overrides, in that order. Override keys use the koanf
// field names, e.g. "reduction" or "positive_threshold".
func loadConfig(overrides map[string]any) (sentiment.Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(sentiment.DefaultConfig(), "koanf"), nil); err != nil {
		return sentiment.Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return sentiment.Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return sentiment.Config{}, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	var cfg sentiment.Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return sentiment.Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return sentiment.Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return sentiment.Config{}, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
