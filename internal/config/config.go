package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment (a .env file is loaded first in main).
// The two vendor credentials live here and only here; they are never sent to
// a client.
type Config struct {
	Addr        string `env:"ADDR" env-default:":8080"`
	FrontendURL string `env:"FRONTEND_URL"`

	NewsAPIKey    string `env:"NEWS_API_KEY"`
	NewsCountry   string `env:"NEWS_COUNTRY" env-default:"us"`
	FinnhubAPIKey string `env:"FINNHUB_API_KEY"`

	// Optional RSS sources, comma separated feed URLs.
	RSSFeeds []string `env:"RSS_FEEDS" env-separator:","`

	LLMProvider     string `env:"LLM_PROVIDER" env-default:"openai"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// plain or enhanced; enhanced adds suggested-action tags to replies.
	ChatVariant string `env:"CHAT_VARIANT" env-default:"enhanced"`

	// When set, the latest headline snapshot is shared through Redis.
	RedisURL string `env:"REDIS_URL"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if cfg.ChatVariant != "plain" && cfg.ChatVariant != "enhanced" {
		return nil, fmt.Errorf("invalid CHAT_VARIANT %q", cfg.ChatVariant)
	}

	// A missing credential would turn every chat turn into the fallback
	// reply, so refuse to start without the active provider's key.
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER=anthropic")
		}
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER %q", cfg.LLMProvider)
	}

	return &cfg, nil
}
