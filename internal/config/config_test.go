package config

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "us", cfg.NewsCountry)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "enhanced", cfg.ChatVariant)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("NEWS_API_KEY", "news-key")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("RSS_FEEDS", "https://a.example/rss.xml,https://b.example/feed")
	t.Setenv("CHAT_VARIANT", "plain")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "news-key", cfg.NewsAPIKey)
	assert.Equal(t, 2, len(cfg.RSSFeeds))
	assert.Equal(t, "https://b.example/feed", cfg.RSSFeeds[1])
	assert.Equal(t, "plain", cfg.ChatVariant)
}

func TestLoadRejectsUnknownVariant(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("CHAT_VARIANT", "fancy")

	_, err := Load()
	assert.NotEqual(t, nil, err)
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "llama")

	_, err := Load()
	assert.NotEqual(t, nil, err)
}

func TestLoadRequiresOpenAIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	assert.NotEqual(t, nil, err)
}

func TestLoadRequiresAnthropicKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := Load()
	assert.NotEqual(t, nil, err)
}

func TestLoadAnthropicWithKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, "anthropic", cfg.LLMProvider)
}
