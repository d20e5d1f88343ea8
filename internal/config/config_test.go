package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DISCORD_TOKEN", "GUILD_ID", "OPENAI_API_KEY", "LOG_LEVEL", "HTTP_ADDR", "HISCORES_URL", "MAX_TOKENS", "TEMPERATURE", "RUNEBOT_CONFIG"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runebot.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.ChatEnabled())
	assert.Error(t, cfg.ValidateBot())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level = "debug"

bot {
  default_search_count = 3
  max_search_count     = 10
  remove_commands      = false
}

hiscores {
  base_url   = "http://localhost:9999"
  timeout    = "2s"
  cache_size = 16
  cache_ttl  = "1m"
}

http {
  address = ":9090"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, BotSettings{DefaultSearchCount: 3, MaxSearchCount: 10, RemoveCommands: false}, cfg.Bot)
	assert.Equal(t, HiscoresSettings{
		BaseURL:   "http://localhost:9999",
		Timeout:   2 * time.Second,
		CacheSize: 16,
		CacheTTL:  time.Minute,
	}, cfg.Hiscores)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
}

func TestLoadPartialBlockKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `bot { max_search_count = 50 }`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Bot.DefaultSearchCount)
	assert.Equal(t, 50, cfg.Bot.MaxSearchCount)
	assert.True(t, cfg.Bot.RemoveCommands)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `http { address = ":9090" }`)
	t.Setenv("RUNEBOT_CONFIG", path)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MAX_TOKENS", "64")
	t.Setenv("TEMPERATURE", "0.2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Address)
	assert.Equal(t, 64, cfg.MaxTokens)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
	assert.True(t, cfg.ChatEnabled())
	assert.NoError(t, cfg.ValidateBot())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "bad syntax", content: `bot {`},
		{name: "unknown attribute", content: `colour = "red"`},
		{name: "bad duration", content: `hiscores { timeout = "soon" }`},
		{name: "default above max", content: `bot { default_search_count = 30 }`},
		{name: "bad max tokens", env: map[string]string{"MAX_TOKENS": "lots"}},
		{name: "bad temperature", env: map[string]string{"TEMPERATURE": "warm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
