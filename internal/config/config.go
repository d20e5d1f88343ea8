// Package config assembles runebot settings from defaults, an optional HCL
// file and the environment, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is read when RUNEBOT_CONFIG is not set.
const DefaultPath = "runebot.hcl"

// Config holds every runtime setting.
type Config struct {
	DiscordToken string
	GuildID      string
	OpenAIToken  string
	MaxTokens    int
	Temperature  float64
	LogLevel     string

	Bot      BotSettings
	Hiscores HiscoresSettings
	HTTP     HTTPSettings
}

// BotSettings tunes the Discord commands.
type BotSettings struct {
	DefaultSearchCount int
	MaxSearchCount     int
	RemoveCommands     bool
}

// HiscoresSettings configures the hiscores client and its cache.
type HiscoresSettings struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

// HTTPSettings configures the JSON API.
type HTTPSettings struct {
	Address string
}

// fileConfig mirrors the HCL layout:
//
//	log_level = "debug"
//	bot { max_search_count = 10 }
//	hiscores { timeout = "5s" }
//	http { address = ":9090" }
type fileConfig struct {
	LogLevel string         `hcl:"log_level,optional"`
	Bot      *botBlock      `hcl:"bot,block"`
	Hiscores *hiscoresBlock `hcl:"hiscores,block"`
	HTTP     *httpBlock     `hcl:"http,block"`
}

type botBlock struct {
	DefaultSearchCount int   `hcl:"default_search_count,optional"`
	MaxSearchCount     int   `hcl:"max_search_count,optional"`
	RemoveCommands     *bool `hcl:"remove_commands,optional"`
}

type hiscoresBlock struct {
	BaseURL   string `hcl:"base_url,optional"`
	Timeout   string `hcl:"timeout,optional"`
	CacheSize int    `hcl:"cache_size,optional"`
	CacheTTL  string `hcl:"cache_ttl,optional"`
}

type httpBlock struct {
	Address string `hcl:"address,optional"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MaxTokens:   300,
		Temperature: 0.7,
		LogLevel:    "info",
		Bot: BotSettings{
			DefaultSearchCount: 5,
			MaxSearchCount:     25,
			RemoveCommands:     true,
		},
		Hiscores: HiscoresSettings{
			BaseURL:   "https://secure.runescape.com/m=hiscore",
			Timeout:   10 * time.Second,
			CacheSize: 256,
			CacheTTL:  10 * time.Minute,
		},
		HTTP: HTTPSettings{
			Address: ":8080",
		},
	}
}

// Load reads path (if it exists) and then applies environment overrides.
// An empty path means RUNEBOT_CONFIG, then DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = envOr("RUNEBOT_CONFIG", DefaultPath)
	}

	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if b := fc.Bot; b != nil {
		if b.DefaultSearchCount > 0 {
			c.Bot.DefaultSearchCount = b.DefaultSearchCount
		}
		if b.MaxSearchCount > 0 {
			c.Bot.MaxSearchCount = b.MaxSearchCount
		}
		if b.RemoveCommands != nil {
			c.Bot.RemoveCommands = *b.RemoveCommands
		}
	}
	if h := fc.Hiscores; h != nil {
		if h.BaseURL != "" {
			c.Hiscores.BaseURL = h.BaseURL
		}
		if h.CacheSize > 0 {
			c.Hiscores.CacheSize = h.CacheSize
		}
		if h.Timeout != "" {
			d, err := time.ParseDuration(h.Timeout)
			if err != nil {
				return fmt.Errorf("invalid hiscores timeout %q: %w", h.Timeout, err)
			}
			c.Hiscores.Timeout = d
		}
		if h.CacheTTL != "" {
			d, err := time.ParseDuration(h.CacheTTL)
			if err != nil {
				return fmt.Errorf("invalid hiscores cache_ttl %q: %w", h.CacheTTL, err)
			}
			c.Hiscores.CacheTTL = d
		}
	}
	if fc.HTTP != nil && fc.HTTP.Address != "" {
		c.HTTP.Address = fc.HTTP.Address
	}

	if c.Bot.DefaultSearchCount > c.Bot.MaxSearchCount {
		return fmt.Errorf("default_search_count %d exceeds max_search_count %d", c.Bot.DefaultSearchCount, c.Bot.MaxSearchCount)
	}
	return nil
}

func (c *Config) loadEnv() error {
	c.DiscordToken = os.Getenv("DISCORD_TOKEN")
	c.GuildID = os.Getenv("GUILD_ID")
	c.OpenAIToken = os.Getenv("OPENAI_API_KEY")
	c.LogLevel = envOr("LOG_LEVEL", c.LogLevel)
	c.HTTP.Address = envOr("HTTP_ADDR", c.HTTP.Address)
	c.Hiscores.BaseURL = envOr("HISCORES_URL", c.Hiscores.BaseURL)

	if v := os.Getenv("MAX_TOKENS"); v != "" {
		mt, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_TOKENS %q: %w", v, err)
		}
		c.MaxTokens = mt
	}
	if v := os.Getenv("TEMPERATURE"); v != "" {
		temp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid TEMPERATURE %q: %w", v, err)
		}
		c.Temperature = temp
	}
	return nil
}

// ValidateBot checks the settings the Discord bot cannot start without.
func (c *Config) ValidateBot() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	return nil
}

// ChatEnabled reports whether the /chat cog has credentials.
func (c *Config) ChatEnabled() bool {
	return c.OpenAIToken != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
