package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `json:"port"`
	DistDir string `json:"dist_dir"`

	LLMProvider string `json:"llm_provider"`
	LLMModel    string `json:"llm_model"`
	LLMBaseURL  string `json:"llm_base_url"`

	OpenAIAPIKey   string `json:"openai_api_key"`
	DeepSeekAPIKey string `json:"deepseek_api_key"`

	MarketProvider string `json:"market_provider"`
	SidecarURL     string `json:"sidecar_url"`

	QuoteTTL        time.Duration `json:"quote_ttl"`
	FundamentalsTTL time.Duration `json:"fundamentals_ttl"`

	// HistoryDailyOnly forces whole-day bars for every history period
	// instead of intraday sampling for 1D/1W.
	HistoryDailyOnly bool `json:"history_daily_only"`

	Debug            bool `json:"debug"`
	EinoDebugEnabled bool `json:"eino_debug_enabled"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Port:    "5000",
		DistDir: "dist",

		LLMProvider: "openai",
		LLMModel:    "gpt-4o",
		LLMBaseURL:  "",

		MarketProvider: "yahoo",
		SidecarURL:     "http://localhost:5001",

		QuoteTTL:        5 * time.Minute,
		FundamentalsTTL: time.Hour,

		HistoryDailyOnly: false,

		Debug:            false,
		EinoDebugEnabled: false,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
	}
	if val := os.Getenv("DIST_DIR"); val != "" {
		c.DistDir = val
	}
	if val := os.Getenv("LLM_PROVIDER"); val != "" {
		c.LLMProvider = val
	}
	if val := os.Getenv("LLM_MODEL"); val != "" {
		c.LLMModel = val
	}
	if val := os.Getenv("LLM_BASE_URL"); val != "" {
		c.LLMBaseURL = val
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.OpenAIAPIKey = val
	}
	if val := os.Getenv("DEEPSEEK_API_KEY"); val != "" {
		c.DeepSeekAPIKey = val
	}
	if val := os.Getenv("MARKET_PROVIDER"); val != "" {
		c.MarketProvider = val
	}
	if val := os.Getenv("SIDECAR_URL"); val != "" {
		c.SidecarURL = val
	}
	if val := os.Getenv("QUOTE_TTL_SECONDS"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			c.QuoteTTL = time.Duration(secs) * time.Second
		}
	}
	if val := os.Getenv("FUNDAMENTALS_TTL_SECONDS"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			c.FundamentalsTTL = time.Duration(secs) * time.Second
		}
	}
	if val := os.Getenv("HISTORY_DAILY_ONLY"); val != "" {
		c.HistoryDailyOnly, _ = strconv.ParseBool(val)
	}
	if val := os.Getenv("DEBUG"); val != "" {
		c.Debug, _ = strconv.ParseBool(val)
	}
	if val := os.Getenv("EINO_DEBUG"); val != "" {
		c.EinoDebugEnabled, _ = strconv.ParseBool(val)
	}
}

// APIKey returns the credential for the configured LLM provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == "deepseek" {
		return c.DeepSeekAPIKey
	}
	return c.OpenAIAPIKey
}

// Validate checks that the configuration can actually drive the service.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case "openai", "deepseek":
	default:
		return fmt.Errorf("unknown LLM provider %q", c.LLMProvider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("%s API key not configured", c.LLMProvider)
	}
	switch c.MarketProvider {
	case "yahoo", "remote":
	default:
		return fmt.Errorf("unknown market provider %q", c.MarketProvider)
	}
	if c.MarketProvider == "remote" && c.SidecarURL == "" {
		return fmt.Errorf("market provider %q requires SIDECAR_URL", c.MarketProvider)
	}
	return nil
}
