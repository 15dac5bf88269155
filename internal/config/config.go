package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults match the widget deployment: port 3000 and the Gemini
// generateContent endpoint.
const (
	defaultPort        = "3000"
	defaultProvider    = "gemini"
	defaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-09-2025:generateContent"
	defaultOpenAIURL   = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultTimeout     = 20 * time.Second
	defaultMaxAttempts = 3
)

type Config struct {
	Port        string
	DatabaseURL string

	Provider    string
	APIURL      string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxAttempts int
}

// Load reads the configuration from the environment once at startup.
// Components receive the values by injection and never re-read them.
func Load() Config {
	cfg := Config{
		Port:        getenv("PORT", defaultPort),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Provider:    getenv("LLM_PROVIDER", defaultProvider),
		APIURL:      os.Getenv("LLM_API_URL"),
		APIKey:      os.Getenv("LLM_API_KEY"),
		Model:       getenv("LLM_MODEL", defaultOpenAIModel),
		Timeout:     defaultTimeout,
		MaxAttempts: defaultMaxAttempts,
	}
	if cfg.APIURL == "" {
		switch cfg.Provider {
		case "openai":
			cfg.APIURL = defaultOpenAIURL
		default:
			cfg.APIURL = defaultGeminiURL
		}
	}
	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttempts = n
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
