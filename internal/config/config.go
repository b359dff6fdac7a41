package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Feed    FeedConfig
	Search  SearchConfig
	Scoring ScoringConfig
	OpenAI  OpenAIConfig
	Logging LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	RatePerMinute  int
}

// FeedConfig holds events feed configuration
type FeedConfig struct {
	URL      string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultLimit int
	ShowAllLimit int
	MaxLimit     int
}

// ScoringConfig holds the relevance scoring weights. They are tunable, not
// fixed; no secondary tie-break exists beyond stable catalog order.
type ScoringConfig struct {
	CityExact      int
	CityMention    int
	CityFuzzy      int
	DateOverlap    int
	TitleWord      int
	DescWord       int
	Baseline       int
	CategoryMatch  int
	FreeMatch      int
	FuzzyThreshold float64
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// OpenAIConfig holds the OpenAI-compatible API configuration used for intent
// extraction.
type OpenAIConfig struct {
	APIKey          string
	APIBase         string
	ChatModel       string
	ChatTemperature float64
	ChatMaxTokens   int
	Timeout         int
	Enabled         bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			RatePerMinute:  getEnvAsInt("CHAT_RATE_PER_MINUTE", 10),
		},
		Feed: FeedConfig{
			URL:      getEnv("EVENTS_FEED_URL", "https://back.lagenda.bj/events/"),
			Timeout:  time.Duration(getEnvAsInt("EVENTS_FEED_TIMEOUT", 15)) * time.Second,
			CacheTTL: time.Duration(getEnvAsInt("EVENTS_CACHE_TTL", 600)) * time.Second,
		},
		Search: SearchConfig{
			DefaultLimit: getEnvAsInt("SEARCH_DEFAULT_LIMIT", 5),
			ShowAllLimit: getEnvAsInt("SEARCH_SHOW_ALL_LIMIT", 20),
			MaxLimit:     getEnvAsInt("SEARCH_MAX_LIMIT", 100),
		},
		Scoring: ScoringConfig{
			CityExact:      getEnvAsInt("SCORE_CITY_EXACT", 50),
			CityMention:    getEnvAsInt("SCORE_CITY_MENTION", 20),
			CityFuzzy:      getEnvAsInt("SCORE_CITY_FUZZY", 30),
			DateOverlap:    getEnvAsInt("SCORE_DATE_OVERLAP", 40),
			TitleWord:      getEnvAsInt("SCORE_TITLE_WORD", 100),
			DescWord:       getEnvAsInt("SCORE_DESC_WORD", 30),
			Baseline:       getEnvAsInt("SCORE_BASELINE", 10),
			CategoryMatch:  getEnvAsInt("SCORE_CATEGORY_MATCH", 25),
			FreeMatch:      getEnvAsInt("SCORE_FREE_MATCH", 15),
			FuzzyThreshold: getEnvAsFloat("SCORE_FUZZY_THRESHOLD", 0.55),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			APIBase:         getEnv("OPENAI_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
			ChatModel:       getEnv("OPENAI_CHAT_MODEL", "gemini-2.5-flash"),
			ChatTemperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.1),
			ChatMaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 2048),
			Timeout:         getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:         getEnv("OPENAI_API_KEY", "") != "",
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
