package config

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/dhimasank/ngobrol/internal/domain"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port string

	// Security
	AllowedOrigins []string

	// Rate Limiting
	RateLimitAPI rate.Limit
	RateLimitWS  rate.Limit

	// Per-connection inbound event limiting
	MessageRate  rate.Limit
	MessageBurst int

	// Logging
	LogLevel string

	// Chat
	MaxHistorySize int
	RecentMessages int
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Port:           "8080",
		AllowedOrigins: []string{"http://localhost:8080", "http://localhost:3000"},
		RateLimitAPI:   domain.DefaultRateLimitAPI,
		RateLimitWS:    domain.DefaultRateLimitWS,
		MessageRate:    domain.DefaultMessageRate,
		MessageBurst:   domain.DefaultMessageBurst,
		LogLevel:       "info", // Options: debug, info, warn, error, silent
		MaxHistorySize: domain.MaxHistorySize,
		RecentMessages: domain.RecentMessagesLimit,
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	cfg := DefaultConfig()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = parseOrigins(origins)
	}

	if rl := os.Getenv("RATE_LIMIT_API"); rl != "" {
		if val, err := strconv.Atoi(rl); err == nil && val > 0 {
			cfg.RateLimitAPI = rate.Limit(val)
		}
	}

	if rl := os.Getenv("RATE_LIMIT_WS"); rl != "" {
		if val, err := strconv.Atoi(rl); err == nil && val > 0 {
			cfg.RateLimitWS = rate.Limit(val)
		}
	}

	if rl := os.Getenv("MESSAGE_RATE"); rl != "" {
		if val, err := strconv.Atoi(rl); err == nil && val > 0 {
			cfg.MessageRate = rate.Limit(val)
		}
	}

	if b := os.Getenv("MESSAGE_BURST"); b != "" {
		if val, err := strconv.Atoi(b); err == nil && val > 0 {
			cfg.MessageBurst = val
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if size := os.Getenv("MAX_HISTORY_SIZE"); size != "" {
		if val, err := strconv.Atoi(size); err == nil && val > 0 {
			cfg.MaxHistorySize = val
		}
	}

	if limit := os.Getenv("RECENT_MESSAGES"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 {
			cfg.RecentMessages = val
		}
	}

	return cfg
}

// parseOrigins parses comma-separated origins
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
