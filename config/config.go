// Package config provides configuration management for the nutrition lookup tool.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DotEnvFile is the optional file read before the environment.
const DotEnvFile = ".env"

// Config holds the complete application configuration.
type Config struct {
	Server         ServerConfig
	FDC            FDCConfig
	Cache          CacheConfig
	Client         ClientConfig
	CircuitBreaker CircuitBreakerConfig
	Log            LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// FDCConfig holds the USDA FoodData Central settings.
type FDCConfig struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	PageSize int
}

// CacheConfig holds the food details cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// ClientConfig holds the terminal client settings.
type ClientConfig struct {
	APIBaseURL string
	Timeout    time.Duration
	Locale     string
}

// CircuitBreakerConfig is shared by the upstream and client breakers.
type CircuitBreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level  string
	Pretty bool
	// File receives client logs so they do not draw over the terminal UI.
	File string
}

// Load creates a Config from environment variables, after applying DotEnvFile when present.
func Load() Config {
	loadDotEnv(DotEnvFile)

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		FDC: FDCConfig{
			APIKey:   getEnv("USDA_API_KEY", "DEMO_KEY"),
			BaseURL:  strings.TrimRight(getEnv("FDC_BASE_URL", "https://api.nal.usda.gov/fdc/v1"), "/"),
			Timeout:  getEnvDuration("FDC_TIMEOUT", 10*time.Second),
			PageSize: getEnvInt("FDC_PAGE_SIZE", 20),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 30*time.Minute),
		},
		Client: ClientConfig{
			APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
			Timeout:    getEnvDuration("CLIENT_TIMEOUT", 15*time.Second),
			Locale:     getEnv("LOCALE", "en"),
		},
		CircuitBreaker: CircuitBreakerConfig{
			FailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			SuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			Timeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
			File:   getEnv("LOG_FILE", "nutrition.log"),
		},
	}
}

// loadDotEnv applies path to the environment without overriding variables that are already set.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("file", path).Msg("Ignoring unreadable env file")
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
