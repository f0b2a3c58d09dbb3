package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// placeholderWeatherKey is the value shipped in the sample .env file.
const placeholderWeatherKey = "your_openweather_api_key_here"

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	Assistant  AssistantConfig
	OpenAI     OpenAIConfig
	Weather    WeatherConfig
	Stocks     StocksConfig
	Crypto     CryptoConfig
	System     SystemConfig
	PostgreSQL PostgreSQLConfig
	Debug      bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
	// StaticDir optionally serves the web client from disk
	StaticDir      string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// AssistantConfig holds persona and conversation settings
type AssistantConfig struct {
	Name          string
	Personality   string
	HistoryLimit  int
	SessionTTL    time.Duration
	EnrichTimeout time.Duration
	EnrichWorkers int
}

// OpenAIConfig holds OpenAI-compatible completion API configuration
type OpenAIConfig struct {
	APIKey          string
	APIBase         string
	ChatModel       string
	ChatTemperature float64
	ChatMaxTokens   int
	Timeout         int
	Enabled         bool
}

// WeatherConfig holds OpenWeather configuration
type WeatherConfig struct {
	APIKey  string
	APIBase string
	Timeout time.Duration
	Enabled bool
}

// StocksConfig holds equities price source configuration
type StocksConfig struct {
	APIBase string
	Timeout time.Duration
}

// CryptoConfig holds CoinGecko configuration
type CryptoConfig struct {
	APIBase string
	Timeout time.Duration
}

// SystemConfig holds settings for local system actions and telemetry
type SystemConfig struct {
	FolderBaseDir     string
	CPUSampleInterval time.Duration
}

// PostgreSQLConfig holds the optional interaction log database configuration
type PostgreSQLConfig struct {
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
	Enabled            bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	debug := getEnvAsBool("DEBUG", getEnvAsBool("FLASK_DEBUG", false))
	ginMode := getEnv("GIN_MODE", "release")
	if debug {
		ginMode = "debug"
	}

	weatherKey := getEnv("OPENWEATHER_API_KEY", "")
	dsn := getEnv("DATABASE_URL", getEnv("PG_DSN", ""))

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 5000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        ginMode,
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
			StaticDir:      getEnv("STATIC_DIR", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Assistant: AssistantConfig{
			Name:          getEnv("ASSISTANT_NAME", DefaultAssistantName),
			Personality:   getEnv("ASSISTANT_PERSONALITY", DefaultPersonality),
			HistoryLimit:  getEnvAsInt("HISTORY_LIMIT", 10),
			SessionTTL:    getEnvAsDuration("SESSION_TTL", 30*time.Minute),
			EnrichTimeout: getEnvAsDuration("ENRICH_TIMEOUT", 6*time.Second),
			EnrichWorkers: getEnvAsInt("ENRICH_WORKERS", 4),
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			APIBase:         getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:       getEnv("OPENAI_CHAT_MODEL", "gpt-3.5-turbo"),
			ChatTemperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.7),
			ChatMaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 150),
			Timeout:         getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:         getEnv("OPENAI_API_KEY", "") != "",
		},
		Weather: WeatherConfig{
			APIKey:  weatherKey,
			APIBase: getEnv("OPENWEATHER_API_BASE", "http://api.openweathermap.org/data/2.5"),
			Timeout: getEnvAsDuration("OPENWEATHER_TIMEOUT", 5*time.Second),
			Enabled: weatherKey != "" && weatherKey != placeholderWeatherKey,
		},
		Stocks: StocksConfig{
			APIBase: getEnv("STOCKS_API_BASE", "https://query1.finance.yahoo.com"),
			Timeout: getEnvAsDuration("STOCKS_TIMEOUT", 10*time.Second),
		},
		Crypto: CryptoConfig{
			APIBase: getEnv("COINGECKO_API_BASE", "https://api.coingecko.com/api/v3"),
			Timeout: getEnvAsDuration("COINGECKO_TIMEOUT", 5*time.Second),
		},
		System: SystemConfig{
			FolderBaseDir:     getEnv("FOLDER_BASE_DIR", ""),
			CPUSampleInterval: getEnvAsDuration("CPU_SAMPLE_INTERVAL", time.Second),
		},
		PostgreSQL: PostgreSQLConfig{
			DSN:                dsn,
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 5),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
			Enabled:            dsn != "",
		},
		Debug: debug,
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

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.ToLower(valueStr))
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go duration strings ("5s") or bare seconds ("5").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return value
}
