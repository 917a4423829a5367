package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Render   RenderConfig
	LLM      LLMConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	SQLitePath      string // used when DSN is empty
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	HealthTimeout   time.Duration
}

// ServerConfig holds the HTTP surface configuration
type ServerConfig struct {
	Addr           string
	AuthUsername   string
	AuthPassword   string
	AllowedOrigins []string
}

// StorageConfig holds bucket configuration. When AccountName is empty the
// application falls back to a local directory bucket at LocalRoot.
type StorageConfig struct {
	AccountName string
	AccountKey  string
	Container   string
	LocalRoot   string
}

// RenderConfig holds PDF rasterization settings
type RenderConfig struct {
	JPEGQuality int
}

// LLMConfig holds vision model configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	MaxRetries  uint
	PromptPath  string
}

// IngestConfig holds inbox watcher configuration
type IngestConfig struct {
	Roots       []string
	InitialScan bool
	Debounce    time.Duration
	Workers     int
	QueueSize   int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			SQLitePath:      getEnv("SQLITE_PATH", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			HealthTimeout:   getEnvAsDuration("DB_HEALTH_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			Addr:           getEnv("HTTP_ADDR", ":8080"),
			AuthUsername:   getEnv("AUTH_USERNAME", ""),
			AuthPassword:   getEnv("AUTH_PASSWORD", ""),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", nil),
		},
		Storage: StorageConfig{
			AccountName: getEnv("STORAGE_ACCOUNT_NAME", ""),
			AccountKey:  getEnv("STORAGE_ACCOUNT_KEY", ""),
			Container:   getEnv("STORAGE_CONTAINER", "purchase-orders"),
			LocalRoot:   getEnv("STORAGE_LOCAL_ROOT", "./bucket"),
		},
		Render: RenderConfig{
			JPEGQuality: getEnvAsInt("RENDER_JPEG_QUALITY", 90),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 240*time.Second),
			MaxRetries:  uint(getEnvAsInt("OPENAI_MAX_RETRIES", 3)),
			PromptPath:  getEnv("EXTRACTION_PROMPT_PATH", ""),
		},
		Ingest: IngestConfig{
			Roots:       getEnvAsList("INBOX_ROOTS", nil),
			InitialScan: getEnv("INBOX_INITIAL_SCAN", "true") == "true",
			Debounce:    getEnvAsDuration("INBOX_DEBOUNCE", 2*time.Second),
			Workers:     getEnvAsInt("INGEST_WORKERS", 2),
			QueueSize:   getEnvAsInt("INGEST_QUEUE_SIZE", 128),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the configuration needed to run the daemon.
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL or SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.AuthUsername == "" || c.Server.AuthPassword == "" {
		return NewAppError("CONFIG_ERROR", "AUTH_USERNAME and AUTH_PASSWORD are required", ErrInvalidInput)
	}
	if c.Storage.AccountName != "" && c.Storage.AccountKey == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_ACCOUNT_KEY is required with STORAGE_ACCOUNT_NAME", ErrInvalidInput)
	}
	return nil
}
