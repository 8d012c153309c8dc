package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"ragquery/internal/chunker"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL       string
	LLMModel         string
	LLMAPIKey        string
	EmbeddingBaseURL string
	EmbeddingModel   string
	DBPath           string
	QdrantURL        string
	QdrantCollection string
	QdrantVectorSize int
	APIPort          string
	LogLevel         slog.Level
	LogFormat        string

	// Chunk window configuration. Overlap must stay below the window;
	// both pairs are validated at load so a bad pair can never reach the
	// segmenters.
	LineWindow  int
	LineOverlap int
	WordWindow  int
	WordOverlap int
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up a few directories looking for a .env at the project root.
	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:       getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMAPIKey:        getEnv("LLM_API_KEY", ""),
		EmbeddingBaseURL: getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL_NAME", "all-MiniLM-L6-v2"),
		DBPath:           getEnv("DB_PATH", "./data/ragquery.db"),
		QdrantURL:        getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "docs"),
		APIPort:          getEnv("API_PORT", "9000"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// QDRANT_VECTOR_SIZE must match the output size of the embeddings
	// model; if it changes, the collection must be recreated.
	vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", "")
	if vectorSizeStr == "" {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE is required")
	}
	vectorSize, err := strconv.Atoi(vectorSizeStr)
	if err != nil {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	cfg.QdrantVectorSize = vectorSize

	if cfg.LineWindow, err = getEnvInt("CHUNK_LINE_WINDOW", chunker.DefaultLineWindow); err != nil {
		return nil, err
	}
	if cfg.LineOverlap, err = getEnvInt("CHUNK_LINE_OVERLAP", chunker.DefaultLineOverlap); err != nil {
		return nil, err
	}
	if cfg.WordWindow, err = getEnvInt("CHUNK_WORD_WINDOW", chunker.DefaultWordWindow); err != nil {
		return nil, err
	}
	if cfg.WordOverlap, err = getEnvInt("CHUNK_WORD_OVERLAP", chunker.DefaultWordOverlap); err != nil {
		return nil, err
	}

	if err := validateWindow("line", cfg.LineWindow, cfg.LineOverlap); err != nil {
		return nil, err
	}
	if err := validateWindow("word", cfg.WordWindow, cfg.WordOverlap); err != nil {
		return nil, err
	}

	// Create the data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// validateWindow rejects window/overlap pairs that would stall the
// sliding-window cursor.
func validateWindow(kind string, window, overlap int) error {
	if window <= 0 {
		return fmt.Errorf("%s chunk window must be greater than 0, got %d", kind, window)
	}
	if overlap < 0 || overlap >= window {
		return fmt.Errorf("%s chunk overlap must be in [0, window), got overlap %d with window %d", kind, overlap, window)
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return n, nil
}
