package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

// setRequiredEnv sets the minimum environment for Load to succeed, with
// the DB under a temp dir so tests never create ./data.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("QDRANT_VECTOR_SIZE", "384")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.QdrantVectorSize != 384 {
		t.Errorf("QdrantVectorSize = %d, want 384", cfg.QdrantVectorSize)
	}
	if cfg.QdrantCollection != "docs" {
		t.Errorf("QdrantCollection = %q, want docs", cfg.QdrantCollection)
	}
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort = %q, want 9000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.LineWindow != 120 || cfg.LineOverlap != 20 {
		t.Errorf("line window = %d/%d, want 120/20", cfg.LineWindow, cfg.LineOverlap)
	}
	if cfg.WordWindow != 500 || cfg.WordOverlap != 100 {
		t.Errorf("word window = %d/%d, want 500/100", cfg.WordWindow, cfg.WordOverlap)
	}
}

func TestLoad_MissingVectorSize(t *testing.T) {
	t.Setenv("QDRANT_VECTOR_SIZE", "")
	if _, err := Load(); err == nil {
		t.Error("Load() expected error when QDRANT_VECTOR_SIZE is unset")
	}
}

func TestLoad_InvalidVectorSize(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("QDRANT_VECTOR_SIZE", tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() expected error for QDRANT_VECTOR_SIZE=%q", tt.value)
			}
		})
	}
}

func TestLoad_RejectsMisconfiguredWindows(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"line overlap equals window", "CHUNK_LINE_OVERLAP", "120"},
		{"line overlap exceeds window", "CHUNK_LINE_OVERLAP", "500"},
		{"word overlap equals window", "CHUNK_WORD_OVERLAP", "500"},
		{"zero word window", "CHUNK_WORD_WINDOW", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("Load() expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoad_CustomWindows(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHUNK_WORD_WINDOW", "200")
	t.Setenv("CHUNK_WORD_OVERLAP", "40")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WordWindow != 200 || cfg.WordOverlap != 40 {
		t.Errorf("word window = %d/%d, want 200/40", cfg.WordWindow, cfg.WordOverlap)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")
	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid LOG_LEVEL")
	}
}
