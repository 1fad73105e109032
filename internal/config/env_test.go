package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "supabase", cfg.StorageBackend)
	assert.Equal(t, "pdf-bucket", cfg.StorageBucket)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 120*time.Second, cfg.CompletionTimeout)
	assert.Equal(t, int64(50*1024*1024), cfg.MaxUploadBytes)
	assert.False(t, cfg.ReplaceOnGenerate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("STORAGE_BACKEND", "local")
	t.Setenv("MAX_UPLOAD_MB", "10")
	t.Setenv("COMPLETION_TIMEOUT", "30s")
	t.Setenv("SHORTS_REPLACE_ON_GENERATE", "true")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "local", cfg.StorageBackend)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.CompletionTimeout)
	assert.True(t, cfg.ReplaceOnGenerate)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "-3")
	t.Setenv("COMPLETION_TIMEOUT", "soon")
	t.Setenv("SHORTS_REPLACE_ON_GENERATE", "maybe")

	cfg := Load()

	assert.Equal(t, int64(50*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, 120*time.Second, cfg.CompletionTimeout)
	assert.False(t, cfg.ReplaceOnGenerate)
}
