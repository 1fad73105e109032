package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every external knob the service reads. It is built once in
// main and handed to the container, nothing reads the environment after
// startup.
type Config struct {
	Addr        string
	DatabaseDSN string

	StorageBackend  string // "supabase" or "local"
	SupabaseURL     string
	SupabaseKey     string
	StorageBucket   string
	LocalStorageDir string

	GeminiModel       string
	CompletionTimeout time.Duration

	QAServiceURL string

	MaxUploadBytes    int64
	ReplaceOnGenerate bool
}

func Load() Config {
	return Config{
		Addr:        envOr("ADDR", ":8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		StorageBackend:  envOr("STORAGE_BACKEND", "supabase"),
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseKey:     os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		StorageBucket:   envOr("STORAGE_BUCKET", "pdf-bucket"),
		LocalStorageDir: envOr("LOCAL_STORAGE_DIR", "storage/pdfs"),

		GeminiModel:       envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		CompletionTimeout: envDurationOr("COMPLETION_TIMEOUT", 120*time.Second),

		QAServiceURL: envOr("QA_SERVICE_URL", "http://localhost:8000"),

		MaxUploadBytes:    envInt64Or("MAX_UPLOAD_MB", 50) * 1024 * 1024,
		ReplaceOnGenerate: envBoolOr("SHORTS_REPLACE_ON_GENERATE", false),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envBoolOr(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
