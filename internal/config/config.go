package config

import (
	"fmt"
	"time"

	"github.com/dyslexicore/dyslexicore-cli/internal/storage/file"
)

// Storage backend names accepted in configuration
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

// Config holds all settings for the companion CLI
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// LogFile is where the rotating JSON log goes; stdout stays clean for
	// command output
	LogFile string `koanf:"log_file"`

	// BackendURL is the base URL of the learning platform API
	BackendURL string `koanf:"backend_url"`

	// Storage selects the session backend: memory, file, or redis
	Storage string `koanf:"storage"`

	// DataDir is where the file backend keeps its session and word lists
	DataDir string `koanf:"data_dir"`

	// Redis settings, used only when Storage is "redis"
	RedisURL       string        `koanf:"redis_url"`
	RedisNamespace string        `koanf:"redis_namespace"`
	SessionTTL     time.Duration `koanf:"session_ttl"`

	// ChatReplyDelay is the companion chat's simulated thinking time
	ChatReplyDelay time.Duration `koanf:"chat_reply_delay"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	dataDir := file.DefaultDir()
	return Config{
		LogLevel:       "info",
		LogFile:        "", // derived from DataDir when empty
		BackendURL:     "http://127.0.0.1:8000",
		Storage:        StorageFile,
		DataDir:        dataDir,
		RedisURL:       "redis://localhost:6379",
		RedisNamespace: "default",
		SessionTTL:     24 * time.Hour,
		ChatReplyDelay: 1200 * time.Millisecond,
	}
}

// Validate checks the configuration for values nothing downstream can use
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageFile, StorageRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	if c.BackendURL == "" {
		return fmt.Errorf("backend_url must not be empty")
	}
	return nil
}
