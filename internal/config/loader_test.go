package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type LoaderSuite struct {
	suite.Suite
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func (s *LoaderSuite) TestDefaults() {
	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("info", cfg.LogLevel)
	s.Equal("http://127.0.0.1:8000", cfg.BackendURL)
	s.Equal(StorageFile, cfg.Storage)
	s.Equal(1200*time.Millisecond, cfg.ChatReplyDelay)
}

func (s *LoaderSuite) TestEnvOverridesDefaults() {
	s.T().Setenv("DXCORE_BACKEND_URL", "https://learn.example.org")
	s.T().Setenv("DXCORE_STORAGE", "memory")
	s.T().Setenv("DXCORE_SESSION_TTL", "36h")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("https://learn.example.org", cfg.BackendURL)
	s.Equal(StorageMemory, cfg.Storage)
	s.Equal(36*time.Hour, cfg.SessionTTL)
	// Untouched fields keep their defaults
	s.Equal("info", cfg.LogLevel)
}

func (s *LoaderSuite) TestFileOverridesDefaults() {
	path := filepath.Join(s.T().TempDir(), "dxcore.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("log_level: debug\nredis_namespace: seat-3\n"), 0644))
	s.T().Setenv("DXCORE_CONFIG", path)

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("debug", cfg.LogLevel)
	s.Equal("seat-3", cfg.RedisNamespace)
}

func (s *LoaderSuite) TestEnvBeatsFile() {
	path := filepath.Join(s.T().TempDir(), "dxcore.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("log_level: debug\n"), 0644))
	s.T().Setenv("DXCORE_CONFIG", path)
	s.T().Setenv("DXCORE_LOG_LEVEL", "warn")

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal("warn", cfg.LogLevel)
}

func (s *LoaderSuite) TestMissingConfigFileFails() {
	s.T().Setenv("DXCORE_CONFIG", filepath.Join(s.T().TempDir(), "nope.yaml"))

	_, err := Load()
	s.Error(err)
}

func (s *LoaderSuite) TestUnknownStorageRejected() {
	s.T().Setenv("DXCORE_STORAGE", "carrier-pigeon")

	_, err := Load()
	s.Error(err)
}
