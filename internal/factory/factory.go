package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dyslexicore/dyslexicore-cli/internal/backend"
	"github.com/dyslexicore/dyslexicore-cli/internal/chat"
	"github.com/dyslexicore/dyslexicore-cli/internal/config"
	"github.com/dyslexicore/dyslexicore-cli/internal/dashboard"
	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/clock"
	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/random"
	"github.com/dyslexicore/dyslexicore-cli/internal/session"
	"github.com/dyslexicore/dyslexicore-cli/internal/storage"
	filestorage "github.com/dyslexicore/dyslexicore-cli/internal/storage/file"
	"github.com/dyslexicore/dyslexicore-cli/internal/storage/memory"
	redisstorage "github.com/dyslexicore/dyslexicore-cli/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	Config config.Config

	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Backend   *backend.Client
	Session   *session.Store
	Chat      *chat.Simulator
	Dashboard *dashboard.Service

	Logger *slog.Logger
}

// New creates an application with all dependencies wired from config
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(cfg, store, clk, rnd, logger), nil
}

// newWithDependencies wires an App from the given dependencies (useful for
// testing with mocks)
func newWithDependencies(cfg config.Config, store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	client := backend.NewClient(cfg.BackendURL)
	sessionStore := session.New(store, clk, logger)

	chatCfg := chat.DefaultConfig()
	if cfg.ChatReplyDelay > 0 {
		chatCfg.ReplyDelay = cfg.ChatReplyDelay
	}

	return &App{
		Config:    cfg,
		Storage:   store,
		Clock:     clk,
		Random:    rnd,
		Backend:   client,
		Session:   sessionStore,
		Chat:      chat.NewSimulator(chatCfg, clk),
		Dashboard: dashboard.NewService(client, logger),
		Logger:    logger,
	}
}

func newStorage(cfg config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageFile:
		return filestorage.New(cfg.DataDir)
	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.Namespace = cfg.RedisNamespace
		if cfg.SessionTTL > 0 {
			redisCfg.SessionTTL = cfg.SessionTTL
		}
		return redisstorage.New(redisCfg)
	default:
		return nil, fmt.Errorf("invalid storage backend %q", cfg.Storage)
	}
}
