package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dyslexicore/dyslexicore-cli/internal/model"
	"github.com/dyslexicore/dyslexicore-cli/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface, for
// shared classroom/kiosk installs where several seats use one Redis.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(s.cfg.Namespace), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(s.cfg.Namespace)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, model.ErrSessionCorrupted
	}
	if session.Token == "" {
		return nil, model.ErrSessionCorrupted
	}
	return &session, nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey(s.cfg.Namespace)).Err()
}

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, name string, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wordListKey(s.cfg.Namespace, name), data, 0).Err()
}

func (s *Storage) GetWordList(ctx context.Context, name string) ([]string, error) {
	data, err := s.client.Get(ctx, wordListKey(s.cfg.Namespace, name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrEmptyWordList
		}
		return nil, err
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	return words, nil
}
