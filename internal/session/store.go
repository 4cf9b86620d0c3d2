package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/clock"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
	"github.com/dyslexicore/dyslexicore-cli/internal/storage"
)

// Store owns the current session. It is created once at startup, restored
// explicitly, and passed to every screen that needs the token or profile.
//
// Invariant: the in-memory session and the durable copy either both hold a
// token and a user, or neither does. Login writes durable state first and
// only then updates memory, so a storage failure never leaves a
// half-populated session.
type Store struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu      sync.RWMutex
	current *model.Session
	ready   bool
}

// New creates a session store backed by the given storage
func New(st storage.Storage, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		storage: st,
		clock:   clk,
		logger:  logger,
	}
}

// Restore loads any persisted session. It fails open: a missing, corrupted,
// or expired entry leaves the store logged out and discards the bad entry.
// The store is marked ready even on failure so screens can render the
// unauthenticated state instead of waiting forever.
func (s *Store) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
	}()

	stored, err := s.storage.GetSession(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil
		}
		if errors.Is(err, model.ErrSessionCorrupted) {
			s.logger.Warn("discarding corrupted session entry")
			_ = s.storage.ClearSession(ctx)
			return nil
		}
		return err
	}

	if s.tokenExpired(stored.Token) {
		s.logger.Info("stored token has expired, logging out")
		_ = s.storage.ClearSession(ctx)
		return nil
	}

	s.mu.Lock()
	s.current = stored
	s.mu.Unlock()
	return nil
}

// Login stores the token and user durably and marks the session
// authenticated. Any prior session is overwritten.
func (s *Store) Login(ctx context.Context, token string, user model.User) error {
	session := &model.Session{
		Token:   token,
		User:    user,
		SavedAt: s.clock.Now(),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = session
	s.ready = true
	s.mu.Unlock()

	s.logger.Info("logged in", slog.String("email", user.Email))
	return nil
}

// Logout clears durable storage and in-memory state
func (s *Store) Logout(ctx context.Context) error {
	if err := s.storage.ClearSession(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.logger.Info("logged out")
	return nil
}

// IsAuthenticated reports whether a session is held. Derived purely from
// token presence; the token-user pairing is guaranteed by construction.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Token != ""
}

// Ready reports whether the initial Restore has completed. Screens must not
// branch on IsAuthenticated before Ready returns true.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Current returns the active session
func (s *Store) Current() (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, model.ErrNotAuthenticated
	}
	copied := *s.current
	return &copied, nil
}

// Token returns the bearer token, or "" when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// User returns the stored profile, or the zero User when logged out
func (s *Store) User() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.User{}
	}
	return s.current.User
}

// tokenExpired peeks at the token's JWT exp claim without verifying the
// signature; verification is the backend's job. Opaque or claim-less tokens
// are treated as live and left for the backend to reject.
func (s *Store) tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return s.clock.Now().After(exp.Time)
}
