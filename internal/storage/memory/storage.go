package memory

import (
	"context"
	"sync"

	"github.com/dyslexicore/dyslexicore-cli/internal/model"
	"github.com/dyslexicore/dyslexicore-cli/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	session   *model.Session
	wordLists map[string][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		wordLists: make(map[string][]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.session = &copied
	return nil
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, model.ErrSessionNotFound
	}
	copied := *s.session
	return &copied, nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, name string, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]string, len(words))
	copy(copied, words)
	s.wordLists[name] = copied
	return nil
}

func (s *Storage) GetWordList(ctx context.Context, name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.wordLists[name]
	if !ok {
		return nil, model.ErrEmptyWordList
	}
	copied := make([]string, len(words))
	copy(copied, words)
	return copied, nil
}
