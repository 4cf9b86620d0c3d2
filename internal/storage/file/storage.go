package file

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dyslexicore/dyslexicore-cli/internal/model"
	"github.com/dyslexicore/dyslexicore-cli/internal/storage"
)

// Storage persists state as files under a directory, the default backend for
// a single-user install. The session lives in session.json with 0600 perms
// since it holds the bearer token.
type Storage struct {
	dir string
}

// New creates a file storage rooted at dir, creating it if needed
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Storage{dir: dir}, nil
}

// DefaultDir returns the default storage directory under the user's home
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dxcore"
	}
	return filepath.Join(home, ".dxcore")
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) sessionPath() string {
	return filepath.Join(s.dir, "session.json")
}

func (s *Storage) wordListPath(name string) string {
	return filepath.Join(s.dir, "wordlist_"+name+".txt")
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.sessionPath(), data, 0600)
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	data, err := os.ReadFile(s.sessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, model.ErrSessionCorrupted
	}
	if session.Token == "" {
		// A session without a token is as good as no session
		return nil, model.ErrSessionCorrupted
	}
	return &session, nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	err := os.Remove(s.sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Word list operations (one word per line, matching lesson data files)

func (s *Storage) SaveWordList(ctx context.Context, name string, words []string) error {
	return os.WriteFile(s.wordListPath(name), []byte(strings.Join(words, "\n")+"\n"), 0644)
}

func (s *Storage) GetWordList(ctx context.Context, name string) ([]string, error) {
	f, err := os.Open(s.wordListPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrEmptyWordList
		}
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, model.ErrEmptyWordList
	}
	return words, nil
}
