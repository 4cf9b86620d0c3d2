package storage

import (
	"context"

	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// Storage defines the interface for durable client-side state.
//
// The session entry is the authoritative copy of the bearer token and user
// profile; both are always written and cleared together. Word lists are
// cached copies of lesson content so kiosk installs can run offline.
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context) (*model.Session, error)
	ClearSession(ctx context.Context) error

	// Word list operations
	SaveWordList(ctx context.Context, name string, words []string) error
	GetWordList(ctx context.Context, name string) ([]string, error)
}
