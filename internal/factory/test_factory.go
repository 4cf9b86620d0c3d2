package factory

import (
	"time"

	"github.com/dyslexicore/dyslexicore-cli/internal/config"
	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/mocks"
	"github.com/dyslexicore/dyslexicore-cli/internal/storage/memory"
	"github.com/dyslexicore/dyslexicore-cli/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and in-memory storage
func NewTestApp() *TestApp {
	cfg := config.DefaultConfig()
	cfg.Storage = config.StorageMemory

	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(cfg, store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
