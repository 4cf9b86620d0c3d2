package mocks

import (
	"sync"
	"time"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	mu          sync.Mutex
	CurrentTime time.Time
	tickers     []*MockTicker
	afters      []pendingAfter
}

type pendingAfter struct {
	deadline time.Time
	ch       chan time.Time
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.CurrentTime
}

// NewTicker returns a MockTicker; ticks are delivered manually via Tick
func (c *MockClock) NewTicker(d time.Duration) clock.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := NewMockTicker()
	c.tickers = append(c.tickers, t)
	return t
}

// After registers a channel that fires once Advance moves past the deadline
func (c *MockClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	c.afters = append(c.afters, pendingAfter{deadline: c.CurrentTime.Add(d), ch: ch})
	return ch
}

// Advance moves the clock forward and fires any afters that came due
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CurrentTime = c.CurrentTime.Add(d)

	remaining := c.afters[:0]
	for _, a := range c.afters {
		if !a.deadline.After(c.CurrentTime) {
			a.ch <- c.CurrentTime
		} else {
			remaining = append(remaining, a)
		}
	}
	c.afters = remaining
}

// PendingAfters reports how many After channels have not yet fired
func (c *MockClock) PendingAfters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.afters)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CurrentTime = t
}

// Tickers returns all tickers handed out so far
func (c *MockClock) Tickers() []*MockTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*MockTicker(nil), c.tickers...)
}

// LastTicker returns the most recently created ticker, or nil
func (c *MockClock) LastTicker() *MockTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tickers) == 0 {
		return nil
	}
	return c.tickers[len(c.tickers)-1]
}

// MockTicker is a manually driven Ticker for testing
type MockTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

// Ensure MockTicker implements Ticker
var _ clock.Ticker = (*MockTicker)(nil)

// NewMockTicker creates a MockTicker
func NewMockTicker() *MockTicker {
	return &MockTicker{ch: make(chan time.Time)}
}

// C returns the tick channel
func (t *MockTicker) C() <-chan time.Time {
	return t.ch
}

// Stop marks the ticker stopped; subsequent Tick calls are ignored
func (t *MockTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop has been called
func (t *MockTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Tick delivers one tick, blocking until the consumer receives it.
// It is a no-op after Stop.
func (t *MockTicker) Tick(at time.Time) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()
	t.ch <- at
}
