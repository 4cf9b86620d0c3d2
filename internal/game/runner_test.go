package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/mocks"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
	"github.com/dyslexicore/dyslexicore-cli/internal/testutil"
)

type recordingSubmitter struct {
	mu      sync.Mutex
	results []model.RoundResult
	err     error
}

func (r *recordingSubmitter) Submit(ctx context.Context, result model.RoundResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
	return r.err
}

func (r *recordingSubmitter) Results() []model.RoundResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.RoundResult(nil), r.results...)
}

type RunnerSuite struct {
	suite.Suite
	clock     *mocks.MockClock
	random    *mocks.MockRandom
	engine    *Engine
	submitter *recordingSubmitter
	finished  chan model.RoundResult
	runner    *Runner
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.engine = NewEngine(Config{
		TestType:    "Star Tracker",
		DurationSec: 2,
		Labels:      []string{"*"},
		Area:        Bounds{XMin: 15, XMax: 85, YMin: 20, YMax: 80},
	}, s.random)
	s.submitter = &recordingSubmitter{}
	s.finished = make(chan model.RoundResult, 1)
	s.runner = NewRunner(s.engine, s.clock, s.submitter, testutil.NopLogger(), Events{
		OnFinish: func(_ Snapshot, result model.RoundResult) {
			s.finished <- result
		},
	})
}

// startRun launches Run and waits until the loop's ticker exists
func (s *RunnerSuite) startRun(ctx context.Context) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.runner.Run(ctx)
	}()
	s.Require().Eventually(func() bool {
		return s.clock.LastTicker() != nil
	}, time.Second, time.Millisecond)
	return errCh
}

func (s *RunnerSuite) TestCountdownFinishesRoundAndStopsTicker() {
	errCh := s.startRun(context.Background())
	ticker := s.clock.LastTicker()

	ticker.Tick(s.clock.Now())
	ticker.Tick(s.clock.Now())

	s.Require().NoError(<-errCh)
	s.True(ticker.Stopped())

	result := <-s.finished
	s.Equal("Star Tracker", result.TestType)
	s.Equal(2, result.TotalTimeSec)
}

func (s *RunnerSuite) TestHitsAndMissesAreCounted() {
	errCh := s.startRun(context.Background())
	ticker := s.clock.LastTicker()

	s.runner.Hit()
	s.runner.Hit()
	s.runner.Miss()
	ticker.Tick(s.clock.Now())
	s.runner.Hit()
	ticker.Tick(s.clock.Now())

	s.Require().NoError(<-errCh)

	result := <-s.finished
	s.InDelta(75.0, result.AccuracyPercent, 1e-9) // 3 hits, 1 miss
}

func (s *RunnerSuite) TestResultIsSubmittedOnFinish() {
	errCh := s.startRun(context.Background())
	ticker := s.clock.LastTicker()

	ticker.Tick(s.clock.Now())
	ticker.Tick(s.clock.Now())
	s.Require().NoError(<-errCh)

	<-s.runner.SubmitDone()
	s.Require().Len(s.submitter.Results(), 1)
	s.Equal("Star Tracker", s.submitter.Results()[0].TestType)
}

func (s *RunnerSuite) TestSubmitFailureNeverBlocksFinish() {
	s.submitter.err = errors.New("backend unreachable")

	errCh := s.startRun(context.Background())
	ticker := s.clock.LastTicker()

	ticker.Tick(s.clock.Now())
	ticker.Tick(s.clock.Now())

	// The round still finishes cleanly from the player's perspective
	s.Require().NoError(<-errCh)
	result := <-s.finished
	s.Equal(model.RoundFinished, s.engine.Status())
	s.Equal("Star Tracker", result.TestType)
	<-s.runner.SubmitDone()
}

func (s *RunnerSuite) TestQuitAbandonsWithoutSubmitting() {
	errCh := s.startRun(context.Background())
	ticker := s.clock.LastTicker()

	s.runner.Quit()

	s.Require().NoError(<-errCh)
	s.True(ticker.Stopped())
	<-s.runner.SubmitDone()
	s.Empty(s.submitter.Results())
	s.Equal(model.RoundIdle, s.engine.Status())
}

func (s *RunnerSuite) TestContextCancellationStopsTicker() {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := s.startRun(ctx)
	ticker := s.clock.LastTicker()

	cancel()

	s.ErrorIs(<-errCh, context.Canceled)
	s.True(ticker.Stopped())
	<-s.runner.SubmitDone()
	s.Empty(s.submitter.Results())
}

func (s *RunnerSuite) TestInputAfterFinishIsDropped() {
	errCh := s.startRun(context.Background())
	ticker := s.clock.LastTicker()

	ticker.Tick(s.clock.Now())
	ticker.Tick(s.clock.Now())
	s.Require().NoError(<-errCh)

	before := s.engine.Snapshot()

	// Must return promptly and change nothing
	s.runner.Hit()
	s.runner.Miss()

	s.Equal(before, s.engine.Snapshot())
}

func (s *RunnerSuite) TestRunWhilePlayingFails() {
	errCh := s.startRun(context.Background())

	other := NewRunner(s.engine, s.clock, s.submitter, testutil.NopLogger(), Events{})
	s.ErrorIs(other.Run(context.Background()), model.ErrRoundAlreadyStarted)

	s.runner.Quit()
	s.Require().NoError(<-errCh)
}
