package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dyslexicore/dyslexicore-cli/internal/game"
	"github.com/dyslexicore/dyslexicore-cli/internal/lesson"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
	"github.com/dyslexicore/dyslexicore-cli/internal/session"
	"github.com/dyslexicore/dyslexicore-cli/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
}

func (s *IntegrationSuite) TestSessionSurvivesAppRestart() {
	ctx := context.Background()

	s.Require().NoError(s.app.Session.Restore(ctx))
	s.False(s.app.Session.IsAuthenticated())

	user := model.User{ID: 7, Email: "kid@example.org", FirstName: "Sam", Age: 9}
	s.Require().NoError(s.app.Session.Login(ctx, "tok_opaque", user))

	// A fresh store over the same storage plays the role of a restart
	restarted := session.New(s.app.Storage, s.app.MockClock, testutil.NopLogger())
	s.Require().NoError(restarted.Restore(ctx))

	s.True(restarted.IsAuthenticated())
	s.Equal("Sam", restarted.User().FirstName)

	s.Require().NoError(restarted.Logout(ctx))
	third := session.New(s.app.Storage, s.app.MockClock, testutil.NopLogger())
	s.Require().NoError(third.Restore(ctx))
	s.False(third.IsAuthenticated())
}

func (s *IntegrationSuite) TestFullAssessmentRound() {
	engine := game.NewEngine(game.AssessmentConfig(), s.app.MockRandom)
	runner := game.NewRunner(engine, s.app.MockClock, &game.NopSubmitter{}, s.app.Logger, game.Events{})

	errCh := make(chan error, 1)
	go func() {
		errCh <- runner.Run(context.Background())
	}()
	s.Require().Eventually(func() bool {
		return s.app.MockClock.LastTicker() != nil
	}, time.Second, time.Millisecond)

	ticker := s.app.MockClock.LastTicker()
	runner.Hit()
	runner.Hit()
	runner.Miss()
	for i := 0; i < game.AssessmentConfig().DurationSec; i++ {
		ticker.Tick(s.app.MockClock.Now())
	}

	s.Require().NoError(<-errCh)
	<-runner.SubmitDone()

	result := engine.Result()
	s.Equal("Phoneme Popper Game", result.TestType)
	s.InDelta(66.67, result.AccuracyPercent, 0.01)
	s.Equal(model.RiskModerate, model.RiskLevelFor(result.AccuracyPercent))
}

func (s *IntegrationSuite) TestLessonFromStoredWordList() {
	ctx := context.Background()

	s.Require().NoError(s.app.Storage.SaveWordList(ctx, "short-o", []string{"DOG", "POT", "LOG"}))
	words, err := s.app.Storage.GetWordList(ctx, "short-o")
	s.Require().NoError(err)

	built, err := lesson.NewLesson(words, s.app.MockRandom)
	s.Require().NoError(err)

	s.Equal("DOG", built.Snapshot().TargetWord)
	s.Equal(3, built.Snapshot().Total)
}
