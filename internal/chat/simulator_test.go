package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/mocks"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

type SimulatorSuite struct {
	suite.Suite
	clock     *mocks.MockClock
	simulator *Simulator
}

func TestSimulatorSuite(t *testing.T) {
	suite.Run(t, new(SimulatorSuite))
}

func (s *SimulatorSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	s.simulator = NewSimulator(DefaultConfig(), s.clock)
}

// send runs Send in the background and releases it by advancing the clock
// past the reply delay
func (s *SimulatorSuite) send(text string) model.ChatMessage {
	type outcome struct {
		reply model.ChatMessage
		err   error
	}
	ch := make(chan outcome, 1)
	go func() {
		reply, err := s.simulator.Send(context.Background(), text)
		ch <- outcome{reply, err}
	}()

	s.Require().Eventually(func() bool {
		return s.clock.PendingAfters() > 0
	}, time.Second, time.Millisecond)
	s.clock.Advance(DefaultConfig().ReplyDelay)

	out := <-ch
	s.Require().NoError(out.err)
	return out.reply
}

func (s *SimulatorSuite) TestKnownQuestionGetsCannedReply() {
	reply := s.send("What is dyslexia?")

	s.Equal(model.SenderAssistant, reply.Sender)
	s.Contains(reply.Text, "superpower")
}

func (s *SimulatorSuite) TestMatchingIgnoresCaseAndPunctuation() {
	reply := s.send("  Hey!! WHY do letters MOVE??  ")
	s.Contains(reply.Text, "colored overlays")
}

func (s *SimulatorSuite) TestFirstMatchingRuleWins() {
	// Mentions two known phrases; the earlier table entry answers
	reply := s.send("what is dyslexia? and how do i read better?")
	s.Contains(reply.Text, "superpower")
}

func (s *SimulatorSuite) TestUnknownQuestionGetsFallback() {
	reply := s.send("what's for lunch")
	s.Equal(Fallback, reply.Text)
}

func (s *SimulatorSuite) TestEmptyMessageRejected() {
	_, err := s.simulator.Send(context.Background(), "   ")
	s.ErrorIs(err, model.ErrEmptyMessage)
	s.Empty(s.simulator.Transcript())
}

func (s *SimulatorSuite) TestTranscriptIsAppendOnly() {
	s.send("what is dyslexia?")
	s.send("something else entirely")

	transcript := s.simulator.Transcript()
	s.Require().Len(transcript, 4)
	s.Equal(model.SenderUser, transcript[0].Sender)
	s.Equal(model.SenderAssistant, transcript[1].Sender)
	s.Equal("something else entirely", transcript[2].Text)
	s.Equal(Fallback, transcript[3].Text)
}

func (s *SimulatorSuite) TestCancelledWaitDiscardsReply() {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := s.simulator.Send(ctx, "can i still be smart?")
		errCh <- err
	}()

	s.Require().Eventually(func() bool {
		return s.clock.PendingAfters() > 0
	}, time.Second, time.Millisecond)
	cancel()

	s.ErrorIs(<-errCh, context.Canceled)

	// The user's message stays; the reply never lands
	transcript := s.simulator.Transcript()
	s.Require().Len(transcript, 1)
	s.Equal(model.SenderUser, transcript[0].Sender)
}

func (s *SimulatorSuite) TestEveryQuickQuestionHasAnAnswer() {
	for _, q := range QuickQuestions() {
		s.NotEqual(Fallback, replyTo(q), q)
	}
}

func (s *SimulatorSuite) TestGreetingUsesFirstName() {
	s.Contains(s.simulator.Greeting("Maya"), "Hello Maya!")
	s.Contains(s.simulator.Greeting(""), "Hello there!")
}
