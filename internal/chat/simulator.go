package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/clock"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// rule maps a normalized keyword phrase to its canned reply. Rules are
// matched by substring in declaration order; the first match wins.
type rule struct {
	keyword  string
	response string
}

var responseRules = []rule{
	{
		keyword:  "what is dyslexia?",
		response: "Dyslexia is like having a unique superpower for seeing things differently! It just means your brain takes a slightly different path when reading and spelling. It has nothing to do with how smart you are. Many brilliant people have dyslexia!",
	},
	{
		keyword:  "how do i read better?",
		response: "Great question! Try using a finger or a ruler to keep your place. Read the words out loud slowly, focusing on one sound at a time. The Phonics Adventure games are designed to help you practice blending sounds!",
	},
	{
		keyword:  "can i still be smart?",
		response: "Absolutely, 100% YES! Dyslexia affects reading, not intelligence. Many inventors, artists, and business leaders are dyslexic. You have strengths in creativity, problem-solving, and thinking visually.",
	},
	{
		keyword:  "why do letters move?",
		response: "That feeling is real! When you have dyslexia, sometimes your brain flips or jumbles the order of letters, making them seem like they're moving. Using a reading pen or colored overlays can sometimes help your eyes and brain work together better.",
	},
	{
		keyword:  "how can i focus on homework?",
		response: "Break it down! Set a timer for short bursts (like 15 minutes), take a short break, then repeat. Find a quiet spot, and use bright colours to highlight important parts of the text. Don't be afraid to ask for help!",
	},
}

// Fallback is the reply when no rule matches
const Fallback = "I'm still learning the answer to that specific question! Try asking one of the quick questions above, or ask me about CVC words."

var quickQuestions = []string{
	"What is dyslexia?",
	"How do I read better?",
	"Can I still be smart?",
	"Why do letters move?",
	"How can I focus on homework?",
}

// QuickQuestions returns the suggested prompts shown alongside the chat
func QuickQuestions() []string {
	return append([]string(nil), quickQuestions...)
}

// Config holds chat simulator settings
type Config struct {
	// ReplyDelay is the simulated thinking time before a reply lands
	ReplyDelay time.Duration
}

// DefaultConfig returns the default chat configuration
func DefaultConfig() Config {
	return Config{ReplyDelay: 1200 * time.Millisecond}
}

// Simulator is the offline companion chat. Replies come from a fixed
// keyword table after a simulated delay; the transcript is append-only and
// lives only in memory.
//
// Simulator is not safe for concurrent use; callers serialize Send.
type Simulator struct {
	config     Config
	clock      clock.Clock
	transcript []model.ChatMessage
}

// NewSimulator creates a simulator with an empty transcript
func NewSimulator(config Config, clk clock.Clock) *Simulator {
	return &Simulator{
		config: config,
		clock:  clk,
	}
}

// Greeting returns the opening line shown before any messages exist
func (s *Simulator) Greeting(firstName string) string {
	if firstName == "" {
		firstName = "there"
	}
	return fmt.Sprintf("Hello %s! I'm your Smart Companion. Ask me anything about learning, reading, or homework help, and I'll give you a dyslexia-friendly answer.", firstName)
}

// Send records the user's message, waits the configured reply delay, then
// records and returns the companion's reply. If ctx is cancelled during the
// wait the reply is discarded and never appended.
func (s *Simulator) Send(ctx context.Context, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, model.ErrEmptyMessage
	}

	s.transcript = append(s.transcript, model.ChatMessage{Sender: model.SenderUser, Text: text})

	reply := model.ChatMessage{Sender: model.SenderAssistant, Text: replyTo(text)}

	select {
	case <-ctx.Done():
		return model.ChatMessage{}, ctx.Err()
	case <-s.clock.After(s.config.ReplyDelay):
	}

	s.transcript = append(s.transcript, reply)
	return reply, nil
}

// Transcript returns a copy of the conversation so far
func (s *Simulator) Transcript() []model.ChatMessage {
	return append([]model.ChatMessage(nil), s.transcript...)
}

// replyTo picks the canned response for a message, or the fallback
func replyTo(text string) string {
	normalized := normalize(text)
	for _, r := range responseRules {
		if strings.Contains(normalized, r.keyword) {
			return r.response
		}
	}
	return Fallback
}

// normalize lowercases, trims, and strips everything outside [a-z0-9 ?]
func normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '?':
			return r
		default:
			return -1
		}
	}, lowered)
}
