package game

import (
	"strings"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/random"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// DefaultTypingWords is the built-in Typing Quest word list
var DefaultTypingWords = []string{
	"RUN", "EAT", "JUMP", "TAILWIND", "COMPONENT",
	"GAMIFY", "LEVELUP", "QUEST", "SKILL", "SYNTAX",
	"PROMISE", "ASYNCHRONOUS", "OPTIMIZE", "CANVAS", "DEPLOY",
	"WIDGET", "RENDER", "HOOKS", "ELEMENT", "FLUX",
}

// WordsPerLevel is how many completed words advance the quest one level
const WordsPerLevel = 5

// TypingQuest is the typing trainer state machine. Unlike the timed
// engines it is input-paced: the player advances by completing words, five
// per level. Wrong prefixes are flagged but never penalized.
type TypingQuest struct {
	words  []string
	random random.Random

	status       model.RoundStatus
	level        int
	score        int
	wordsInLevel int
	currentWord  string
	input        string
	incorrect    bool
}

// TypingSnapshot is a read-only view of the quest for rendering
type TypingSnapshot struct {
	Status        model.RoundStatus
	Level         int
	Score         int
	WordsInLevel  int
	LevelProgress int // percent of the current level completed
	CurrentWord   string
	Input         string
	Incorrect     bool
}

// NewTypingQuest creates an idle quest over the given word list, or the
// default list when words is empty
func NewTypingQuest(words []string, rnd random.Random) *TypingQuest {
	if len(words) == 0 {
		words = DefaultTypingWords
	}
	return &TypingQuest{
		words:  words,
		random: rnd,
		status: model.RoundIdle,
	}
}

// Start resets to level 1 with a fresh word. Restarting from finished or
// mid-quest re-enters fresh.
func (q *TypingQuest) Start() {
	q.status = model.RoundPlaying
	q.level = 1
	q.score = 0
	q.wordsInLevel = 0
	q.input = ""
	q.incorrect = false
	q.nextWord()
}

// Finish ends the quest
func (q *TypingQuest) Finish() {
	if q.status != model.RoundPlaying {
		return
	}
	q.status = model.RoundFinished
}

// Type processes the player's current input value. Input is uppercased as
// typed. A full match scores and advances; a valid prefix clears the
// incorrect flag; anything else sets it. No-op unless playing.
func (q *TypingQuest) Type(input string) {
	if q.status != model.RoundPlaying || q.currentWord == "" {
		return
	}

	q.input = strings.ToUpper(input)

	switch {
	case q.input == q.currentWord:
		q.incorrect = false
		q.score++
		q.advance()
	case strings.HasPrefix(q.currentWord, q.input):
		q.incorrect = false
	default:
		q.incorrect = len(q.input) > 0
	}
}

// Snapshot returns the current quest state
func (q *TypingQuest) Snapshot() TypingSnapshot {
	return TypingSnapshot{
		Status:        q.status,
		Level:         q.level,
		Score:         q.score,
		WordsInLevel:  q.wordsInLevel,
		LevelProgress: q.wordsInLevel * 100 / WordsPerLevel,
		CurrentWord:   q.currentWord,
		Input:         q.input,
		Incorrect:     q.incorrect,
	}
}

// advance moves to the next word, levelling up every WordsPerLevel words
func (q *TypingQuest) advance() {
	if q.wordsInLevel+1 >= WordsPerLevel {
		q.level++
		q.wordsInLevel = 0
	} else {
		q.wordsInLevel++
	}
	q.input = ""
	q.nextWord()
}

func (q *TypingQuest) nextWord() {
	q.currentWord = q.words[q.random.Intn(len(q.words))]
}
