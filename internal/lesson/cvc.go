package lesson

import (
	"fmt"
	"strings"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/random"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// DefaultWords is the built-in Short A word set
var DefaultWords = []string{"CAT", "MAP", "FAN", "BAG"}

// DefaultConsonants is the cycling alphabet for the two consonant slots
var DefaultConsonants = []string{"B", "C", "D", "F", "G", "H", "J", "L", "M", "N", "P", "R", "S", "T", "V", "W", "Y", "Z"}

// DefaultVowels is the cycling alphabet for the middle slot
var DefaultVowels = []string{"A"}

// CompleteFeedback is shown once the last word has been built
const CompleteFeedback = "Lesson Complete! Great job with all the Short A words!"

// Slot indices into the three-letter word
const (
	SlotFirstConsonant = 0
	SlotVowel          = 1
	SlotLastConsonant  = 2
)

// CheckResult reports the outcome of checking the built word
type CheckResult struct {
	Correct  bool
	Complete bool
	Feedback string
}

// Snapshot is a read-only view of the lesson for rendering
type Snapshot struct {
	TargetWord string
	Slots      [3]string
	Index      int // zero-based position in the word list
	Total      int
	Complete   bool
}

// Lesson is the CVC word builder. The player cycles three letter slots
// (consonant, vowel, consonant) to spell each target word in turn. Each
// slot wraps around its own alphabet; consonant slots are shuffled whenever
// a new word is presented.
//
// Lesson is not safe for concurrent use.
type Lesson struct {
	words      []string
	consonants []string
	vowels     []string
	random     random.Random

	index    int
	slots    [3]string
	complete bool
}

// NewLesson creates a lesson over the given word list, or the built-in
// Short A set when words is empty. Words are uppercased; anything that is
// not exactly three letters is dropped.
func NewLesson(words []string, rnd random.Random) (*Lesson, error) {
	if len(words) == 0 {
		words = DefaultWords
	}

	usable := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) == 3 {
			usable = append(usable, w)
		}
	}
	if len(usable) == 0 {
		return nil, model.ErrEmptyWordList
	}

	l := &Lesson{
		words:      usable,
		consonants: DefaultConsonants,
		vowels:     DefaultVowels,
		random:     rnd,
	}
	l.presentWord()
	return l, nil
}

// Snapshot returns the current lesson state
func (l *Lesson) Snapshot() Snapshot {
	return Snapshot{
		TargetWord: l.words[l.index],
		Slots:      l.slots,
		Index:      l.index,
		Total:      len(l.words),
		Complete:   l.complete,
	}
}

// Attempt returns the word currently spelled by the slots
func (l *Lesson) Attempt() string {
	return l.slots[0] + l.slots[1] + l.slots[2]
}

// Cycle advances one slot to the next letter in its alphabet, wrapping
// around at the end. No-op once the lesson is complete or for an invalid
// slot index.
func (l *Lesson) Cycle(slot int) {
	if l.complete || slot < 0 || slot > 2 {
		return
	}
	alphabet := l.alphabetFor(slot)
	current := indexOf(alphabet, l.slots[slot])
	l.slots[slot] = alphabet[(current+1)%len(alphabet)]
}

// Check compares the built word against the target. A match advances to the
// next word, or completes the lesson at the last one; a mismatch leaves the
// position unchanged.
func (l *Lesson) Check() (CheckResult, error) {
	if l.complete {
		return CheckResult{}, model.ErrLessonComplete
	}

	target := l.words[l.index]
	if l.Attempt() != target {
		return CheckResult{
			Feedback: fmt.Sprintf("Try again! That word isn't %s.", target),
		}, nil
	}

	if l.index == len(l.words)-1 {
		l.complete = true
		return CheckResult{
			Correct:  true,
			Complete: true,
			Feedback: CompleteFeedback,
		}, nil
	}

	l.index++
	l.presentWord()
	return CheckResult{
		Correct:  true,
		Feedback: fmt.Sprintf("Awesome! That's the word %s!", target),
	}, nil
}

// Hint sets the slots to the current target's letters without counting as
// a check
func (l *Lesson) Hint() {
	if l.complete {
		return
	}
	target := l.words[l.index]
	l.slots[0] = string(target[0])
	l.slots[1] = string(target[1])
	l.slots[2] = string(target[2])
}

// SkipToEnd jumps to the last word in the list
func (l *Lesson) SkipToEnd() {
	if l.complete || l.index == len(l.words)-1 {
		return
	}
	l.index = len(l.words) - 1
	l.presentWord()
}

// presentWord shuffles the consonant slots and resets the vowel for the
// word at the current index
func (l *Lesson) presentWord() {
	l.slots[0] = l.consonants[l.random.Intn(len(l.consonants))]
	l.slots[1] = l.vowels[0]
	l.slots[2] = l.consonants[l.random.Intn(len(l.consonants))]
}

func (l *Lesson) alphabetFor(slot int) []string {
	if slot == SlotVowel {
		return l.vowels
	}
	return l.consonants
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}
