package game

import (
	"github.com/google/uuid"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/random"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// Bounds is the rectangle targets may spawn in, as percentages of the play
// area, so each variant can keep targets away from its HUD edges.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Config describes one mini-game variant
type Config struct {
	// TestType is the label submitted with the round result
	TestType string
	// DurationSec is the countdown length in seconds
	DurationSec int
	// Labels is the variant's target alphabet; one is drawn uniformly
	// for each spawned target
	Labels []string
	// Area bounds target positions
	Area Bounds
}

// Engine is the scoring state machine shared by the timed mini-games.
//
// It is a discrete-time machine: Tick advances the countdown, Hit and Miss
// record player actions. Nothing in here touches wall-clock time, so a test
// can interleave ticks and actions arbitrarily and the final counts are just
// the totals. The Runner is responsible for serializing calls; the Engine
// itself is not goroutine-safe.
type Engine struct {
	cfg    Config
	random random.Random

	id        model.RoundID
	status    model.RoundStatus
	score     int
	misses    int
	remaining int
	target    model.Target
}

// Snapshot is a read-only view of the round for rendering
type Snapshot struct {
	ID            model.RoundID
	Status        model.RoundStatus
	Score         int
	Misses        int
	RemainingTime int
	Target        model.Target
}

// NewEngine creates an idle engine for the given variant
func NewEngine(cfg Config, rnd random.Random) *Engine {
	return &Engine{
		cfg:    cfg,
		random: rnd,
		status: model.RoundIdle,
	}
}

// Start begins a fresh round: counters reset, countdown at the configured
// duration, first target spawned. Starting from finished is the explicit
// restart path and re-enters fresh.
func (e *Engine) Start() error {
	if e.status == model.RoundPlaying {
		return model.ErrRoundAlreadyStarted
	}

	e.id = model.RoundID(uuid.NewString())
	e.score = 0
	e.misses = 0
	e.remaining = e.cfg.DurationSec
	e.status = model.RoundPlaying
	e.spawnTarget()
	return nil
}

// Reset returns the engine to idle, abandoning any round in progress
func (e *Engine) Reset() {
	e.status = model.RoundIdle
	e.score = 0
	e.misses = 0
	e.remaining = 0
	e.target = model.Target{}
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the round finishes; exactly one finished transition occurs and the
// countdown never goes negative.
func (e *Engine) Tick() {
	if e.status != model.RoundPlaying {
		return
	}

	if e.remaining > 0 {
		e.remaining--
	}
	if e.remaining == 0 {
		e.status = model.RoundFinished
	}
}

// Hit records the player activating the current target. Returns true if the
// hit counted; hits while idle or finished are no-ops.
func (e *Engine) Hit() bool {
	if e.status != model.RoundPlaying {
		return false
	}
	e.score++
	e.spawnTarget()
	return true
}

// Miss records a click outside the target. No-op unless playing.
func (e *Engine) Miss() bool {
	if e.status != model.RoundPlaying {
		return false
	}
	e.misses++
	return true
}

// Finish ends the round early. No-op unless playing.
func (e *Engine) Finish() {
	if e.status != model.RoundPlaying {
		return
	}
	e.status = model.RoundFinished
}

// Status returns the current round status
func (e *Engine) Status() model.RoundStatus {
	return e.status
}

// Snapshot returns the current round state for rendering
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		ID:            e.id,
		Status:        e.status,
		Score:         e.score,
		Misses:        e.misses,
		RemainingTime: e.remaining,
		Target:        e.target,
	}
}

// Accuracy is hits/(hits+misses) in [0,1], defined as 0 with no attempts
func (e *Engine) Accuracy() float64 {
	attempts := e.score + e.misses
	if attempts == 0 {
		return 0
	}
	return float64(e.score) / float64(attempts)
}

// Result builds the submission payload for a finished round. The derived
// score formulas match what the platform's analysis pipeline expects.
func (e *Engine) Result() model.RoundResult {
	attempts := e.score + e.misses

	return model.RoundResult{
		TestType:           e.cfg.TestType,
		TotalTimeSec:       e.cfg.DurationSec,
		AccuracyPercent:    e.Accuracy() * 100,
		PhonologicalScore:  clamp01(float64(e.score) / 20.0),
		NamingSpeedScore:   clamp01(float64(attempts) / 25.0),
		WorkingMemoryScore: 0.85,
	}
}

// spawnTarget places a new target uniformly within the variant's bounds
// with a uniformly drawn label
func (e *Engine) spawnTarget() {
	area := e.cfg.Area
	e.target = model.Target{
		X:     area.XMin + e.random.Float64()*(area.XMax-area.XMin),
		Y:     area.YMin + e.random.Float64()*(area.YMax-area.YMin),
		Label: e.random.Pick(e.cfg.Labels),
	}
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
