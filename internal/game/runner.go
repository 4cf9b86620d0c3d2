package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/dyslexicore/dyslexicore-cli/internal/dependencies/clock"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

type inputKind int

const (
	inputHit inputKind = iota
	inputMiss
	inputQuit
)

// Events are callbacks fired from the runner's loop goroutine. They run on
// the event loop, so handlers must not block and must not call back into
// the runner synchronously.
type Events struct {
	// OnUpdate fires after every state change (tick, hit, miss)
	OnUpdate func(Snapshot)
	// OnFinish fires once when the round finishes
	OnFinish func(Snapshot, model.RoundResult)
}

// Runner drives an Engine in real time. It owns the round's ticker and
// serializes all engine mutation onto a single loop, which is the only
// place engine methods are called once Run starts.
//
// The ticker acquired on entering the playing state is stopped on every
// exit path: countdown completion, player quit, and context cancellation.
type Runner struct {
	engine    *Engine
	clock     clock.Clock
	submitter Submitter
	logger    *slog.Logger
	events    Events

	input      chan inputKind
	done       chan struct{}
	submitDone chan struct{}
}

// NewRunner creates a runner for one round of the given engine
func NewRunner(engine *Engine, clk clock.Clock, submitter Submitter, logger *slog.Logger, events Events) *Runner {
	return &Runner{
		engine:     engine,
		clock:      clk,
		submitter:  submitter,
		logger:     logger,
		events:     events,
		input:      make(chan inputKind),
		done:       make(chan struct{}),
		submitDone: make(chan struct{}),
	}
}

// Hit reports the player activating the current target. Safe to call from
// any goroutine; dropped once the round is over.
func (r *Runner) Hit() {
	select {
	case r.input <- inputHit:
	case <-r.done:
	}
}

// Miss reports a click outside the target
func (r *Runner) Miss() {
	select {
	case r.input <- inputMiss:
	case <-r.done:
	}
}

// Quit abandons the round without finishing it
func (r *Runner) Quit() {
	select {
	case r.input <- inputQuit:
	case <-r.done:
	}
}

// SubmitDone is closed once result submission has completed or been
// abandoned. Only tests and shutdown paths should need to wait on it.
func (r *Runner) SubmitDone() <-chan struct{} {
	return r.submitDone
}

// Run starts the round and processes ticks and player input until the
// countdown completes, the player quits, or ctx is cancelled. It returns
// ctx.Err on cancellation and nil otherwise.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.engine.Start(); err != nil {
		close(r.done)
		close(r.submitDone)
		return err
	}

	ticker := r.clock.NewTicker(time.Second)
	defer ticker.Stop()
	defer close(r.done)

	r.notifyUpdate()

	for {
		// A tick pending at the same instant as player input wins, so a
		// hit racing the terminal tick cannot reopen a finished round.
		select {
		case <-ticker.C():
			if r.tick(ctx) {
				return nil
			}
			continue
		default:
		}

		select {
		case <-ctx.Done():
			// Teardown without finishing: no result is submitted and
			// any in-flight notion of this round is discarded
			close(r.submitDone)
			return ctx.Err()
		case <-ticker.C():
			if r.tick(ctx) {
				return nil
			}
		case in := <-r.input:
			switch in {
			case inputHit:
				r.engine.Hit()
			case inputMiss:
				r.engine.Miss()
			case inputQuit:
				r.engine.Reset()
				close(r.submitDone)
				return nil
			}
			r.notifyUpdate()
		}
	}
}

// tick advances the countdown; returns true once the round has finished
func (r *Runner) tick(ctx context.Context) bool {
	r.engine.Tick()
	r.notifyUpdate()

	if r.engine.Status() != model.RoundFinished {
		return false
	}

	snapshot := r.engine.Snapshot()
	result := r.engine.Result()
	if r.events.OnFinish != nil {
		r.events.OnFinish(snapshot, result)
	}

	// Fire-and-forget upload. A failure is logged and never blocks the
	// finished transition; a response arriving after ctx is cancelled is
	// simply dropped with the goroutine.
	go func() {
		defer close(r.submitDone)
		if err := r.submitter.Submit(ctx, result); err != nil {
			r.logger.Warn("failed to submit round result",
				slog.String("test_type", result.TestType),
				slog.String("error", err.Error()),
			)
		}
	}()

	return true
}

func (r *Runner) notifyUpdate() {
	if r.events.OnUpdate != nil {
		r.events.OnUpdate(r.engine.Snapshot())
	}
}
