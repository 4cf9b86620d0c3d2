package dashboard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dyslexicore/dyslexicore-cli/internal/backend"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// Backend is the slice of the platform API the dashboard reads from
type Backend interface {
	CurrentIntervention(ctx context.Context) (*backend.InterventionModule, error)
	History(ctx context.Context) ([]model.ScoreRecord, error)
}

// View is the assembled dashboard. Either section may be missing when its
// fetch failed; the other still renders.
type View struct {
	Intervention *backend.InterventionModule
	History      []model.ScoreRecord
}

// Service assembles the learner dashboard from backend reads
type Service struct {
	backend Backend
	logger  *slog.Logger
}

// NewService creates a dashboard service
func NewService(b Backend, logger *slog.Logger) *Service {
	return &Service{backend: b, logger: logger}
}

// Load fetches the current intervention module and the assessment history
// concurrently. A failed section is logged and left empty rather than
// failing the whole view; Load errors only when ctx is cancelled before
// both fetches settle, or when neither section could be fetched.
func (s *Service) Load(ctx context.Context) (View, error) {
	type interventionReply struct {
		mod *backend.InterventionModule
		err error
	}
	type historyReply struct {
		records []model.ScoreRecord
		err     error
	}

	// Buffered so a response landing after cancellation is dropped with the
	// goroutine instead of leaking it
	interventionCh := make(chan interventionReply, 1)
	historyCh := make(chan historyReply, 1)

	go func() {
		mod, err := s.backend.CurrentIntervention(ctx)
		interventionCh <- interventionReply{mod, err}
	}()
	go func() {
		records, err := s.backend.History(ctx)
		historyCh <- historyReply{records, err}
	}()

	var view View
	var interventionErr, historyErr error
	for pending := 2; pending > 0; pending-- {
		select {
		case <-ctx.Done():
			return View{}, ctx.Err()
		case reply := <-interventionCh:
			view.Intervention, interventionErr = reply.mod, reply.err
		case reply := <-historyCh:
			view.History, historyErr = reply.records, reply.err
		}
	}

	if interventionErr != nil {
		view.Intervention = nil
		s.logger.Warn("failed to load current intervention", slog.String("error", interventionErr.Error()))
	}
	if historyErr != nil {
		view.History = nil
		s.logger.Warn("failed to load assessment history", slog.String("error", historyErr.Error()))
	}
	if interventionErr != nil && historyErr != nil {
		return View{}, errors.Join(interventionErr, historyErr)
	}

	return view, nil
}
