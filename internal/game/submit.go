package game

import (
	"context"

	"github.com/dyslexicore/dyslexicore-cli/internal/backend"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// Submitter uploads a finished round's result. Implementations must treat
// the upload as telemetry: errors are reported to the caller for logging
// but never shown to the player.
type Submitter interface {
	Submit(ctx context.Context, result model.RoundResult) error
}

// AssessmentSubmitter posts results to the assessment endpoint
type AssessmentSubmitter struct {
	Client *backend.Client
}

// Submit implements Submitter
func (s *AssessmentSubmitter) Submit(ctx context.Context, result model.RoundResult) error {
	_, err := s.Client.SubmitAssessment(ctx, result)
	return err
}

// ScreeningSubmitter posts results to the screening endpoint
type ScreeningSubmitter struct {
	Client *backend.Client
}

// Submit implements Submitter
func (s *ScreeningSubmitter) Submit(ctx context.Context, result model.RoundResult) error {
	_, err := s.Client.SubmitScreening(ctx, result)
	return err
}

// NopSubmitter discards results, for practice rounds while logged out
type NopSubmitter struct{}

// Submit implements Submitter
func (s *NopSubmitter) Submit(ctx context.Context, result model.RoundResult) error {
	return nil
}
