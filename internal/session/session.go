// Package session ties a quiz state to an identity and a logger. Renderers
// mutate the quiz only through a Session so every transition is logged.
package session

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"valuesquiz/internal/quiz"
)

// Session owns one quiz run.
type Session struct {
	ID     string
	state  *quiz.State
	logger *zap.Logger
}

// New starts a session over labels.
func New(labels []string, logger *zap.Logger) (*Session, error) {
	state, err := quiz.New(labels)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	s := &Session{
		ID:     id,
		state:  state,
		logger: logger.With(zap.String("session", id)),
	}
	s.logger.Info("session started", zap.Int("items", state.Len()))
	return s, nil
}

// State exposes the quiz for rendering. Callers must not mutate it directly.
func (s *Session) State() *quiz.State {
	return s.state
}

// Rate rates the item at index.
func (s *Session) Rate(index int, rating quiz.Rating) error {
	wasComplete := s.state.IsComplete()
	if err := s.state.Rate(index, rating); err != nil {
		s.logger.Warn("rate rejected", zap.Int("index", index), zap.Stringer("rating", rating), zap.Error(err))
		return err
	}
	s.logger.Debug("rated",
		zap.Int("index", index),
		zap.String("label", s.state.Items()[index].Text),
		zap.Stringer("rating", rating),
		zap.Int("current_index", s.state.CurrentIndex()))
	if !wasComplete && s.state.IsComplete() {
		groups := s.state.Categorize()
		s.logger.Info("session complete",
			zap.Int("important", len(groups.Important)),
			zap.Int("neutral", len(groups.Neutral)),
			zap.Int("less_important", len(groups.LessImportant)))
	}
	return nil
}

// RateCurrent rates the item at the current position.
func (s *Session) RateCurrent(rating quiz.Rating) error {
	return s.Rate(s.state.CurrentIndex(), rating)
}

// Reset clears every rating once confirm agrees.
func (s *Session) Reset(ctx context.Context, confirm quiz.Confirmer) (bool, error) {
	done, err := s.state.Reset(ctx, confirm)
	switch {
	case err != nil:
		s.logger.Warn("reset failed", zap.Error(err))
	case done:
		s.logger.Info("session reset")
	default:
		s.logger.Info("reset declined", zap.Int("rated", s.state.RatedCount()))
	}
	return done, err
}

// ToggleResults flips the results preview.
func (s *Session) ToggleResults() {
	s.state.ToggleResults()
	s.logger.Debug("results toggled", zap.Bool("show_results", s.state.ShowResults()))
}

// End logs the final tally and returns the groups.
func (s *Session) End() quiz.Groups {
	groups := s.state.Categorize()
	s.logger.Info("session ended",
		zap.Stringer("phase", s.state.Phase()),
		zap.Int("rated", s.state.RatedCount()),
		zap.Int("items", s.state.Len()))
	return groups
}
