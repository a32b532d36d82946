// Package service wraps the rating engine with validation, logging and
// metrics for use by the command line.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/skillr/pkg/logger"
	"github.com/okian/skillr/pkg/metrics"
	"github.com/okian/skillr/pkg/skillr"
)

// Service rates matches under a fixed model. It holds no mutable state after
// New returns and is safe for concurrent use.
type Service struct {
	model    skillr.Config
	validate bool

	logger  logger.Logger
	metrics *metrics.Manager
}

// New constructs a Service. Without options it uses the default model with
// validation on, the global logger and the default metrics manager.
func New(opts ...Option) *Service {
	s := &Service{
		model:    skillr.DefaultConfig(),
		validate: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("rater")
	}
	if s.metrics == nil {
		s.metrics = metrics.Default()
	}
	return s
}

// Model returns the model constants the service rates with.
func (s *Service) Model() skillr.Config {
	return s.model
}

// Rate rates one match between r1 and r2; outcome is stated from r1's side.
// An outcome other than Win, Draw or Loss is always an error; rating and
// model checks only run with validation on.
func (s *Service) Rate(ctx context.Context, r1, r2 skillr.Rating, outcome skillr.Outcome) (skillr.Match, error) {
	if err := outcome.Validate(); err != nil {
		s.reject(ctx, "outcome", err)
		return skillr.Match{}, err
	}
	if err := s.check(ctx, r1, r2); err != nil {
		return skillr.Match{}, err
	}

	start := time.Now()
	m := skillr.Evaluate(r1, r2, outcome, s.model)
	elapsed := time.Since(start)

	if s.validate {
		if err := m.Validate(); err != nil {
			s.reject(ctx, "result", err)
			return m, err
		}
	}

	s.metrics.RecordRatingUpdate(outcome.String(), float64(elapsed.Nanoseconds())/float64(time.Microsecond))
	for _, step := range []skillr.Step{m.First, m.Second} {
		s.metrics.RecordCompetitorStep(step.Probability, step.InformationGain, step.After.Scale/step.Before.Scale)
	}

	s.logger.Debug(ctx, "rated match",
		logger.String("outcome", outcome.String()),
		logger.Float64("p_win", m.Probabilities.Win()),
		logger.Float64("p_draw", m.Probabilities.Draw()),
		logger.Float64("p_loss", m.Probabilities.Loss()),
		logger.String("first", m.First.After.String()),
		logger.String("second", m.Second.After.String()),
	)
	return m, nil
}

// Probs returns r1's win, draw and loss probabilities against r2.
func (s *Service) Probs(ctx context.Context, r1, r2 skillr.Rating) (skillr.Probabilities, error) {
	if err := s.check(ctx, r1, r2); err != nil {
		return skillr.Probabilities{}, err
	}

	ps := skillr.Probs(r1, r2, s.model)
	if s.validate {
		if err := ps.Validate(); err != nil {
			s.reject(ctx, "probabilities", err)
			return ps, err
		}
	}
	s.metrics.RecordProbabilityQuery()
	return ps, nil
}

// Replay rates outcomes in order, each match starting from the ratings the
// previous one produced. It returns the matches rated so far together with
// any error, including cancellation of ctx.
func (s *Service) Replay(ctx context.Context, r1, r2 skillr.Rating, outcomes []skillr.Outcome) ([]skillr.Match, error) {
	matches := make([]skillr.Match, 0, len(outcomes))
	for i, o := range outcomes {
		if err := ctx.Err(); err != nil {
			return matches, fmt.Errorf("replay stopped at match %d: %w", i+1, err)
		}
		m, err := s.Rate(ctx, r1, r2, o)
		if err != nil {
			return matches, fmt.Errorf("replay match %d: %w", i+1, err)
		}
		matches = append(matches, m)
		r1, r2 = m.Ratings()
	}

	s.logger.Info(ctx, "replay finished",
		logger.Int("matches", len(matches)),
		logger.String("first", r1.String()),
		logger.String("second", r2.String()),
	)
	return matches, nil
}

// check runs the input assertions when validation is on.
func (s *Service) check(ctx context.Context, r1, r2 skillr.Rating) error {
	if !s.validate {
		return nil
	}
	err := errors.Join(
		wrapCompetitor(1, r1.Validate()),
		wrapCompetitor(2, r2.Validate()),
		s.model.Validate(),
	)
	if err != nil {
		s.reject(ctx, reason(err), err)
	}
	return err
}

func (s *Service) reject(ctx context.Context, reason string, err error) {
	s.metrics.RecordValidationFailure(reason)
	s.logger.Warn(ctx, "rating rejected", logger.String("reason", reason), logger.Error(err))
}

func wrapCompetitor(n int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("competitor %d: %w", n, err)
}

// reason maps an error to a low-cardinality metric label.
func reason(err error) string {
	switch {
	case errors.Is(err, skillr.ErrInvalidConfig):
		return "config"
	case errors.Is(err, skillr.ErrInvalidRating):
		return "rating"
	default:
		return "other"
	}
}
