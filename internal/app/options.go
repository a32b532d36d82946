package service

import (
	"github.com/okian/skillr/pkg/logger"
	"github.com/okian/skillr/pkg/metrics"
	"github.com/okian/skillr/pkg/skillr"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithModel sets the rating model constants.
func WithModel(cfg skillr.Config) Option {
	return func(s *Service) {
		s.model = cfg
	}
}

// WithValidation turns input and result checks on or off.
func WithValidation(enabled bool) Option {
	return func(s *Service) {
		s.validate = enabled
	}
}

// WithMetrics sets the metrics manager the service records to.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}
