package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-paystat/internal/logger"
	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

// ValidationLoggingService logs a summary of every validation run.
type ValidationLoggingService struct {
	inner  ValidationService
	logger *logger.Logger
}

// NewValidationLoggingService returns a wrapper logging to logger.
func NewValidationLoggingService(logger *logger.Logger) ValidationServiceWrapper {
	return &ValidationLoggingService{logger: logger}
}

func (s *ValidationLoggingService) ValidateReport(ctx context.Context, envelope *models.ReportEnvelope) (*models.ReportOutcome, error) {
	start := time.Now()

	outcome, err := s.inner.ValidateReport(ctx, envelope)
	if err != nil {
		s.logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("report validation failed")
		return nil, err
	}

	event := s.logger.Info()
	if !outcome.Accepted {
		event = s.logger.Warn()
	}
	event.
		Str("run_id", outcome.RunID).
		Str("family", outcome.Family).
		Str("declared_type", outcome.DeclaredType).
		Bool("accepted", outcome.Accepted).
		Int("items", len(outcome.Items)).
		Int("rejected_items", outcome.RejectedItems()).
		Int("envelope_violations", len(outcome.Envelope)).
		Int("violations", len(outcome.Violations())).
		Dur("duration", time.Since(start)).
		Msg("report validated")

	return outcome, nil
}

func (s *ValidationLoggingService) ValidateItem(ctx context.Context, raw models.RawRecord, rc schema.Context) (*models.ItemOutcome, error) {
	outcome, err := s.inner.ValidateItem(ctx, raw, rc)
	if err != nil {
		s.logger.Error().Err(err).Msg("item validation failed")
		return nil, err
	}

	s.logger.Debug().
		Str("variant", outcome.Variant).
		Bool("accepted", outcome.Accepted).
		Int("violations", len(outcome.Violations)).
		Msg("item validated")

	return outcome, nil
}

func (s *ValidationLoggingService) Wrap(wrapper ValidationService) ValidationService {
	s.inner = wrapper
	return s
}
