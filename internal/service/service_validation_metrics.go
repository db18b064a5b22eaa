package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-paystat/internal/metrics"
	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

// ValidationMetricsService records Prometheus metrics of every validation run.
type ValidationMetricsService struct {
	inner   ValidationService
	metrics *metrics.Metrics
}

// NewValidationMetricsService records every outcome on m. A nil m records
// nothing.
func NewValidationMetricsService(m *metrics.Metrics) ValidationServiceWrapper {
	return &ValidationMetricsService{metrics: m}
}

func (s *ValidationMetricsService) ValidateReport(ctx context.Context, envelope *models.ReportEnvelope) (*models.ReportOutcome, error) {
	start := time.Now()

	outcome, err := s.inner.ValidateReport(ctx, envelope)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveReport(outcome, time.Since(start))
	return outcome, nil
}

func (s *ValidationMetricsService) ValidateItem(ctx context.Context, raw models.RawRecord, rc schema.Context) (*models.ItemOutcome, error) {
	outcome, err := s.inner.ValidateItem(ctx, raw, rc)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveItem(outcome)
	return outcome, nil
}

func (s *ValidationMetricsService) Wrap(wrapper ValidationService) ValidationService {
	s.inner = wrapper
	return s
}
