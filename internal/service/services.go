package service

import (
	"fmt"

	"github.com/MKhiriev/go-paystat/internal/config"
	"github.com/MKhiriev/go-paystat/internal/dispatch"
	"github.com/MKhiriev/go-paystat/internal/logger"
	"github.com/MKhiriev/go-paystat/internal/metrics"
	"github.com/MKhiriev/go-paystat/internal/utils"
	"github.com/MKhiriev/go-paystat/internal/validators"
	"github.com/MKhiriev/go-paystat/internal/workers"
	"github.com/MKhiriev/go-paystat/models"
)

type Services struct {
	AppInfoService    AppInfoService
	ValidationService ValidationService
}

// Dependencies are the collaborators shared by all services.
type Dependencies struct {
	Dispatcher *dispatch.Dispatcher
	Validator  validators.Validator
	Worker     workers.Worker
	IDs        utils.IDGenerator
	Metrics    *metrics.Metrics
	BuildInfo  models.AppBuildInfo
}

// NewServices wires the services. The validation service is decorated with
// metrics, then logging.
func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validation, err := NewValidationService(deps.Dispatcher, deps.Validator, deps.Worker, deps.IDs, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating validation service: %w", err)
	}
	validation = NewValidationMetricsService(deps.Metrics).Wrap(validation)
	validation = NewValidationLoggingService(logger).Wrap(validation)

	return &Services{
		AppInfoService:    appInfo,
		ValidationService: validation,
	}, nil
}
