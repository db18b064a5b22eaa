package service

import (
	"context"

	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

//go:generate mockgen -destination=../mock/validation_service_mock.go -package=mock github.com/MKhiriev/go-paystat/internal/service ValidationService

// ValidationService validates payment-statistics reports.
//
// Validation findings are reported in the returned outcome, never as an
// error. Errors are reserved for missing input and context cancellation.
type ValidationService interface {
	// ValidateReport validates the header and every item of one report
	// file.
	ValidateReport(ctx context.Context, envelope *models.ReportEnvelope) (*models.ReportOutcome, error)

	// ValidateItem validates a single item outside of a report file. Header
	// context missing from rc may be carried by the item itself.
	ValidateItem(ctx context.Context, raw models.RawRecord, rc schema.Context) (*models.ItemOutcome, error)
}

// ValidationServiceWrapper defines middleware composition for
// ValidationService. Implementations wrap an existing ValidationService to
// add behavior such as logging or metrics.
type ValidationServiceWrapper interface {
	Wrap(ValidationService) ValidationService // returns a decorated ValidationService applying additional behavior
}

// AppInfoService exposes build and version information of the running
// binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
