package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrReportPathRequired indicates that no report envelope was named
	// by any source.
	ErrReportPathRequired = errors.New("report path is required")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidEngineConfigs indicates invalid engine limits
	// (for example, zero parallelism or a negative timeout).
	ErrInvalidEngineConfigs = errors.New("invalid engine configuration")
)
