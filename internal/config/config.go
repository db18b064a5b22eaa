// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// paystat-validate command. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version.
	App App `envPrefix:"APP_"`

	// Log controls the verbosity of the structured logger.
	Log Log `envPrefix:"LOG_"`

	// Engine holds the limits applied while validating a report.
	Engine Engine `envPrefix:"ENGINE_"`

	// CodeLists points at an optional directory of code-list overrides.
	CodeLists CodeLists `envPrefix:"CODELISTS_"`

	// Input names the report to validate and where to write the outcome.
	Input Input `envPrefix:"INPUT_"`

	// Metrics controls the Prometheus textfile export.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Reported by the app info service.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Engine holds validation engine limits.
type Engine struct {
	// MaxParallelItems bounds how many report items are validated at once.
	// Env: ENGINE_MAX_PARALLEL_ITEMS
	MaxParallelItems int `env:"MAX_PARALLEL_ITEMS"`

	// Timeout cancels a report validation that runs longer than this
	// (e.g. "30s"). Zero disables the deadline.
	// Env: ENGINE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// CodeLists holds code-list source settings.
type CodeLists struct {
	// Dir is a directory of <list>.yaml files replacing the embedded lists
	// of the same name.
	// Env: CODELISTS_DIR
	Dir string `env:"DIR"`
}

// Input holds the paths of the report envelope and the outcome document.
type Input struct {
	// ReportPath is the report envelope JSON file to validate.
	// Env: INPUT_REPORT_PATH
	ReportPath string `env:"REPORT_PATH"`

	// OutputPath receives the outcome JSON. Empty means stdout.
	// Env: INPUT_OUTPUT_PATH
	OutputPath string `env:"OUTPUT_PATH"`
}

// Metrics holds metric export settings.
type Metrics struct {
	// TextfilePath receives the collected metrics in the Prometheus text
	// format after the run. Empty disables the export.
	// Env: METRICS_TEXTFILE_PATH
	TextfilePath string `env:"TEXTFILE_PATH"`
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
