// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":               "1.4.0",
		"LOG_LEVEL":                 "warn",
		"ENGINE_MAX_PARALLEL_ITEMS": "16",
		"ENGINE_TIMEOUT":            "30s",
		"CODELISTS_DIR":             "/etc/paystat/lists",
		"INPUT_REPORT_PATH":         "/data/report.json",
		"INPUT_OUTPUT_PATH":         "/data/outcome.json",
		"METRICS_TEXTFILE_PATH":     "/var/lib/node_exporter/paystat.prom",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 16, cfg.Engine.MaxParallelItems)
	assert.Equal(t, 30*time.Second, cfg.Engine.Timeout)
	assert.Equal(t, "/etc/paystat/lists", cfg.CodeLists.Dir)
	assert.Equal(t, "/data/report.json", cfg.Input.ReportPath)
	assert.Equal(t, "/data/outcome.json", cfg.Input.OutputPath)
	assert.Equal(t, "/var/lib/node_exporter/paystat.prom", cfg.Metrics.TextfilePath)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"INPUT_REPORT_PATH": "report.json",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "report.json", cfg.Input.ReportPath)
	assert.Zero(t, cfg.Engine.Timeout)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non-numeric parallelism", key: "ENGINE_MAX_PARALLEL_ITEMS", val: "many"},
		{name: "malformed timeout", key: "ENGINE_TIMEOUT", val: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			err := parseEnv(&StructuredConfig{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error getting env configs")
		})
	}
}
