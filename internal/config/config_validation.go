// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

const defaultLogLevel = "info"

// defaults returns the values used for fields no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Log: Log{Level: defaultLogLevel},
		Engine: Engine{
			MaxParallelItems: runtime.GOMAXPROCS(0),
		},
	}
}

// validate checks that the final merged [StructuredConfig] can start a
// validation run.
func (cfg *StructuredConfig) validate() error {
	if cfg.Input.ReportPath == "" {
		return ErrReportPathRequired
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	if cfg.Engine.MaxParallelItems < 1 {
		return fmt.Errorf("%w: max parallel items must be positive", ErrInvalidEngineConfigs)
	}

	if cfg.Engine.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidEngineConfigs)
	}

	return nil
}
