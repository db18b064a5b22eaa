// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// paystat-validate command.
//
// All Msg* constants are human-readable message strings written into log
// entries to describe the outcome of a startup or validation step. Keeping
// them in one place ensures consistent wording across the command.
package app

const (
	// MsgConfigFailed is logged when configuration cannot be loaded or
	// fails validation.
	MsgConfigFailed = "error getting configs"

	// MsgInvalidLogLevel is logged when the configured log level is unknown.
	MsgInvalidLogLevel = "invalid log level"

	// MsgCatalogFailed is logged when the enumerated type catalog cannot be
	// built from its static definitions.
	MsgCatalogFailed = "error building type catalog"

	// MsgCodeListsFailed is logged when a code-list source cannot be loaded.
	MsgCodeListsFailed = "error loading code lists"

	// MsgSchemaFailed is logged when record variant definitions are
	// inconsistent.
	MsgSchemaFailed = "error building record variants"

	// MsgDispatcherFailed is logged when two variants claim the same
	// discriminator code.
	MsgDispatcherFailed = "error building type dispatcher"

	// MsgServicesFailed is logged when the services cannot be wired.
	MsgServicesFailed = "error creating services"

	// MsgReportReadFailed is logged when the report file cannot be opened
	// or is not a single JSON object.
	MsgReportReadFailed = "error reading report"

	// MsgValidationFailed is logged when validation stops before producing
	// an outcome, e.g. on timeout.
	MsgValidationFailed = "error validating report"

	// MsgOutcomeWriteFailed is logged when the outcome document cannot be
	// written.
	MsgOutcomeWriteFailed = "error writing outcome"

	// MsgMetricsWriteFailed is logged when the metrics textfile cannot be
	// written. The run outcome is unaffected.
	MsgMetricsWriteFailed = "error writing metrics textfile"

	// MsgEngineReady is logged once every registry is loaded.
	MsgEngineReady = "validation engine ready"
)
