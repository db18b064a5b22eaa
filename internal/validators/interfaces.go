// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks raw records against their record variant.
//
// Validation runs in two stages:
//   - structural: presence, type, format, bounds and code membership of
//     every field, plus rejection of undeclared fields;
//   - business rules: the cross-field rules of the variant, evaluated only
//     when the structural stage found nothing.
//
// Validators never stop at the first problem and never return Go errors for
// invalid input: every finding is reported as a [models.Violation].
package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

// Validator validates one raw record against a variant.
type Validator interface {

	// Validate checks raw against variant. rc carries the header context
	// the business rules compare against.
	Validate(ctx context.Context, raw models.RawRecord, variant *schema.Variant, rc schema.Context) Result
}

// Clock returns the current time. Past-date checks are made against it.
type Clock func() time.Time
