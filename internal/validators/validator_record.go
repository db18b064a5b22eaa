package validators

import (
	"context"

	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

// RecordValidator runs both validation stages for a record.
type RecordValidator struct {
	structural *Structural
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator(structural *Structural) Validator {
	return &RecordValidator{structural: structural}
}

// Validate implements [Validator].
func (v *RecordValidator) Validate(ctx context.Context, raw models.RawRecord, variant *schema.Variant, rc schema.Context) Result {
	record, structural := v.structural.ValidateFields(raw, variant)

	return Aggregate(record, structural, func() []models.Violation {
		return ValidateRules(record, variant, rc)
	})
}
