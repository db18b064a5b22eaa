package validators

import (
	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

// ValidateRules evaluates every business rule of variant against a
// structurally valid record overlaid with the header context. Violations
// follow the rule order of the variant.
func ValidateRules(record schema.Record, variant *schema.Variant, rc schema.Context) []models.Violation {
	facts := record.WithContext(rc)

	var violations []models.Violation
	for _, rule := range variant.Rules {
		if !rule.Violated(facts) {
			continue
		}

		location := make(models.Location, len(rule.Fields))
		for i, field := range rule.Fields {
			location[i] = field
		}

		violations = append(violations, models.Violation{
			Kind:     models.KindConsistency,
			Code:     rule.Name,
			Location: location,
			Value:    rule.Value(facts),
			Message:  rule.Text(facts),
		})
	}

	return violations
}

// Result is the outcome of validating one record.
type Result struct {
	// Record holds the typed values. Complete only when Violations is
	// empty.
	Record     schema.Record
	Violations []models.Violation
}

// Valid reports whether the record produced no violation.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Aggregate combines the two validation stages. Structural violations
// short-circuit the rules stage: rules is called only when structural is
// empty.
func Aggregate(record schema.Record, structural []models.Violation, rules func() []models.Violation) Result {
	if len(structural) > 0 {
		return Result{Record: record, Violations: structural}
	}

	return Result{Record: record, Violations: rules()}
}
