package models

// ItemOutcome is the validation result of one item of a report.
type ItemOutcome struct {
	// Index is the position of the item in the submitted file.
	Index int `json:"index"`

	// Variant is the name of the record variant the item was validated
	// against. Empty when dispatch failed.
	Variant string `json:"variant,omitempty"`

	// Accepted is true when the item produced no violations.
	Accepted bool `json:"accepted"`

	// Record is the normalized item. Set only for accepted items.
	Record map[string]any `json:"record,omitempty"`

	// Violations lists every problem found, in deterministic order.
	Violations []Violation `json:"violations,omitempty"`
}

// ReportOutcome is the result of validating one report file.
type ReportOutcome struct {
	// RunID identifies this validation run in logs and traces.
	RunID string `json:"run_id"`

	// Family is the resolved report family, e.g. "transactions".
	// Empty when the family could not be resolved.
	Family string `json:"family,omitempty"`

	// DeclaredType is the type declared by the header,
	// e.g. the reported payment type.
	DeclaredType string `json:"declared_type,omitempty"`

	// Accepted is true when neither the envelope nor any item produced a
	// violation.
	Accepted bool `json:"accepted"`

	// Header is the normalized header. Set only when the header is valid.
	Header map[string]any `json:"header,omitempty"`

	// Envelope lists header and item-list violations. A non-empty list
	// means items were not validated.
	Envelope []Violation `json:"envelope_violations,omitempty"`

	// Items holds one outcome per submitted item, ordered by index.
	Items []ItemOutcome `json:"items,omitempty"`
}

// Violations returns every violation of the report, envelope first, then
// items in index order.
func (o *ReportOutcome) Violations() []Violation {
	all := make([]Violation, 0, len(o.Envelope))
	all = append(all, o.Envelope...)
	for _, item := range o.Items {
		all = append(all, item.Violations...)
	}

	return all
}

// RejectedItems returns the number of items that produced violations.
func (o *ReportOutcome) RejectedItems() int {
	rejected := 0
	for _, item := range o.Items {
		if !item.Accepted {
			rejected++
		}
	}

	return rejected
}
