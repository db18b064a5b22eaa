package models

import (
	"strconv"
	"strings"
)

// ViolationKind classifies a [Violation] by the stage of the pipeline that
// produced it.
type ViolationKind string

const (
	// KindStructural marks a per-field failure: missing required field,
	// malformed value, unknown field, unknown code or out-of-scope code.
	KindStructural ViolationKind = "structural"

	// KindConsistency marks a failed cross-field business rule, including
	// temporal containment and header/item type mismatches.
	KindConsistency ViolationKind = "consistency"

	// KindDispatch marks an item for which no record variant could be
	// resolved.
	KindDispatch ViolationKind = "dispatch"

	// KindEnvelope marks a problem with the report header or the item list
	// itself. Envelope violations abort validation of the whole file.
	KindEnvelope ViolationKind = "envelope"
)

// Machine-readable violation codes. Consistency violations use the name of
// the business rule as their code instead.
const (
	CodeMissing          = "missing"
	CodeExtraForbidden   = "extra_forbidden"
	CodeStringType       = "string_type"
	CodePatternMismatch  = "string_pattern_mismatch"
	CodeDecimalParsing   = "decimal_parsing"
	CodeDecimalPlaces    = "decimal_max_places"
	CodeIntParsing       = "int_parsing"
	CodeIntParsingSize   = "int_parsing_size"
	CodeGreaterThanEqual = "greater_than_equal"
	CodeLessThanEqual    = "less_than_equal"
	CodeDateFormat       = "date_format"
	CodeDateTimeFormat   = "datetime_format"
	CodeDatePast         = "date_past"
	CodeDateTimePast     = "datetime_past"
	CodeDatePeriod       = "date_period"
	CodeCodeType         = "code_type"
	CodeUnknownCode      = "unknown_code"
	CodeOutOfScope       = "out_of_scope"
	CodeLiteral          = "literal_error"

	CodeUnknownDiscriminator = "unknown_discriminator"
	CodeWrongFamily          = "wrong_report_family"
	CodeItemType             = "item_type"

	CodeNoItems       = "no_items"
	CodeUnknownFamily = "unknown_report_family"
)

// Location is the path from the envelope root to the offending value.
// Segments are field names or item indexes. Rules that involve several
// fields list every involved field after the record path.
type Location []any

// String renders the location as a dot-separated path,
// e.g. "items.3.transaction_day".
func (l Location) String() string {
	parts := make([]string, 0, len(l))
	for _, segment := range l {
		switch s := segment.(type) {
		case string:
			parts = append(parts, s)
		case int:
			parts = append(parts, strconv.Itoa(s))
		}
	}

	return strings.Join(parts, ".")
}

// Violation is one reason for rejecting a report, with enough context for a
// reporter-side operator to fix the submission.
type Violation struct {
	// Kind is the taxonomy bucket of the violation.
	Kind ViolationKind `json:"kind"`

	// Code is a stable machine-readable identifier of the failure.
	Code string `json:"code"`

	// Location points at the field (or fields) involved.
	Location Location `json:"location"`

	// Value is the offending input rendered as text.
	Value string `json:"value"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// At returns a copy of v whose location is prefixed with prefix.
func (v Violation) At(prefix ...any) Violation {
	location := make(Location, 0, len(prefix)+len(v.Location))
	location = append(location, prefix...)
	location = append(location, v.Location...)
	v.Location = location

	return v
}
