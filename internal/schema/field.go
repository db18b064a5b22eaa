// Package schema holds the declarative definitions of every record the
// validation engine understands: the field specifications of report headers
// and items, the cross-field business rules attached to them, and the
// predicate vocabulary those rules are written in.
//
// Definitions are built once from a [catalog.Catalog] by [NewRegistry] and
// are read-only afterwards, so a single [Registry] can be shared by any
// number of goroutines.
package schema

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-paystat/internal/catalog"
	"github.com/MKhiriev/go-paystat/internal/codelist"
)

// Kind is the semantic type of a field.
type Kind int

const (
	// KindString accepts any JSON string.
	KindString Kind = iota
	// KindPattern accepts a string matching a regular expression.
	KindPattern
	// KindDecimal accepts an exact decimal with bounded scale.
	KindDecimal
	// KindInteger accepts an integral number.
	KindInteger
	// KindDate accepts a calendar date in YYYY-MM-DD form.
	KindDate
	// KindDateTime accepts a timestamp in YYYY-MM-DD HH:MM:SS form.
	KindDateTime
	// KindCode accepts a member of an enumerated set.
	KindCode
	// KindCodeList accepts a member of an external code list.
	KindCodeList
	// KindLiteral accepts exactly one string.
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindPattern:
		return "pattern"
	case KindDecimal:
		return "decimal"
	case KindInteger:
		return "integer"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindCode:
		return "code"
	case KindCodeList:
		return "code_list"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// PeriodEnd restricts a date to the last day of a reporting period.
type PeriodEnd int

const (
	AnyDay PeriodEnd = iota
	MonthEnd
	QuarterEnd
	HalfYearEnd
)

// MoneyScale is the number of fractional digits of monetary amounts and
// ratios.
const MoneyScale int32 = 2

// FieldSpec describes one field of a record.
type FieldSpec struct {
	Name string
	Kind Kind

	// Required fields must be present and non-null.
	Required bool
	// Excluded fields are validated but dropped from normalized output.
	// Header-context fields repeated on items are excluded.
	Excluded bool

	// Pattern constrains KindPattern fields and pre-checks KindCodeList
	// fields.
	Pattern *regexp.Regexp

	// Scale, Min and Max bound KindDecimal fields. Min also bounds
	// KindInteger fields.
	Scale int32
	Min   *decimal.Decimal
	Max   *decimal.Decimal

	// Past requires dates and timestamps to lie strictly before now.
	Past   bool
	Period PeriodEnd

	Set     *catalog.EnumSet
	List    codelist.Name
	Literal string
}

// Optional returns a copy of f that may be absent.
func (f FieldSpec) Optional() FieldSpec {
	f.Required = false
	return f
}

// Context returns a copy of f marked as an optional header-context field.
func (f FieldSpec) Context() FieldSpec {
	f.Required = false
	f.Excluded = true
	return f
}

// Matching returns a copy of f that must also match pattern.
func (f FieldSpec) Matching(pattern string) FieldSpec {
	f.Pattern = regexp.MustCompile(pattern)
	return f
}

// Text declares a free string field.
func Text(name string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindString, Required: true}
}

// Pattern declares a string field constrained by a regular expression.
// The pattern must anchor itself.
func Pattern(name, pattern string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindPattern, Required: true, Pattern: regexp.MustCompile(pattern)}
}

// Amount declares a non-negative monetary amount with two fractional digits.
func Amount(name string) FieldSpec {
	zero := decimal.Zero
	return FieldSpec{Name: name, Kind: KindDecimal, Required: true, Scale: MoneyScale, Min: &zero}
}

// Ratio declares a decimal in [0, 1] with two fractional digits.
func Ratio(name string) FieldSpec {
	zero, one := decimal.Zero, decimal.NewFromInt(1)
	return FieldSpec{Name: name, Kind: KindDecimal, Required: true, Scale: MoneyScale, Min: &zero, Max: &one}
}

// Count declares an integer field with a lower bound.
func Count(name string, minimum int64) FieldSpec {
	lower := decimal.NewFromInt(minimum)
	return FieldSpec{Name: name, Kind: KindInteger, Required: true, Min: &lower}
}

// Day declares a calendar date in the past.
func Day(name string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindDate, Required: true, Past: true}
}

// Period declares a past calendar date that must close a reporting period.
func Period(name string, end PeriodEnd) FieldSpec {
	return FieldSpec{Name: name, Kind: KindDate, Required: true, Past: true, Period: end}
}

// Timestamp declares a timestamp in the past.
func Timestamp(name string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindDateTime, Required: true, Past: true}
}

// Code declares a field restricted to set.
func Code(name string, set *catalog.EnumSet) FieldSpec {
	return FieldSpec{Name: name, Kind: KindCode, Required: true, Set: set}
}

// Listed declares a field restricted to an external code list.
func Listed(name string, list codelist.Name) FieldSpec {
	return FieldSpec{Name: name, Kind: KindCodeList, Required: true, List: list}
}

// Literal declares a string field that must equal value.
func Literal(name, value string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindLiteral, Required: true, Literal: value}
}
