package validators

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-paystat/internal/catalog"
	"github.com/MKhiriev/go-paystat/internal/codelist"
	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

// maxExponent bounds the absolute decimal exponent accepted from input.
const maxExponent = 30

var (
	minInt = decimal.NewFromInt(math.MinInt64)
	maxInt = decimal.NewFromInt(math.MaxInt64)
)

// Structural validates the fields of a record one by one.
type Structural struct {
	lists *codelist.Registry
	now   Clock
}

// NewStructural returns a structural validator checking code-list fields
// against lists. A nil clock means [time.Now].
func NewStructural(lists *codelist.Registry, now Clock) (*Structural, error) {
	if lists == nil {
		return nil, ErrNoCodeLists
	}
	if now == nil {
		now = time.Now
	}

	return &Structural{lists: lists, now: now}, nil
}

// ValidateFields converts every declared field of raw into a typed record
// value. Violations follow the field order of variant, then undeclared
// fields in name order. The record is complete only when no violation is
// returned.
func (s *Structural) ValidateFields(raw models.RawRecord, variant *schema.Variant) (schema.Record, []models.Violation) {
	record := schema.NewRecord()
	var violations []models.Violation
	now := s.now()

	for _, field := range variant.Fields {
		if !raw.Has(field.Name) {
			if field.Required {
				violations = append(violations, violation(field.Name, models.CodeMissing, "null", "Field required"))
			}
			continue
		}

		if v := s.convert(record, field, raw[field.Name], now); v != nil {
			violations = append(violations, *v)
		}
	}

	var unknown []string
	for name := range raw {
		if _, ok := variant.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		violations = append(violations, violation(name, models.CodeExtraForbidden, schema.RenderRaw(raw[name]),
			"Extra inputs are not permitted"))
	}

	return record, violations
}

// convert stores the typed value of one field in record, or returns the
// violation explaining why it can not.
func (s *Structural) convert(record schema.Record, field schema.FieldSpec, value any, now time.Time) *models.Violation {
	rendered := schema.RenderRaw(value)
	fail := func(code, message string, args ...any) *models.Violation {
		v := violation(field.Name, code, rendered, fmt.Sprintf(message, args...))
		return &v
	}

	switch field.Kind {
	case schema.KindString:
		text, ok := value.(string)
		if !ok {
			return fail(models.CodeStringType, "Input should be a valid string")
		}
		record.SetString(field.Name, text)

	case schema.KindPattern:
		text, ok := value.(string)
		if !ok {
			return fail(models.CodeStringType, "Input should be a valid string")
		}
		if !field.Pattern.MatchString(text) {
			return fail(models.CodePatternMismatch, "String should match pattern '%s'", field.Pattern)
		}
		record.SetString(field.Name, text)

	case schema.KindLiteral:
		text, ok := value.(string)
		if !ok || text != field.Literal {
			return fail(models.CodeLiteral, "Input should be '%s'", field.Literal)
		}
		record.SetString(field.Name, text)

	case schema.KindDecimal:
		d, ok := numberOf(value)
		if !ok {
			return fail(models.CodeDecimalParsing, "Input should be a valid decimal")
		}
		if field.Min != nil && d.LessThan(*field.Min) {
			return fail(models.CodeGreaterThanEqual, "Input should be greater than or equal to %s", field.Min)
		}
		if field.Max != nil && d.GreaterThan(*field.Max) {
			return fail(models.CodeLessThanEqual, "Input should be less than or equal to %s", field.Max)
		}
		if !d.Equal(d.Round(field.Scale)) {
			return fail(models.CodeDecimalPlaces, "Decimal input should have no more than %d decimal places", field.Scale)
		}
		record.SetDecimal(field.Name, d, field.Scale)

	case schema.KindInteger:
		d, ok := numberOf(value)
		if !ok || !d.IsInteger() {
			return fail(models.CodeIntParsing, "Input should be a valid integer")
		}
		if d.LessThan(minInt) || d.GreaterThan(maxInt) {
			return fail(models.CodeIntParsingSize, "Unable to parse input as an integer, exceeded maximum size")
		}
		if field.Min != nil && d.LessThan(*field.Min) {
			return fail(models.CodeGreaterThanEqual, "Input should be greater than or equal to %s", field.Min)
		}
		record.SetInt(field.Name, d.IntPart())

	case schema.KindDate:
		text, _ := value.(string)
		date, err := time.Parse(schema.DateLayout, text)
		if err != nil {
			return fail(models.CodeDateFormat, "Date has to be in format 'YYYY-MM-DD', got %s.", rendered)
		}
		if message, ok := checkPeriod(date, field.Period); !ok {
			return fail(models.CodeDatePeriod, "%s", message)
		}
		if field.Past && !date.Before(startOfDay(now)) {
			return fail(models.CodeDatePast, "Date should be in the past")
		}
		record.SetDate(field.Name, date)

	case schema.KindDateTime:
		text, _ := value.(string)
		stamp, err := time.ParseInLocation(schema.DateTimeLayout, text, now.Location())
		if err != nil {
			return fail(models.CodeDateTimeFormat, "Datetime has to be in format 'YYYY-MM-DD HH:MM:SS', got %s.", rendered)
		}
		if field.Past && !stamp.Before(now) {
			return fail(models.CodeDateTimePast, "Datetime should be in the past")
		}
		record.SetDateTime(field.Name, stamp)

	case schema.KindCode:
		text, ok := schema.CodeText(value)
		if !ok {
			return fail(models.CodeCodeType, "Input should be a valid %s code", field.Set.Concept())
		}
		code := catalog.Normalize(text)
		switch field.Set.Check(code) {
		case catalog.OutOfScope:
			return fail(models.CodeOutOfScope, "%s %s is not allowed for this record. Expected one of: %s.",
				field.Set.Concept(), code, strings.Join(field.Set.Codes(), ", "))
		case catalog.Unknown:
			return fail(models.CodeUnknownCode, "Unknown %s %s. Expected one of: %s.",
				field.Set.Concept(), rendered, strings.Join(field.Set.Codes(), ", "))
		}
		record.SetString(field.Name, code)

	case schema.KindCodeList:
		text, ok := value.(string)
		if !ok {
			return fail(models.CodeStringType, "Input should be a valid string")
		}
		if field.Pattern != nil && !field.Pattern.MatchString(text) {
			return fail(models.CodePatternMismatch, "String should match pattern '%s'", field.Pattern)
		}
		if !s.lists.Has(field.List, text) {
			return fail(models.CodeUnknownCode, "%s", codelist.Mismatch(field.List, text))
		}
		record.SetString(field.Name, strings.ToUpper(text))
	}

	return nil
}

// numberOf parses JSON numbers and numeric strings exactly.
func numberOf(value any) (decimal.Decimal, bool) {
	var text string
	switch v := value.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = v
	case float64:
		text = decimal.NewFromFloat(v).String()
	default:
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Decimal{}, false
	}
	return d, true
}

func startOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(date time.Time) bool {
	return date.AddDate(0, 0, 1).Day() == 1
}

// checkPeriod verifies that date closes a reporting period of kind end.
func checkPeriod(date time.Time, end schema.PeriodEnd) (string, bool) {
	rendered := date.Format(schema.DateLayout)

	switch end {
	case schema.MonthEnd:
		if !lastDayOfMonth(date) {
			return fmt.Sprintf("Date is not the last day of month, got %s.", rendered), false
		}
	case schema.QuarterEnd:
		if date.Month()%3 != 0 || !lastDayOfMonth(date) {
			return fmt.Sprintf("The period should be the last day in the reported quarter. Got %s.", rendered), false
		}
	case schema.HalfYearEnd:
		if date.Month()%6 != 0 || !lastDayOfMonth(date) {
			return fmt.Sprintf("The period should be one of YYYY-06-30 and YYYY-12-31. Got %s.", rendered), false
		}
	}

	return "", true
}

func violation(field, code, value, message string) models.Violation {
	return models.Violation{
		Kind:     models.KindStructural,
		Code:     code,
		Location: models.Location{field},
		Value:    value,
		Message:  message,
	}
}
