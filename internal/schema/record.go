package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date and timestamp layouts of the report format.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Names of the header-context fields that items may repeat.
const (
	FieldDateFrom = "date_from"
	FieldDateTo   = "date_to"
)

type dateValue struct{ t time.Time }

type dateTimeValue struct{ t time.Time }

type decimalValue struct {
	d     decimal.Decimal
	scale int32
}

// Record is a structurally valid record with typed values. Codes are stored
// uppercased, decimals rounded to their scale, integers as int64.
//
// A Record is built by the structural validator and only read afterwards.
type Record struct {
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{values: make(map[string]any)}
}

// SetString stores a string or code value.
func (r Record) SetString(name, value string) { r.values[name] = value }

// SetInt stores an integer value.
func (r Record) SetInt(name string, value int64) { r.values[name] = value }

// SetDecimal stores a decimal value rounded to scale.
func (r Record) SetDecimal(name string, value decimal.Decimal, scale int32) {
	r.values[name] = decimalValue{d: value.Round(scale), scale: scale}
}

// SetDate stores a calendar date.
func (r Record) SetDate(name string, value time.Time) { r.values[name] = dateValue{t: value} }

// SetDateTime stores a timestamp.
func (r Record) SetDateTime(name string, value time.Time) { r.values[name] = dateTimeValue{t: value} }

// Has reports whether name holds a value.
func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Len returns the number of values held.
func (r Record) Len() int {
	return len(r.values)
}

// Code returns the string value of name.
func (r Record) Code(name string) (string, bool) {
	v, ok := r.values[name].(string)
	return v, ok
}

// Int returns the integer value of name.
func (r Record) Int(name string) (int64, bool) {
	v, ok := r.values[name].(int64)
	return v, ok
}

// Decimal returns the decimal value of name.
func (r Record) Decimal(name string) (decimal.Decimal, bool) {
	v, ok := r.values[name].(decimalValue)
	return v.d, ok
}

// Date returns the calendar date of name. Timestamps are truncated to
// their date.
func (r Record) Date(name string) (time.Time, bool) {
	switch v := r.values[name].(type) {
	case dateValue:
		return v.t, true
	case dateTimeValue:
		y, m, d := v.t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, false
	}
}

// Render returns the value of name as report text, or "null" when absent.
func (r Record) Render(name string) string {
	switch v := r.values[name].(type) {
	case nil:
		return "null"
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case decimalValue:
		return v.d.StringFixed(v.scale)
	case dateValue:
		return v.t.Format(DateLayout)
	case dateTimeValue:
		return v.t.Format(DateTimeLayout)
	default:
		return "null"
	}
}

// WithContext returns a copy of r overlaid with the header context. Context
// values replace values carried by the record itself.
func (r Record) WithContext(c Context) Record {
	merged := Record{values: make(map[string]any, len(r.values)+3)}
	for name, v := range r.values {
		merged.values[name] = v
	}

	if c.DeclaredField != "" && c.DeclaredType != "" {
		merged.values[c.DeclaredField] = strings.ToUpper(c.DeclaredType)
	}
	if !c.DateFrom.IsZero() {
		merged.values[FieldDateFrom] = dateValue{t: c.DateFrom}
	}
	if !c.DateTo.IsZero() {
		merged.values[FieldDateTo] = dateValue{t: c.DateTo}
	}

	return merged
}

// Normalized renders r as the canonical output of variant v: codes of
// integer-coded sets become numbers, decimals carry exactly their scale and
// excluded fields are dropped. Fields follow no particular order.
func (r Record) Normalized(v *Variant) map[string]any {
	out := make(map[string]any, len(r.values))

	for _, field := range v.Fields {
		value, ok := r.values[field.Name]
		if !ok || field.Excluded {
			continue
		}

		switch value := value.(type) {
		case string:
			if field.Kind == KindCode && field.Set.Numeric() {
				if n, err := strconv.ParseInt(value, 10, 64); err == nil {
					out[field.Name] = n
					continue
				}
			}
			out[field.Name] = value
		case int64:
			out[field.Name] = value
		case decimalValue:
			out[field.Name] = json.Number(value.d.StringFixed(value.scale))
		case dateValue:
			out[field.Name] = value.t.Format(DateLayout)
		case dateTimeValue:
			out[field.Name] = value.t.Format(DateTimeLayout)
		}
	}

	return out
}

// Context is the header information an item is validated against.
type Context struct {
	// DeclaredField names the header field carrying the declared type,
	// e.g. reported_payment_type.
	DeclaredField string
	// DeclaredType is the normalized declared type.
	DeclaredType string
	// DateFrom and DateTo bound the reporting period. Zero when the family
	// reports a period instead.
	DateFrom time.Time
	DateTo   time.Time
}

// HeaderContext extracts the item context from a validated header of
// family f.
func HeaderContext(header Record, f *Family) Context {
	c := Context{DeclaredField: f.DeclaredField}
	c.DeclaredType, _ = header.Code(f.DeclaredField)
	c.DateFrom, _ = header.Date(FieldDateFrom)
	c.DateTo, _ = header.Date(FieldDateTo)

	return c
}

// CodeText extracts a code from a raw JSON value. Strings are taken as-is;
// integral numbers are accepted for integer-coded sets.
func CodeText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

// RenderRaw returns a raw JSON value as report text, or "null" for nil.
func RenderRaw(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "null"
		}
		return string(raw)
	}
}
