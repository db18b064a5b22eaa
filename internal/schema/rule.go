package schema

import (
	"fmt"
	"strings"
)

// Predicate reports whether a condition holds for a record.
type Predicate func(r Record) bool

// Rule is a cross-field business rule. A rule whose Violated predicate holds
// for a record produces one consistency violation, coded with the rule Name.
type Rule struct {
	Name string
	// Fields are the fields the violation is located at.
	Fields []string
	// Values are the fields rendered as the offending value. Defaults to
	// Fields.
	Values   []string
	Violated Predicate
	// Message may contain %s verbs filled from MessageArgs field values.
	Message     string
	MessageArgs []string
}

// Value renders the offending values of r, comma separated.
func (rule Rule) Value(r Record) string {
	names := rule.Values
	if len(names) == 0 {
		names = rule.Fields
	}

	values := make([]string, len(names))
	for i, name := range names {
		values[i] = r.Render(name)
	}

	return strings.Join(values, ", ")
}

// Text renders the message of the rule for r.
func (rule Rule) Text(r Record) string {
	if len(rule.MessageArgs) == 0 {
		return rule.Message
	}

	args := make([]any, len(rule.MessageArgs))
	for i, name := range rule.MessageArgs {
		args[i] = r.Render(name)
	}

	return fmt.Sprintf(rule.Message, args...)
}

// Present holds when field has a value.
func Present(field string) Predicate {
	return func(r Record) bool { return r.Has(field) }
}

// Absent holds when field has no value.
func Absent(field string) Predicate {
	return func(r Record) bool { return !r.Has(field) }
}

// In holds when field is present and equals one of codes.
func In(field string, codes ...string) Predicate {
	return func(r Record) bool {
		v, ok := r.Code(field)
		if !ok {
			return false
		}
		for _, code := range codes {
			if v == code {
				return true
			}
		}
		return false
	}
}

// NotIn holds when field is present and equals none of codes.
func NotIn(field string, codes ...string) Predicate {
	in := In(field, codes...)
	return func(r Record) bool { return r.Has(field) && !in(r) }
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(r Record) bool { return !p(r) }
}

// All holds when every predicate holds.
func All(ps ...Predicate) Predicate {
	return func(r Record) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Any holds when at least one predicate holds.
func Any(ps ...Predicate) Predicate {
	return func(r Record) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Differs holds when both codes are present and unequal.
func Differs(a, b string) Predicate {
	return func(r Record) bool {
		x, okX := r.Code(a)
		y, okY := r.Code(b)
		return okX && okY && x != y
	}
}

// After holds when the date of a is later than the date of b. Timestamps
// compare by their date.
func After(a, b string) Predicate {
	return func(r Record) bool {
		x, okX := r.Date(a)
		y, okY := r.Date(b)
		return okX && okY && x.After(y)
	}
}

// OutsideRange holds when the date of field lies outside [from, to]. The
// predicate does not hold unless all three dates are known.
func OutsideRange(field, from, to string) Predicate {
	return func(r Record) bool {
		d, ok := r.Date(field)
		lo, okLo := r.Date(from)
		hi, okHi := r.Date(to)
		if !ok || !okLo || !okHi {
			return false
		}
		return d.Before(lo) || d.After(hi)
	}
}
