// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatch maps type discriminators to record variants.
//
// The dispatch table is built once by flattening the discriminator sets of
// every variant into one map. Two variants claiming the same code is a
// startup error, so resolution is always unambiguous.
package dispatch

import (
	"fmt"

	"github.com/MKhiriev/go-paystat/internal/catalog"
	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

// Dispatcher resolves report families and item variants. It is read-only
// after construction and safe for concurrent use.
type Dispatcher struct {
	variants map[string]*schema.Variant
	families map[string]*schema.Family

	// declaredFields lists the distinct header fields declaring a report
	// type, in family order.
	declaredFields []string
	// itemFields lists the distinct item discriminator fields, most
	// specific first.
	itemFields []string
}

// New builds the dispatch table of every family in reg.
func New(reg *schema.Registry) (*Dispatcher, error) {
	return NewFromFamilies(reg.Families()...)
}

// NewFromFamilies builds the dispatch table of the given families.
func NewFromFamilies(families ...*schema.Family) (*Dispatcher, error) {
	d := &Dispatcher{
		variants: make(map[string]*schema.Variant),
		families: make(map[string]*schema.Family, len(families)),
	}

	for _, f := range families {
		d.families[f.Name] = f
		d.declaredFields = appendUnique(d.declaredFields, f.DeclaredField)
		d.itemFields = appendUnique(d.itemFields, f.ItemField)

		for _, v := range f.Variants {
			for _, code := range v.Discriminators.Codes() {
				if other, ok := d.variants[code]; ok {
					return nil, fmt.Errorf("%w: %s claimed by %s and %s", ErrDuplicateDiscriminator, code, other.Name, v.Name)
				}
				d.variants[code] = v
			}
		}
	}

	// payment_type is also an ordinary field of some non-transaction
	// variants, so it is consulted last.
	d.itemFields = moveLast(d.itemFields, schema.FieldPaymentType)

	return d, nil
}

// Len returns the number of discriminator codes in the table.
func (d *Dispatcher) Len() int {
	return len(d.variants)
}

// Resolve returns the variant selected by code. Codes are case-insensitive.
func (d *Dispatcher) Resolve(code string) (*schema.Variant, error) {
	v, ok := d.variants[catalog.Normalize(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiscriminator, code)
	}
	return v, nil
}

// ResolveFamily determines the family of a report from the type declared in
// its header. It returns the family and the normalized declared type.
func (d *Dispatcher) ResolveFamily(header models.RawRecord) (*schema.Family, string, error) {
	for _, field := range d.declaredFields {
		if !header.Has(field) {
			continue
		}

		code, ok := schema.CodeText(header[field])
		if !ok {
			return nil, "", fmt.Errorf("%w: %s is not a code", ErrUnknownReportFamily, field)
		}

		v, err := d.Resolve(code)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrUnknownReportFamily, err)
		}

		f := d.families[v.Family]
		if f.DeclaredField != field {
			return nil, "", fmt.Errorf("%w: %s %s belongs to %s reports", ErrUnknownReportFamily, field, code, f.Name)
		}

		return f, catalog.Normalize(code), nil
	}

	return nil, "", fmt.Errorf("%w: no declared report type", ErrUnknownReportFamily)
}

// DeclaredFields returns the header fields that may declare a report type.
func (d *Dispatcher) DeclaredFields() []string {
	return append([]string(nil), d.declaredFields...)
}

// ResolveItem selects the variant of an item in a report of family f with
// declared type declared. The item's own discriminator wins over the
// declared type. Failures are returned as a dispatch violation located at
// the item discriminator field.
func (d *Dispatcher) ResolveItem(f *schema.Family, declared string, item models.RawRecord) (*schema.Variant, *models.Violation) {
	code, rendered := declared, declared
	if item.Has(f.ItemField) {
		rendered = schema.RenderRaw(item[f.ItemField])
		text, ok := schema.CodeText(item[f.ItemField])
		if !ok {
			return nil, unknownItemType(f.ItemField, rendered)
		}
		code = text
	}

	v, err := d.Resolve(code)
	if err != nil {
		return nil, unknownItemType(f.ItemField, rendered)
	}

	if v.Family != f.Name {
		return nil, &models.Violation{
			Kind:     models.KindDispatch,
			Code:     models.CodeWrongFamily,
			Location: models.Location{f.ItemField},
			Value:    rendered,
			Message:  fmt.Sprintf("Item type %s can not be reported in a %s report.", rendered, f.Name),
		}
	}

	return v, nil
}

// ResolveStandalone selects the variant of an item validated without a
// report header, using whichever discriminator field the item carries.
func (d *Dispatcher) ResolveStandalone(item models.RawRecord) (*schema.Variant, *models.Violation) {
	for _, field := range d.itemFields {
		if !item.Has(field) {
			continue
		}

		rendered := schema.RenderRaw(item[field])
		code, ok := schema.CodeText(item[field])
		if !ok {
			return nil, unknownItemType(field, rendered)
		}

		v, err := d.Resolve(code)
		if err != nil || v.DiscriminatorField != field {
			return nil, unknownItemType(field, rendered)
		}

		return v, nil
	}

	return nil, &models.Violation{
		Kind:     models.KindDispatch,
		Code:     models.CodeUnknownDiscriminator,
		Location: models.Location{},
		Value:    "null",
		Message:  "Item type can not be determined. No type discriminator field is present.",
	}
}

// Family returns the family called name.
func (d *Dispatcher) Family(name string) (*schema.Family, bool) {
	f, ok := d.families[name]
	return f, ok
}

func unknownItemType(field, rendered string) *models.Violation {
	return &models.Violation{
		Kind:     models.KindDispatch,
		Code:     models.CodeUnknownDiscriminator,
		Location: models.Location{field},
		Value:    rendered,
		Message:  fmt.Sprintf("Unknown item type %s. No record definition matches it.", rendered),
	}
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func moveLast(list []string, s string) []string {
	out := make([]string, 0, len(list))
	found := false
	for _, v := range list {
		if v == s {
			found = true
			continue
		}
		out = append(out, v)
	}
	if found {
		out = append(out, s)
	}
	return out
}
