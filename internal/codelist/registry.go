// Package codelist exposes the externally maintained code tables the
// validation engine checks against: countries, currencies, merchant
// categories, industry codes and localities.
//
// Tables are loaded once at startup from one or more [Source]
// implementations and merged into an immutable [Registry]. Lookups are
// case-insensitive.
package codelist

import (
	"context"
	"fmt"
	"strings"
)

// Name identifies a code table.
type Name string

// Known code tables.
const (
	Country          Name = "country"
	Currency         Name = "currency"
	MerchantCategory Name = "merchant_category"
	SNI              Name = "sni"
	Locality         Name = "locality"
)

// Names returns every known code table in a stable order.
func Names() []Name {
	return []Name{Country, Currency, MerchantCategory, SNI, Locality}
}

func known(name Name) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// CodeList maps a code to its human-readable description.
type CodeList map[string]string

// Registry is the merged, read-only set of code tables. It is safe for
// concurrent use.
type Registry struct {
	lists map[Name]CodeList
}

// NewRegistry loads every source in order and merges the result. A table
// provided by a later source replaces the same table from an earlier one.
// Every known table must end up present and non-empty.
func NewRegistry(ctx context.Context, sources ...Source) (*Registry, error) {
	merged := make(map[Name]CodeList, len(Names()))

	for _, source := range sources {
		lists, err := source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}

		for name, list := range lists {
			if !known(name) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownList, name)
			}
			if len(list) == 0 {
				return nil, fmt.Errorf("%w: %s", ErrEmptyList, name)
			}
			merged[name] = normalize(list)
		}
	}

	for _, name := range Names() {
		if _, ok := merged[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingList, name)
		}
	}

	return &Registry{lists: merged}, nil
}

func normalize(list CodeList) CodeList {
	out := make(CodeList, len(list))
	for code, description := range list {
		out[strings.ToUpper(code)] = description
	}
	return out
}

// Lookup returns the description of code within the named table.
func (r *Registry) Lookup(name Name, code string) (string, bool) {
	list, ok := r.lists[name]
	if !ok {
		return "", false
	}

	description, ok := list[strings.ToUpper(code)]
	return description, ok
}

// Has reports whether code exists in the named table.
func (r *Registry) Has(name Name, code string) bool {
	_, ok := r.Lookup(name, code)
	return ok
}

// Len returns the number of codes in the named table.
func (r *Registry) Len(name Name) int {
	return len(r.lists[name])
}

// Mismatch returns the message reported when code is absent from the named
// table.
func Mismatch(name Name, code string) string {
	switch name {
	case Country:
		return fmt.Sprintf("Country code is incorrect. Got %s, expected ISO 3166-1 alpha-2 country code.", code)
	case Currency:
		return fmt.Sprintf("Currency code is incorrect. Got %s, expected ISO 4217 alpha-3 currency code.", code)
	case MerchantCategory:
		return fmt.Sprintf("Merchant category code is incorrect. Got %s.", code)
	case SNI:
		return fmt.Sprintf("Sni code is incorrect. Got %s.", code)
	case Locality:
		return fmt.Sprintf("Locality is incorrect. Got %s.", code)
	default:
		return fmt.Sprintf("Code %s is not part of %s.", code, name)
	}
}
