package schema

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-paystat/internal/catalog"
)

// Report family names.
const (
	FamilyTransactions           = "transactions"
	FamilyAggregates             = "aggregates"
	FamilyDirectDebits           = "direct_debits"
	FamilyPaymentSystemOperators = "payment_system_operators"
	FamilyQuantityItems          = "quantity_items"
)

// Variant is one concrete record shape: a report header or an item type.
type Variant struct {
	Name   string
	Family string

	// DiscriminatorField names the field selecting this variant and
	// Discriminators holds the codes selecting it. Both are empty for
	// report headers.
	DiscriminatorField string
	Discriminators     *catalog.EnumSet

	// Fields are ordered; violations follow this order.
	Fields []FieldSpec
	Rules  []Rule

	index map[string]int
}

// newVariant composes field groups into a variant. A field redeclared by a
// later group replaces the earlier declaration in place.
func newVariant(name, family string, groups ...[]FieldSpec) *Variant {
	v := &Variant{Name: name, Family: family, index: make(map[string]int)}

	for _, group := range groups {
		for _, field := range group {
			if i, ok := v.index[field.Name]; ok {
				v.Fields[i] = field
				continue
			}
			v.index[field.Name] = len(v.Fields)
			v.Fields = append(v.Fields, field)
		}
	}

	return v
}

func (v *Variant) discriminatedBy(field string, set *catalog.EnumSet) *Variant {
	v.DiscriminatorField = field
	v.Discriminators = set
	return v
}

func (v *Variant) withRules(rules ...Rule) *Variant {
	v.Rules = append(v.Rules, rules...)
	return v
}

// Field returns the specification of name.
func (v *Variant) Field(name string) (FieldSpec, bool) {
	i, ok := v.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return v.Fields[i], true
}

// Family groups the variants that may appear together in one report file.
type Family struct {
	Name string

	// DeclaredField is the header field declaring the report type and
	// ItemField the item field carrying the item type.
	DeclaredField string
	ItemField     string

	Header   *Variant
	Variants []*Variant
}

// Registry holds every family and variant. It is read-only after
// construction.
type Registry struct {
	families []*Family
	byName   map[string]*Variant
}

// NewRegistry builds every definition from the enumerated sets of cat.
func NewRegistry(cat *catalog.Catalog) (*Registry, error) {
	d := &definer{cat: cat}
	families := []*Family{
		transactionFamily(d),
		aggregateFamily(d),
		directDebitFamily(d),
		paymentSystemOperatorFamily(d),
		quantityItemFamily(d),
	}
	if d.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinition, d.err)
	}

	r := &Registry{families: families, byName: make(map[string]*Variant)}
	for _, f := range families {
		for _, v := range f.Variants {
			if _, ok := r.byName[v.Name]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateVariant, v.Name)
			}
			r.byName[v.Name] = v
		}
	}

	return r, nil
}

// Families returns every family in a stable order.
func (r *Registry) Families() []*Family {
	return r.families
}

// Family returns the family called name.
func (r *Registry) Family(name string) (*Family, bool) {
	for _, f := range r.families {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Variants returns every item variant in a stable order.
func (r *Registry) Variants() []*Variant {
	var out []*Variant
	for _, f := range r.families {
		out = append(out, f.Variants...)
	}
	return out
}

// Variant returns the item variant called name.
func (r *Registry) Variant(name string) (*Variant, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// definer resolves enumerated sets while definitions are built and collects
// lookup errors instead of failing on the first.
type definer struct {
	cat *catalog.Catalog
	err error
}

func (d *definer) full(concept catalog.Concept) *catalog.EnumSet {
	set, err := d.cat.FullSet(concept)
	if err != nil {
		d.err = errors.Join(d.err, err)
	}
	return set
}

func (d *definer) scoped(concept catalog.Concept, scope string) *catalog.EnumSet {
	set, err := d.cat.ScopedSet(concept, scope)
	if err != nil {
		d.err = errors.Join(d.err, err)
	}
	return set
}
