// Package catalog holds the closed code domains of the payment statistics
// reporting scheme and the narrower subsets of those domains that are legal
// for a single record variant or report family.
//
// A [Catalog] is built once at startup and is read-only afterwards, so it is
// safe for concurrent use.
package catalog

import (
	"fmt"
	"strings"
)

// Concept names a business concept that has a closed code domain,
// e.g. payment type or initiation channel.
type Concept string

// Membership is the result of checking a code against an [EnumSet].
type Membership int

const (
	// Member means the code belongs to the set.
	Member Membership = iota
	// OutOfScope means the code belongs to the concept's full domain but not
	// to the scoped subset that was checked.
	OutOfScope
	// Unknown means the code is not part of the concept's domain at all.
	Unknown
)

// String implements fmt.Stringer.
func (m Membership) String() string {
	switch m {
	case Member:
		return "member"
	case OutOfScope:
		return "out_of_scope"
	default:
		return "unknown"
	}
}

// EnumSet is a named, closed and ordered set of codes. A full domain has no
// parent; a scoped set keeps a reference to the domain it was cut from so
// that out-of-scope codes can be told apart from unknown ones.
type EnumSet struct {
	concept Concept
	scope   string
	numeric bool

	codes        []string
	members      map[string]struct{}
	descriptions map[string]string
	domain       *EnumSet
}

func newEnumSet(concept Concept, scope string, numeric bool, codes []string, domain *EnumSet) *EnumSet {
	set := &EnumSet{
		concept: concept,
		scope:   scope,
		numeric: numeric,
		codes:   make([]string, 0, len(codes)),
		members: make(map[string]struct{}, len(codes)),
		domain:  domain,
	}
	for _, code := range codes {
		normalized := Normalize(code)
		set.codes = append(set.codes, normalized)
		set.members[normalized] = struct{}{}
	}

	return set
}

// Concept returns the concept the set belongs to.
func (s *EnumSet) Concept() Concept {
	return s.concept
}

// Scope returns the scope name of a scoped set, or "" for a full domain.
func (s *EnumSet) Scope() string {
	return s.scope
}

// Numeric reports whether the concept is coded with integers.
func (s *EnumSet) Numeric() bool {
	return s.numeric
}

// Codes returns the codes of the set in declaration order.
func (s *EnumSet) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Len returns the number of codes in the set.
func (s *EnumSet) Len() int {
	return len(s.codes)
}

// Contains reports whether code belongs to the set. The comparison is
// case-insensitive.
func (s *EnumSet) Contains(code string) bool {
	_, ok := s.members[Normalize(code)]
	return ok
}

// Check classifies code against the set.
func (s *EnumSet) Check(code string) Membership {
	if s.Contains(code) {
		return Member
	}
	if s.domain != nil && s.domain.Contains(code) {
		return OutOfScope
	}

	return Unknown
}

// Domain returns the full domain a scoped set was cut from, or the set
// itself when it already is a full domain.
func (s *EnumSet) Domain() *EnumSet {
	if s.domain == nil {
		return s
	}
	return s.domain
}

// Describe returns the human-readable description of code.
func (s *EnumSet) Describe(code string) (string, bool) {
	if !s.Contains(code) {
		return "", false
	}
	description, ok := s.Domain().descriptions[Normalize(code)]
	return description, ok
}

// Normalize returns the canonical form of a code: upper-cased.
func Normalize(code string) string {
	return strings.ToUpper(code)
}

type scopeKey struct {
	concept Concept
	scope   string
}

// Catalog indexes every full domain and every scoped set.
type Catalog struct {
	domains map[Concept]*EnumSet
	scoped  map[scopeKey]*EnumSet
}

// New builds the catalog from the built-in definitions. It fails when a
// scoped set references an unknown concept or contains a code outside its
// concept's domain.
func New() (*Catalog, error) {
	return build(domainDefinitions, scopeDefinitions)
}

func build(domains []domainDefinition, scopes []scopeDefinition) (*Catalog, error) {
	c := &Catalog{
		domains: make(map[Concept]*EnumSet, len(domains)),
		scoped:  make(map[scopeKey]*EnumSet, len(scopes)),
	}

	for _, def := range domains {
		if _, exists := c.domains[def.concept]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConcept, def.concept)
		}

		codes := make([]string, 0, len(def.codes))
		descriptions := make(map[string]string, len(def.codes))
		for _, code := range def.codes {
			codes = append(codes, code.value)
			descriptions[Normalize(code.value)] = code.description
		}

		set := newEnumSet(def.concept, "", def.numeric, codes, nil)
		set.descriptions = descriptions
		c.domains[def.concept] = set
	}

	for _, def := range scopes {
		domain, ok := c.domains[def.concept]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownConcept, def.concept)
		}

		key := scopeKey{concept: def.concept, scope: def.scope}
		if _, exists := c.scoped[key]; exists {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateScope, def.concept, def.scope)
		}

		for _, code := range def.codes {
			if !domain.Contains(code) {
				return nil, fmt.Errorf("%w: %s/%s contains %q", ErrScopeNotSubset, def.concept, def.scope, code)
			}
		}

		c.scoped[key] = newEnumSet(def.concept, def.scope, domain.numeric, def.codes, domain)
	}

	return c, nil
}

// FullSet returns the full domain of concept.
func (c *Catalog) FullSet(concept Concept) (*EnumSet, error) {
	set, ok := c.domains[concept]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConcept, concept)
	}
	return set, nil
}

// ScopedSet returns the subset of concept that is legal within scope.
func (c *Catalog) ScopedSet(concept Concept, scope string) (*EnumSet, error) {
	set, ok := c.scoped[scopeKey{concept: concept, scope: scope}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownScope, concept, scope)
	}
	return set, nil
}

// Describe returns the description of code within concept's full domain.
func (c *Catalog) Describe(concept Concept, code string) (string, bool) {
	set, ok := c.domains[concept]
	if !ok {
		return "", false
	}
	return set.Describe(code)
}

// Concepts returns the number of full domains.
func (c *Catalog) Concepts() int {
	return len(c.domains)
}

// Scopes returns the number of scoped sets.
func (c *Catalog) Scopes() int {
	return len(c.scoped)
}
