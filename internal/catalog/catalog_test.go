package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// New
// ─────────────────────────────────────────────

// TestNew_BuildsBuiltInDefinitions verifies that every built-in scoped set is
// a subset of its domain, i.e. the catalog builds without error.
func TestNew_BuildsBuiltInDefinitions(t *testing.T) {
	c, err := New()

	require.NoError(t, err)
	assert.Equal(t, 22, c.Concepts())
	assert.Equal(t, len(scopeDefinitions), c.Scopes())
}

func TestBuild_ScopeNotSubset_ReturnsError(t *testing.T) {
	domains := []domainDefinition{
		{concept: Environment, codes: []codeDefinition{{"T", "Test"}, {"P", "Production"}}},
	}
	scopes := []scopeDefinition{
		{Environment, "broken", []string{"T", "X"}},
	}

	c, err := build(domains, scopes)

	assert.Nil(t, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScopeNotSubset))
}

func TestBuild_ScopeOfUnknownConcept_ReturnsError(t *testing.T) {
	scopes := []scopeDefinition{{PaymentType, "x", []string{"CT0"}}}

	_, err := build(nil, scopes)

	require.ErrorIs(t, err, ErrUnknownConcept)
}

func TestBuild_DuplicateScope_ReturnsError(t *testing.T) {
	domains := []domainDefinition{
		{concept: Environment, codes: []codeDefinition{{"T", "Test"}}},
	}
	scopes := []scopeDefinition{
		{Environment, "a", []string{"T"}},
		{Environment, "a", []string{"T"}},
	}

	_, err := build(domains, scopes)

	require.ErrorIs(t, err, ErrDuplicateScope)
}

func TestBuild_DuplicateConcept_ReturnsError(t *testing.T) {
	domains := []domainDefinition{
		{concept: Environment, codes: []codeDefinition{{"T", "Test"}}},
		{concept: Environment, codes: []codeDefinition{{"P", "Production"}}},
	}

	_, err := build(domains, nil)

	require.ErrorIs(t, err, ErrDuplicateConcept)
}

// ─────────────────────────────────────────────
// EnumSet.Check
// ─────────────────────────────────────────────

// TestCheck_ScopeVersusDomain verifies that a code valid in the full domain
// but outside the scoped subset is reported as out of scope, while a code
// absent from the domain is reported as unknown.
func TestCheck_ScopeVersusDomain(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	directDebitChannels, err := c.ScopedSet(InitiationChannel, ScopeDirectDebits)
	require.NoError(t, err)

	tests := []struct {
		name string
		code string
		want Membership
	}{
		{name: "member", code: "2270", want: Member},
		{name: "in domain but out of scope", code: "2221", want: OutOfScope},
		{name: "absent from domain", code: "9999", want: Unknown},
		{name: "empty", code: "", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, directDebitChannels.Check(tt.code))
		})
	}
}

func TestCheck_CaseInsensitive(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	schemes, err := c.ScopedSet(PaymentScheme, ScopeInstantCreditTransfer)
	require.NoError(t, err)

	assert.Equal(t, Member, schemes.Check("cts_sepai"))
	assert.Equal(t, OutOfScope, schemes.Check("pcs_visa"))
}

func TestCheck_FullDomainNeverOutOfScope(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	roles, err := c.FullSet(RoleInTransaction)
	require.NoError(t, err)

	assert.Equal(t, Member, roles.Check("1"))
	assert.Equal(t, Unknown, roles.Check("3"))
	assert.Same(t, roles, roles.Domain())
}

// ─────────────────────────────────────────────
// Lookups
// ─────────────────────────────────────────────

func TestScopedSet_PreservesOrder(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	set, err := c.ScopedSet(InitiationChannel, ScopeCardPaymentIssuer)
	require.NoError(t, err)

	assert.Equal(t, []string{"1000", "2221", "2222", "2211", "2212", "2230", "3000"}, set.Codes())
	assert.True(t, set.Numeric())
	assert.Equal(t, ScopeCardPaymentIssuer, set.Scope())
}

func TestScopedSet_Unknown_ReturnsError(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	_, err = c.ScopedSet(InitiationChannel, "nope")
	require.ErrorIs(t, err, ErrUnknownScope)

	_, err = c.FullSet("nope")
	require.ErrorIs(t, err, ErrUnknownConcept)
}

func TestDescribe(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	description, ok := c.Describe(InitiationChannel, "2221")
	require.True(t, ok)
	assert.Equal(t, "ATM", description)

	set, err := c.ScopedSet(PaymentScheme, ScopeInstantCreditTransfer)
	require.NoError(t, err)
	description, ok = set.Describe("CTS_SEPAI")
	require.True(t, ok)
	assert.Equal(t, "The SEPA instant credit transfer (SCT Inst)", description)

	_, ok = set.Describe("PCS_VISA")
	assert.False(t, ok)
}
