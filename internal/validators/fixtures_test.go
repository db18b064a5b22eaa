package validators

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-paystat/internal/catalog"
	"github.com/MKhiriev/go-paystat/internal/codelist"
	"github.com/MKhiriev/go-paystat/internal/schema"
	"github.com/MKhiriev/go-paystat/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func num(s string) json.Number { return json.Number(s) }

func date(s string) time.Time {
	t, err := time.Parse(schema.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

type env struct {
	reg        *schema.Registry
	structural *Structural
	validator  Validator
}

func newEnv(t *testing.T) *env {
	t.Helper()

	cat, err := catalog.New()
	require.NoError(t, err)
	reg, err := schema.NewRegistry(cat)
	require.NoError(t, err)
	lists, err := codelist.NewRegistry(context.Background(), codelist.NewEmbeddedSource())
	require.NoError(t, err)
	structural, err := NewStructural(lists, fixedClock)
	require.NoError(t, err)

	return &env{reg: reg, structural: structural, validator: NewRecordValidator(structural)}
}

func (e *env) variant(t *testing.T, name string) *schema.Variant {
	t.Helper()

	v, ok := e.reg.Variant(name)
	require.True(t, ok, "variant %s", name)
	return v
}

// contextFor is the header context of a report declaring the discriminator
// of item, covering the first quarter of 2025.
func (e *env) contextFor(t *testing.T, v *schema.Variant, item models.RawRecord) schema.Context {
	t.Helper()

	f, ok := e.reg.Family(v.Family)
	require.True(t, ok)
	declared, _ := schema.CodeText(item[v.DiscriminatorField])

	return schema.Context{
		DeclaredField: f.DeclaredField,
		DeclaredType:  declared,
		DateFrom:      date("2025-01-01"),
		DateTo:        date("2025-03-31"),
	}
}

func (e *env) validate(t *testing.T, name string, item models.RawRecord) Result {
	t.Helper()

	v := e.variant(t, name)
	return e.validator.Validate(context.Background(), item, v, e.contextFor(t, v, item))
}

func merge(base models.RawRecord, overrides models.RawRecord) models.RawRecord {
	out := make(models.RawRecord, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// validItems returns a minimal valid item of every variant, as decoded from
// JSON.
func validItems() map[string]models.RawRecord {
	transaction := models.RawRecord{
		"id":                   "tx-1",
		"transaction_value":    num("100.00"),
		"transaction_currency": "SEK",
		"role_in_transaction":  num("1"),
	}
	aggregate := models.RawRecord{
		"id":                   "agg-1",
		"transaction_day":      "2025-01-10",
		"number_of":            num("1"),
		"transaction_value":    num("100.00"),
		"transaction_currency": "SEK",
	}
	card := merge(transaction, models.RawRecord{
		"transaction_cleared": "2025-01-10",
		"merchant_location":   "SE",
		"remote_initiation":   "NR",
		"merchant_category":   "5411",
		"transaction_type":    "PUR",
		"initiation_channel":  num("2222"),
		"payment_scheme":      "PCS_VISA",
	})

	return map[string]models.RawRecord{
		catalog.ScopeInstantCreditTransfer: merge(transaction, models.RawRecord{
			"payment_type":         "CT1",
			"counterparty_country": "SE",
			"transaction_time":     "2025-01-10 10:00:00",
			"account_value":        num("100.00"),
			"account_currency":     "SEK",
			"payment_service_user": "P",
			"initiation_channel":   num("2210"),
			"remote_initiation":    "R",
			"payment_scheme":       "CTS_NPCI",
		}),
		catalog.ScopeCreditTransfer: merge(transaction, models.RawRecord{
			"payment_type":         "CT0",
			"counterparty_country": "SE",
			"transaction_day":      "2025-01-10",
			"payment_service_user": "P",
			"initiation_channel":   num("2210"),
			"remote_initiation":    "R",
			"payment_scheme":       "CTS_NPC",
		}),
		catalog.ScopeCardPaymentIssuer: merge(card, models.RawRecord{
			"payment_type":         "CPI",
			"account_value":        num("100.00"),
			"account_currency":     "SEK",
			"payment_service_user": "P",
			"card_type":            num("11"),
		}),
		catalog.ScopeCardPaymentAcquirer: merge(card, models.RawRecord{
			"payment_type":         "CPA",
			"counterparty_country": "SE",
			"card_type":            num("111"),
		}),
		catalog.ScopeCashTransactionsATMOwners: merge(transaction, models.RawRecord{
			"payment_type":         "CW0",
			"counterparty_country": "SE",
			"transaction_day":      "2025-01-10",
			"merchant_location":    "SE",
			"locality":             "Stockholm",
			"payment_scheme":       "PCS_VISA",
		}),
		catalog.ScopeEMoney: merge(aggregate, models.RawRecord{
			"payment_type":         "EMP0",
			"counterparty_country": "SE",
			"role_in_transaction":  num("1"),
			"payment_service_user": "P",
			"initiation_channel":   num("2231"),
			"remote_initiation":    "R",
		}),
		catalog.ScopeMoneyRemittances: merge(aggregate, models.RawRecord{
			"payment_type":         "MREM",
			"counterparty_country": "SE",
			"initiation_country":   "SE",
			"role_in_transaction":  num("1"),
			"payment_service_user": "P",
		}),
		catalog.ScopeOTC: merge(aggregate, models.RawRecord{
			"payment_type":         "CWOTC",
			"payment_service_user": "P",
		}),
		catalog.ScopePaymentInitiationServices: merge(aggregate, models.RawRecord{
			"payment_type":               "PI",
			"pisp_initiated_transaction": "ICT0",
			"counterparty_country":       "SE",
			"initiation_country":         "SE",
			"payment_service_user":       "P",
			"remote_initiation":          "R",
		}),
		catalog.ScopeDirectDebits: {
			"id":                   "dd-1",
			"number_of":            num("1"),
			"transaction_value":    num("100.00"),
			"transaction_currency": "SEK",
			"payment_type":         "DD",
			"initiation_channel":   num("2270"),
		},
		catalog.ScopeTransactionsInPaymentSystems: {
			"id":                    "ps-1",
			"payment_system":        "RIX",
			"payment_system_metric": "T",
			"payment_type":          "CT0",
			"number_of":             num("1"),
			"value_of_transactions": num("5.00"),
			"counterparty_country":  "SE",
		},
		catalog.ScopeConcentrationRatio: {
			"id":                        "ps-2",
			"payment_system":            "RIX",
			"payment_system_metric":     "C",
			"concentration_ratio_type":  num("2"),
			"concentration_ratio_value": num("0.45"),
		},
		catalog.ScopeParticipantsInPaymentSystems: {
			"id":                     "ps-3",
			"payment_system":         "RIX",
			"payment_system_metric":  "P",
			"number_of_participants": num("0"),
			"participant_type":       num("1"),
			"participant_sector":     "S121",
		},
		catalog.ScopeCards: {
			"id":                   "q-1",
			"number_of":            num("0"),
			"quantity_item":        "CARD",
			"payment_service_user": "P",
			"payment_scheme":       "PCS_VISA",
			"card_type":            num("11"),
			"card_function":        "CF1",
			"contactless_function": num("12"),
		},
		catalog.ScopePosTerminals: {
			"id":                   "q-2",
			"number_of":            num("10"),
			"merchant_location":    "SE",
			"quantity_item":        "POS",
			"terminal_function":    num("1"),
			"contactless_function": num("11"),
		},
		catalog.ScopeEMoneyTerminals: {
			"id":                "q-3",
			"number_of":         num("10"),
			"merchant_location": "SE",
			"quantity_item":     "EMT",
			"terminal_function": num("3"),
		},
		catalog.ScopeATMs: {
			"id":                   "q-4",
			"number_of":            num("10"),
			"merchant_location":    "SE",
			"quantity_item":        "ATM",
			"terminal_function":    num("5"),
			"contactless_function": num("10"),
		},
		catalog.ScopePaymentAccounts: {
			"id":                   "q-5",
			"number_of":            num("10"),
			"quantity_item":        "PA",
			"payment_service_user": "P",
			"type_of_account":      "PA",
		},
	}
}
