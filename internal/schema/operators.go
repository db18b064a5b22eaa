package schema

import (
	"github.com/MKhiriev/go-paystat/internal/catalog"
	"github.com/MKhiriev/go-paystat/internal/codelist"
)

func directDebitFamily(d *definer) *Family {
	payment := Code(fieldPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeDirectDebits))

	directDebits := newVariant(catalog.ScopeDirectDebits, FamilyDirectDebits,
		[]FieldSpec{
			Text("id"),
			Count("number_of", 1),
			Amount("transaction_value"),
			Listed(fieldTransactionCurrency, codelist.Currency),
			payment,
			Code(fieldInitiationChannel, d.scoped(catalog.InitiationChannel, catalog.ScopeDirectDebits)),
		},
	).discriminatedBy(fieldPaymentType, payment.Set).
		withRules(typeConsistency(fieldPaymentType, fieldReportedPaymentType))

	return &Family{
		Name:          FamilyDirectDebits,
		DeclaredField: FieldReportedPaymentType,
		ItemField:     FieldPaymentType,
		Header: periodHeader(d, catalog.ScopeDirectDebitsReport, FamilyDirectDebits, MonthEnd,
			Code(FieldReportedPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeDirectDebitsReport))),
		Variants: []*Variant{directDebits},
	}
}

func paymentSystemOperatorFamily(d *definer) *Family {
	base := []FieldSpec{
		Text("id"),
		Code("payment_system", d.full(catalog.PaymentSystem)),
	}
	newItem := func(scope string, fields ...FieldSpec) *Variant {
		metric := Code(FieldPaymentSystemMetric, d.scoped(catalog.PaymentSystemMetric, scope))
		return newVariant(scope, FamilyPaymentSystemOperators, base, []FieldSpec{metric}, fields).
			discriminatedBy(FieldPaymentSystemMetric, metric.Set).
			withRules(typeConsistency(FieldPaymentSystemMetric, FieldReportedPaymentSystemMetric))
	}

	transactions := newItem(catalog.ScopeTransactionsInPaymentSystems,
		Code(fieldPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeTransactionsInPaymentSystems)),
		Count("number_of", 1),
		Amount("value_of_transactions"),
		Listed("counterparty_country", codelist.Country),
	)

	concentration := newItem(catalog.ScopeConcentrationRatio,
		Code("concentration_ratio_type", d.full(catalog.ConcentrationRatioType)),
		Ratio("concentration_ratio_value"),
	)

	participants := newItem(catalog.ScopeParticipantsInPaymentSystems,
		Count("number_of_participants", 0),
		Code("participant_type", d.full(catalog.ParticipantType)),
		Code("participant_sector", d.full(catalog.ParticipantSector)),
	)

	return &Family{
		Name:          FamilyPaymentSystemOperators,
		DeclaredField: FieldReportedPaymentSystemMetric,
		ItemField:     FieldPaymentSystemMetric,
		Header: periodHeader(d, catalog.ScopePaymentSystemOperatorsReport, FamilyPaymentSystemOperators, QuarterEnd,
			Code(FieldReportedPaymentSystemMetric, d.full(catalog.PaymentSystemMetric))),
		Variants: []*Variant{transactions, concentration, participants},
	}
}

func quantityItemFamily(d *definer) *Family {
	base := []FieldSpec{
		Text("id"),
		Count("number_of", 0),
	}
	located := append(base[:len(base):len(base)], Listed(fieldMerchantLocation, codelist.Country))

	newItem := func(scope string, base []FieldSpec, fields ...FieldSpec) *Variant {
		item := Code(FieldQuantityItem, d.scoped(catalog.QuantityItem, scope))
		return newVariant(scope, FamilyQuantityItems, base, []FieldSpec{item}, fields).
			discriminatedBy(FieldQuantityItem, item.Set).
			withRules(typeConsistency(FieldQuantityItem, FieldReportedQuantityItem))
	}

	cards := newItem(catalog.ScopeCards, base,
		Code(fieldPaymentServiceUser, d.scoped(catalog.PaymentServiceUser, catalog.ScopeCards)),
		Code(fieldPaymentScheme, d.scoped(catalog.PaymentScheme, catalog.ScopeCards)),
		Code("card_type", d.scoped(catalog.CardType, catalog.ScopeCards)),
		Code(fieldCardFunction, d.full(catalog.CardFunction)),
		Code(fieldEMoneyFunction, d.full(catalog.EMoneyFunction)).Optional(),
		Code("contactless_function", d.full(catalog.ContactlessFunction)),
	)
	cards.Rules = concat(eMoneyFunctionRules(), cards.Rules)

	pos := newItem(catalog.ScopePosTerminals, located,
		Code("terminal_function", d.scoped(catalog.TerminalFunction, catalog.ScopePosTerminals)),
		Code("contactless_function", d.full(catalog.ContactlessFunction)),
	)

	eMoneyTerminals := newItem(catalog.ScopeEMoneyTerminals, located,
		Code("terminal_function", d.scoped(catalog.TerminalFunction, catalog.ScopeEMoneyTerminals)),
	)

	atms := newItem(catalog.ScopeATMs, located,
		Code("terminal_function", d.scoped(catalog.TerminalFunction, catalog.ScopeATMs)),
		Code("contactless_function", d.full(catalog.ContactlessFunction)),
	)

	accounts := newItem(catalog.ScopePaymentAccounts, base,
		Code(fieldPaymentServiceUser, d.scoped(catalog.PaymentServiceUser, catalog.ScopePaymentAccounts)),
		Code("type_of_account", d.full(catalog.TypeOfAccount)),
	)

	return &Family{
		Name:          FamilyQuantityItems,
		DeclaredField: FieldReportedQuantityItem,
		ItemField:     FieldQuantityItem,
		Header: periodHeader(d, catalog.ScopeQuantityItemsReport, FamilyQuantityItems, HalfYearEnd,
			Code(FieldReportedQuantityItem, d.full(catalog.QuantityItem))),
		Variants: []*Variant{cards, pos, eMoneyTerminals, atms, accounts},
	}
}
