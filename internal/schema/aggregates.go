package schema

import (
	"github.com/MKhiriev/go-paystat/internal/catalog"
	"github.com/MKhiriev/go-paystat/internal/codelist"
)

func aggregateBase(d *definer) []FieldSpec {
	return []FieldSpec{
		Text("id"),
		Day(fieldTransactionDay),
		Count("number_of", 1),
		Amount("transaction_value"),
		Listed(fieldTransactionCurrency, codelist.Currency),
		Code(fieldReportedPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeAggregateReport)).Context(),
		Day(FieldDateFrom).Context(),
		Day(FieldDateTo).Context(),
	}
}

func aggregateFamily(d *definer) *Family {
	rules := []Rule{
		typeConsistency(fieldPaymentType, fieldReportedPaymentType),
		withinPeriod(fieldTransactionDay),
	}
	newItem := func(scope string, fields ...FieldSpec) *Variant {
		payment := Code(fieldPaymentType, d.scoped(catalog.PaymentType, scope))
		return newVariant(scope, FamilyAggregates, aggregateBase(d), []FieldSpec{payment}, fields).
			discriminatedBy(fieldPaymentType, payment.Set).
			withRules(rules...)
	}

	eMoney := newItem(catalog.ScopeEMoney,
		Listed("counterparty_country", codelist.Country),
		Code(fieldRole, d.full(catalog.RoleInTransaction)),
		Code(fieldPaymentServiceUser, d.scoped(catalog.PaymentServiceUser, catalog.ScopeEMoney)),
		Code(fieldInitiationChannel, d.scoped(catalog.InitiationChannel, catalog.ScopeEMoney)),
		Code(fieldRemoteInitiation, d.full(catalog.RemoteInitiation)),
	)

	remittances := newItem(catalog.ScopeMoneyRemittances,
		Listed("counterparty_country", codelist.Country),
		Listed("initiation_country", codelist.Country),
		Code(fieldRole, d.full(catalog.RoleInTransaction)),
		Code(fieldPaymentServiceUser, d.full(catalog.PaymentServiceUser)),
	)

	otc := newItem(catalog.ScopeOTC,
		Code(fieldPaymentServiceUser, d.scoped(catalog.PaymentServiceUser, catalog.ScopeOTC)),
	)

	initiation := newItem(catalog.ScopePaymentInitiationServices,
		Code("pisp_initiated_transaction", d.full(catalog.PispInitiatedTransaction)),
		Listed("counterparty_country", codelist.Country),
		Listed("initiation_country", codelist.Country),
		Code(fieldPaymentServiceUser, d.full(catalog.PaymentServiceUser)),
		Code(fieldRemoteInitiation, d.full(catalog.RemoteInitiation)),
	)

	return &Family{
		Name:          FamilyAggregates,
		DeclaredField: FieldReportedPaymentType,
		ItemField:     FieldPaymentType,
		Header:        datedHeader(d, catalog.ScopeAggregateReport, FamilyAggregates, catalog.ScopeAggregateReport),
		Variants:      []*Variant{eMoney, remittances, otc, initiation},
	}
}
