package schema

import (
	"github.com/MKhiriev/go-paystat/internal/catalog"
	"github.com/MKhiriev/go-paystat/internal/codelist"
)

const merchantCategoryPattern = `^(?:\d{4}|G\d{3})$`

func transactionBase(d *definer) []FieldSpec {
	return []FieldSpec{
		Text("id"),
		Amount("transaction_value"),
		Listed(fieldTransactionCurrency, codelist.Currency),
		Code(fieldRole, d.full(catalog.RoleInTransaction)),
		Code(fieldReportedPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeTransactionReport)).Context(),
		Day(FieldDateFrom).Context(),
		Day(FieldDateTo).Context(),
	}
}

func cardBase(d *definer) []FieldSpec {
	return []FieldSpec{
		Timestamp(fieldTransactionInitiated).Optional(),
		Day(fieldTransactionCleared),
		Listed(fieldMerchantLocation, codelist.Country),
		Code(fieldRemoteInitiation, d.full(catalog.RemoteInitiation)),
		Code(fieldContactless, d.full(catalog.Contactless)).Optional(),
		Listed("merchant_category", codelist.MerchantCategory).Matching(merchantCategoryPattern),
	}
}

func transactionFamily(d *definer) *Family {
	consistency := typeConsistency(fieldPaymentType, fieldReportedPaymentType)
	newItem := func(scope string, groups ...[]FieldSpec) *Variant {
		return newVariant(scope, FamilyTransactions, groups...).
			discriminatedBy(fieldPaymentType, d.scoped(catalog.PaymentType, scope))
	}

	atmOwners := newItem(catalog.ScopeCashTransactionsATMOwners,
		transactionBase(d),
		[]FieldSpec{
			Code(fieldPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeCashTransactionsATMOwners)),
			Listed("counterparty_country", codelist.Country),
			Day(fieldTransactionDay),
			Listed(fieldMerchantLocation, codelist.Country),
			Listed(fieldLocality, codelist.Locality).Optional(),
			Code(fieldPaymentScheme, d.scoped(catalog.PaymentScheme, catalog.ScopeCashTransactionsATMOwners)),
		},
	).withRules(concat(
		atmOwnerRules(),
		[]Rule{consistency, withinPeriod(fieldTransactionDay)},
	)...)

	creditTransfer := newItem(catalog.ScopeCreditTransfer,
		transactionBase(d),
		[]FieldSpec{
			Code(fieldPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeCreditTransfer)),
			Listed("counterparty_country", codelist.Country),
			Day(fieldTransactionDay),
			Code(fieldPaymentServiceUser, d.full(catalog.PaymentServiceUser)),
			Listed(fieldSNI, codelist.SNI).Optional(),
			Code(fieldInitiationChannel, d.scoped(catalog.InitiationChannel, catalog.ScopeCreditTransfer)).Optional(),
			Code(fieldRemoteInitiation, d.full(catalog.RemoteInitiation)).Optional(),
			Code(fieldPaymentScheme, d.scoped(catalog.PaymentScheme, catalog.ScopeCreditTransfer)),
		},
	).withRules(concat(
		remoteChannelRules(),
		[]Rule{euroOnly("sepa_requires_eur", catalog.SchemeSEPA, "SEPA")},
		payerOnly(fieldInitiationChannel),
		payerOnly(fieldRemoteInitiation),
		sniRules(),
		[]Rule{consistency, withinPeriod(fieldTransactionDay)},
	)...)

	instantCreditTransfer := newItem(catalog.ScopeInstantCreditTransfer,
		transactionBase(d),
		[]FieldSpec{
			Code(fieldPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeInstantCreditTransfer)),
			Listed("counterparty_country", codelist.Country),
			Timestamp(fieldTransactionTime),
			Amount(fieldAccountValue).Optional(),
			Listed(fieldAccountCurrency, codelist.Currency).Optional(),
			Code(fieldPaymentServiceUser, d.full(catalog.PaymentServiceUser)),
			Listed(fieldSNI, codelist.SNI).Optional(),
			Code(fieldInitiationChannel, d.scoped(catalog.InitiationChannel, catalog.ScopeInstantCreditTransfer)).Optional(),
			Code(fieldRemoteInitiation, d.full(catalog.RemoteInitiation)).Optional(),
			Code(fieldPaymentScheme, d.scoped(catalog.PaymentScheme, catalog.ScopeInstantCreditTransfer)),
		},
	).withRules(concat(
		remoteChannelRules(),
		[]Rule{euroOnly("sct_inst_requires_eur", catalog.SchemeSEPAInst, "SCT Inst")},
		payerOnly(fieldAccountValue),
		payerOnly(fieldAccountCurrency),
		payerOnly(fieldInitiationChannel),
		payerOnly(fieldRemoteInitiation),
		sniRules(),
		[]Rule{consistency, withinPeriod(fieldTransactionTime)},
	)...)

	issuer := newItem(catalog.ScopeCardPaymentIssuer,
		transactionBase(d),
		cardBase(d),
		[]FieldSpec{
			Code(fieldPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeCardPaymentIssuer)),
			Code(fieldTransactionType, d.full(catalog.TransactionType)).Optional(),
			Listed("counterparty_country", codelist.Country).Optional(),
			Amount(fieldAccountValue),
			Listed(fieldAccountCurrency, codelist.Currency),
			Code(fieldPaymentServiceUser, d.scoped(catalog.PaymentServiceUser, catalog.ScopeCardPaymentIssuer)),
			Code(fieldInitiationChannel, d.scoped(catalog.InitiationChannel, catalog.ScopeCardPaymentIssuer)),
			Code(fieldPaymentScheme, d.scoped(catalog.PaymentScheme, catalog.ScopeCardPaymentIssuer)),
			Code("card_type", d.scoped(catalog.CardType, catalog.ScopeCardPaymentIssuer)),
		},
	).withRules(concat(
		[]Rule{notRemote("atm_pos_not_remote", "ATM and POS-terminal initiated payments can not be done remotely.",
			catalog.ChannelATM, catalog.ChannelPOSTerminal)},
		cardRules(catalog.PaymentTypeCardPurchaseIssuer),
		[]Rule{consistency, withinPeriod(fieldTransactionCleared)},
	)...)

	acquirer := newItem(catalog.ScopeCardPaymentAcquirer,
		transactionBase(d),
		cardBase(d),
		[]FieldSpec{
			Code(fieldPaymentType, d.scoped(catalog.PaymentType, catalog.ScopeCardPaymentAcquirer)),
			Listed("counterparty_country", codelist.Country),
			Code(fieldTransactionType, d.full(catalog.TransactionType)).Optional(),
			Code(fieldInitiationChannel, d.scoped(catalog.InitiationChannel, catalog.ScopeCardPaymentAcquirer)),
			Code(fieldPaymentScheme, d.scoped(catalog.PaymentScheme, catalog.ScopeCardPaymentAcquirer)),
			Code("card_type", d.scoped(catalog.CardType, catalog.ScopeCardPaymentAcquirer)),
		},
	).withRules(concat(
		[]Rule{notRemote("pos_not_remote", "POS-terminal initiated payments can not be done remotely.",
			catalog.ChannelPOSTerminal)},
		cardRules(catalog.PaymentTypeCardPurchaseAcq),
		[]Rule{consistency, withinPeriod(fieldTransactionCleared)},
	)...)

	return &Family{
		Name:          FamilyTransactions,
		DeclaredField: FieldReportedPaymentType,
		ItemField:     FieldPaymentType,
		Header:        datedHeader(d, catalog.ScopeTransactionReport, FamilyTransactions, catalog.ScopeTransactionReport),
		Variants:      []*Variant{instantCreditTransfer, creditTransfer, issuer, acquirer, atmOwners},
	}
}
