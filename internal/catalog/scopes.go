package catalog

// Report family scopes.
const (
	ScopeTransactionReport            = "transaction_report"
	ScopeAggregateReport              = "aggregate_report"
	ScopeDirectDebitsReport           = "direct_debits_report"
	ScopePaymentSystemOperatorsReport = "payment_system_operators_report"
	ScopeQuantityItemsReport          = "quantity_items_report"
)

// Record variant scopes.
const (
	ScopeInstantCreditTransfer        = "instant_credit_transfer"
	ScopeCreditTransfer               = "credit_transfer"
	ScopeCardPaymentIssuer            = "card_payment_issuer"
	ScopeCardPaymentAcquirer          = "card_payment_acquirer"
	ScopeCashTransactionsATMOwners    = "cash_transactions_atm_owners"
	ScopeEMoney                       = "e_money"
	ScopeMoneyRemittances             = "money_remittances"
	ScopeOTC                          = "otc"
	ScopePaymentInitiationServices    = "payment_initiation_services"
	ScopeDirectDebits                 = "direct_debits"
	ScopeTransactionsInPaymentSystems = "transactions_in_payment_systems"
	ScopeConcentrationRatio           = "concentration_ratio"
	ScopeParticipantsInPaymentSystems = "participants_in_payment_systems"
	ScopeCards                        = "cards"
	ScopePosTerminals                 = "pos_terminals"
	ScopeEMoneyTerminals              = "e_money_terminals"
	ScopeATMs                         = "atms"
	ScopePaymentAccounts              = "payment_accounts"
)

type scopeDefinition struct {
	concept Concept
	scope   string
	codes   []string
}

var scopeDefinitions = []scopeDefinition{
	// declared types per report family
	{PaymentType, ScopeTransactionReport, []string{"CPI", "CWI", "CADVI", "CPA", "CADVA", "CW0", "CD0", "CT0", "CT1"}},
	{PaymentType, ScopeAggregateReport, []string{"EMP0", "MREM", "CWOTC", "CDOTC", "PI"}},
	{PaymentType, ScopeDirectDebitsReport, []string{"DD"}},

	// item discriminators
	{PaymentType, ScopeInstantCreditTransfer, []string{"CT1"}},
	{PaymentType, ScopeCreditTransfer, []string{"CT0"}},
	{PaymentType, ScopeCardPaymentIssuer, []string{"CPI", "CWI", "CADVI"}},
	{PaymentType, ScopeCardPaymentAcquirer, []string{"CPA", "CADVA"}},
	{PaymentType, ScopeCashTransactionsATMOwners, []string{"CW0", "CD0"}},
	{PaymentType, ScopeEMoney, []string{"EMP0"}},
	{PaymentType, ScopeMoneyRemittances, []string{"MREM"}},
	{PaymentType, ScopeOTC, []string{"CWOTC", "CDOTC"}},
	{PaymentType, ScopePaymentInitiationServices, []string{"PI"}},
	{PaymentType, ScopeDirectDebits, []string{"DD"}},
	{PaymentSystemMetric, ScopeTransactionsInPaymentSystems, []string{"T"}},
	{PaymentSystemMetric, ScopeConcentrationRatio, []string{"C"}},
	{PaymentSystemMetric, ScopeParticipantsInPaymentSystems, []string{"P"}},
	{QuantityItem, ScopeCards, []string{"CARD"}},
	{QuantityItem, ScopePosTerminals, []string{"POS"}},
	{QuantityItem, ScopeEMoneyTerminals, []string{"EMT"}},
	{QuantityItem, ScopeATMs, []string{"ATM"}},
	{QuantityItem, ScopePaymentAccounts, []string{"PA"}},

	// payment types settled through a payment system
	{PaymentType, ScopeTransactionsInPaymentSystems, []string{"DD", "CT0", "CT1"}},

	{PaymentServiceUser, ScopeCardPaymentIssuer, []string{"P", "NMFIXP"}},
	{PaymentServiceUser, ScopeEMoney, []string{"P", "NMFIXP"}},
	{PaymentServiceUser, ScopeOTC, []string{"P", "NMFIXP"}},
	{PaymentServiceUser, ScopeCards, []string{"P", "NMFIXP"}},
	{PaymentServiceUser, ScopePaymentAccounts, []string{"P", "NMFIXP"}},

	{InitiationChannel, ScopeCardPaymentIssuer, []string{"1000", "2221", "2222", "2211", "2212", "2230", "3000"}},
	{InitiationChannel, ScopeCardPaymentAcquirer, []string{"1000", "2222", "2211", "2212", "2230", "3000"}},
	{InitiationChannel, ScopeCreditTransfer, []string{"1200", "2100", "2210", "2211", "2213", "2220", "2231", "2232", "3000", "5000"}},
	{InitiationChannel, ScopeInstantCreditTransfer, []string{"2100", "2210", "2211", "2213", "2220", "2231", "2232", "3000", "5000"}},
	{InitiationChannel, ScopeEMoney, []string{"2231", "2232", "2240", "2251", "2252"}},
	{InitiationChannel, ScopeDirectDebits, []string{"2100", "2200", "2270"}},

	{PaymentScheme, ScopeCardPaymentIssuer, []string{"PCS_MCRD", "PCS_VISA", "PCS_AMEX", "PCS_DINE", "PCS_OTH"}},
	{PaymentScheme, ScopeCardPaymentAcquirer, []string{"PCS_MCRD", "PCS_VISA", "PCS_AMEX", "PCS_DINE", "PCS_CUP", "PCS_JCB", "PCS_OTH"}},
	{PaymentScheme, ScopeCashTransactionsATMOwners, []string{"PCS_MCRD", "PCS_VISA", "PCS_CUP", "PCS_JCB", "PCS_AMEX", "PCS_DINE", "PCS_OTH"}},
	{PaymentScheme, ScopeCreditTransfer, []string{"CTS_SEPA", "CTS_NPC", "CTS_OTHRIX", "CTS_OTHXB", "CTS_ONUS", "CTS_OTHO"}},
	{PaymentScheme, ScopeInstantCreditTransfer, []string{"CTS_NPCI", "CTS_SEPAI", "CTS_NPCOLO", "CTS_EPCOLO", "CTS_OTHSIP", "CTS_OTHO"}},
	{PaymentScheme, ScopeCards, []string{"PCS_MCRD", "PCS_VISA", "PCS_AMEX", "PCS_DINE", "PCS_OTH"}},

	{CardType, ScopeCardPaymentIssuer, []string{"11", "12", "13"}},
	{CardType, ScopeCardPaymentAcquirer, []string{"111", "131", "16"}},
	{CardType, ScopeCards, []string{"11", "12", "13"}},

	{TerminalFunction, ScopePosTerminals, []string{"1", "2"}},
	{TerminalFunction, ScopeEMoneyTerminals, []string{"1", "3", "4"}},
	{TerminalFunction, ScopeATMs, []string{"5", "6", "7", "8", "9", "10", "11"}},
}
