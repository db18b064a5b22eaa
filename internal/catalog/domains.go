package catalog

// Concepts with a closed code domain.
const (
	Environment              Concept = "environment"
	RoleInTransaction        Concept = "role_in_transaction"
	PaymentServiceUser       Concept = "payment_service_user"
	TransactionType          Concept = "transaction_type"
	RemoteInitiation         Concept = "remote_initiation"
	Contactless              Concept = "contactless"
	PaymentType              Concept = "payment_type"
	CardFunction             Concept = "card_function"
	EMoneyFunction           Concept = "e_money_function"
	ContactlessFunction      Concept = "contactless_function"
	PaymentScheme            Concept = "payment_scheme"
	CardType                 Concept = "card_type"
	InitiationChannel        Concept = "initiation_channel"
	PispInitiatedTransaction Concept = "pisp_initiated_transaction"
	QuantityItem             Concept = "quantity_item"
	TypeOfAccount            Concept = "type_of_account"
	TerminalFunction         Concept = "terminal_function"
	ConcentrationRatioType   Concept = "concentration_ratio_type"
	PaymentSystem            Concept = "payment_system"
	ParticipantSector        Concept = "participant_sector"
	ParticipantType          Concept = "participant_type"
	PaymentSystemMetric      Concept = "payment_system_metric"
)

// Codes referenced by business rules.
const (
	RolePayersPSP = "1"
	RolePayeesPSP = "2"

	Remote    = "R"
	NonRemote = "NR"

	UserNonMFIExclPrivatePersons = "NMFIXP"

	ContactlessOther = "OTH"

	ChannelNonElectronic = "1000"
	ChannelFileBatch     = "2100"
	ChannelOnlineBanking = "2210"
	ChannelECommerce     = "2211"
	ChannelMerchant      = "2212"
	ChannelOtherOnline   = "2213"
	ChannelTerminal      = "2220"
	ChannelATM           = "2221"
	ChannelPOSTerminal   = "2222"
	ChannelMobilePayment = "2230"
	ChannelP2PMobile     = "2231"
	ChannelOtherMobile   = "2232"
	ChannelPISP          = "5000"

	SchemeMastercard = "PCS_MCRD"
	SchemeSEPA       = "CTS_SEPA"
	SchemeSEPAInst   = "CTS_SEPAI"

	PaymentTypeCardPurchaseIssuer = "CPI"
	PaymentTypeCardPurchaseAcq    = "CPA"
	PaymentTypeATMWithdrawal      = "CW0"
	PaymentTypeATMDeposit         = "CD0"

	CardFunctionEMoney            = "CF3"
	CardFunctionCashEMoney        = "CF5"
	CardFunctionPaymentCashEMoney = "CF6"
)

type codeDefinition struct {
	value       string
	description string
}

type domainDefinition struct {
	concept Concept
	numeric bool
	codes   []codeDefinition
}

var domainDefinitions = []domainDefinition{
	{concept: Environment, codes: []codeDefinition{
		{"T", "Test"},
		{"P", "Production"},
	}},
	{concept: RoleInTransaction, numeric: true, codes: []codeDefinition{
		{RolePayersPSP, "Payer's PSP"},
		{RolePayeesPSP, "Payee's PSP"},
	}},
	{concept: PaymentServiceUser, codes: []codeDefinition{
		{"P", "Private persons"},
		{"NMFIXP", "Non-MFI excl. private persons"},
		{"MFI", "Monetary financial institutions"},
	}},
	{concept: TransactionType, codes: []codeDefinition{
		{"PUR", "Purchase"},
		{"RET", "Returns"},
		{"ORC", "Original credits"},
		{"P2P", "P2P Card-to-card"},
		{"REV", "Reversals"},
		{"CHB", "Charge-back"},
		{"REP", "Representments"},
	}},
	{concept: RemoteInitiation, codes: []codeDefinition{
		{Remote, "Initiated via remote channel"},
		{NonRemote, "Initiated via non-remote channel"},
	}},
	{concept: Contactless, codes: []codeDefinition{
		{"CNT", "Contact chip"},
		{"CNTL1", "Contactless chip NFC"},
		{"MAG", "Magstripe"},
		{ContactlessOther, "Other"},
	}},
	{concept: PaymentType, codes: []codeDefinition{
		{"CT0", "Credit transfer"},
		{"CT1", "Instant credit transfer"},
		{"DD", "Direct debits"},
		{"CPI", "Card-based payment transactions issuer"},
		{"CPA", "Card-based payment transactions acquirer"},
		{"CWI", "ATM cash withdrawal issuer"},
		{"CW0", "ATM cash withdrawal"},
		{"CD0", "ATM cash deposits"},
		{"CADVI", "Cash advance at POS terminals issuer"},
		{"CADVA", "Cash advance at POS terminals acquirer"},
		{"EMP0", "E-money payment transactions"},
		{"MREM", "Money remittance"},
		{"PI", "Payment initiation services"},
		{"CWOTC", "OTC cash withdrawals"},
		{"CDOTC", "OTC cash deposits"},
	}},
	{concept: CardFunction, codes: []codeDefinition{
		{"CF1", "Payment function (except e-money function only)"},
		{"CF2", "Cash function"},
		{"CF3", "E-money function"},
		{"CF4", "Payment and cash function"},
		{"CF5", "Cash and e-money function"},
		{"CF6", "Payment, Cash and e-money function"},
	}},
	{concept: EMoneyFunction, numeric: true, codes: []codeDefinition{
		{"41", "Cards on which e-money can be stored directly"},
		{"42", "Cards that give access to e-money stored on an e-money account"},
	}},
	{concept: ContactlessFunction, numeric: true, codes: []codeDefinition{
		{"10", "Contact function"},
		{"11", "Contactless function"},
		{"12", "Both contact and contactless function"},
	}},
	{concept: PaymentScheme, codes: []codeDefinition{
		{"PCS_MCRD", "Mastercard"},
		{"PCS_VISA", "VISA"},
		{"PCS_CUP", "Union Pay"},
		{"PCS_JCB", "JCB"},
		{"PCS_AMEX", "American Express"},
		{"PCS_DINE", "Diners and Discover"},
		{"PCS_OTH", "Other card schemes"},
		{"CTS_NPCI", "NPC Instant credit transfer scheme"},
		{"CTS_SEPAI", "The SEPA instant credit transfer (SCT Inst)"},
		{"CTS_NPCOLO", "NPC One-leg out instant credit transfer"},
		{"CTS_EPCOLO", "EPC One-leg out instant credit transfer"},
		{"CTS_OTHSIP", "Other-Swish"},
		{"CTS_SEPA", "The SEPA Credit Transfer (SCT)"},
		{"CTS_NPC", "NPC Credit transfer"},
		{"CTS_OTHRIX", "Other - RIX RTGS"},
		{"CTS_OTHXB", "Other - Cross-border"},
		{"CTS_ONUS", "Other - On us"},
		{"CTS_OTHO", "Other-other"},
	}},
	{concept: CardType, numeric: true, codes: []codeDefinition{
		{"11", "Debit card"},
		{"111", "Debit card (only consumer card)"},
		{"12", "Delayed debit card"},
		{"13", "Credit card"},
		{"131", "Credit card (only consumer card)"},
		{"16", "Corporate cards"},
	}},
	{concept: InitiationChannel, numeric: true, codes: []codeDefinition{
		{"1000", "Non-electronic"},
		{"1200", "Paper-based form"},
		{"2100", "File/batch"},
		{"2200", "Single payment basis"},
		{"2210", "Online banking based"},
		{"2211", "E-commerce payments"},
		{"2212", "Merchant initiated payments"},
		{"2213", "Other online based payments"},
		{"2220", "Terminal"},
		{"2221", "ATM"},
		{"2222", "POS terminal"},
		{"2230", "Mobile payment solution"},
		{"2231", "P2P mobile payment solution"},
		{"2232", "Other mobile payment solutions"},
		{"2240", "E-money stored direct on a card"},
		{"2251", "E-money account accessed via a card"},
		{"2252", "E-money payment initiated from account other than through a card or mobile payment"},
		{"2270", "Recurring Swish"},
		{"3000", "Other"},
		{"5000", "PISP"},
	}},
	{concept: PispInitiatedTransaction, codes: []codeDefinition{
		{"ICT0", "Credit transfer"},
		{"ICT1", "Instant credit transfer"},
		{"OTH", "Other"},
	}},
	{concept: QuantityItem, codes: []codeDefinition{
		{"CARD", "Cards"},
		{"PA", "Payment accounts"},
		{"POS", "POS terminals"},
		{"EMT", "E-money card terminals"},
		{"ATM", "ATMs"},
	}},
	{concept: TypeOfAccount, codes: []codeDefinition{
		{"PA", "Payment account"},
		{"EMA", "E-money account"},
	}},
	{concept: TerminalFunction, numeric: true, codes: []codeDefinition{
		{"1", "Accepting e-money cards"},
		{"2", "Not accepting e-money cards"},
		{"3", "E-money cards loading and unloading"},
		{"4", "Accepting both e-money transactions and card loading/unloading"},
		{"5", "Cash withdrawals"},
		{"6", "Cash deposits"},
		{"7", "Credit transfers"},
		{"8", "Both cash withdrawals and -deposits"},
		{"9", "Both cash deposits and credit transfers"},
		{"10", "Both cash withdrawals and credit transfer"},
		{"11", "Both cash withdrawals, -deposits and credit transfers"},
	}},
	{concept: ConcentrationRatioType, numeric: true, codes: []codeDefinition{
		{"2", "Concentration ratio by value"},
		{"3", "Concentration ratio by volume"},
	}},
	{concept: PaymentSystem, codes: []codeDefinition{
		{"RIX", "RIX"},
		{"RIXI", "RIXInst"},
		{"BG", "Bankgirot"},
		{"DC", "Dataclearingen"},
	}},
	{concept: ParticipantSector, codes: []codeDefinition{
		{"S122C", "Credit institution"},
		{"S121", "Central bank"},
		{"S13", "General Government"},
		{"S125D1", "Clearing and settlement organisation"},
		{"S12P", "Other financial institutions"},
		{"SZP", "Other than general government, clearing and settlement organisations and other financial institutions"},
	}},
	{concept: ParticipantType, numeric: true, codes: []codeDefinition{
		{"1", "Direct participant"},
		{"2", "Indirect participant"},
	}},
	{concept: PaymentSystemMetric, codes: []codeDefinition{
		{"T", "Transactions per payment system"},
		{"C", "Concentration ratio for payment systems"},
		{"P", "Participants per payment system"},
	}},
}
