package schema

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-paystat/internal/catalog"
)

// Field names referenced by business rules.
const (
	fieldPaymentType          = "payment_type"
	fieldReportedPaymentType  = "reported_payment_type"
	fieldRole                 = "role_in_transaction"
	fieldPaymentServiceUser   = "payment_service_user"
	fieldSNI                  = "sni_code"
	fieldInitiationChannel    = "initiation_channel"
	fieldRemoteInitiation     = "remote_initiation"
	fieldPaymentScheme        = "payment_scheme"
	fieldTransactionCurrency  = "transaction_currency"
	fieldAccountValue         = "account_value"
	fieldAccountCurrency      = "account_currency"
	fieldContactless          = "contactless"
	fieldTransactionType      = "transaction_type"
	fieldTransactionInitiated = "transaction_initiated"
	fieldTransactionCleared   = "transaction_cleared"
	fieldTransactionDay       = "transaction_day"
	fieldTransactionTime      = "transaction_time"
	fieldMerchantLocation     = "merchant_location"
	fieldLocality             = "locality"
	fieldCardFunction         = "card_function"
	fieldEMoneyFunction       = "e_money_function"
)

const countrySweden = "SE"

// typeConsistency requires the item type to equal the type declared by the
// report header.
func typeConsistency(field, declared string) Rule {
	return Rule{
		Name:     "type_consistency",
		Fields:   []string{field},
		Values:   []string{field, declared},
		Violated: Differs(field, declared),
		Message:  fmt.Sprintf("Field %s is not the same as %s.", field, declared),
	}
}

// withinPeriod requires the date of field to lie in [date_from, date_to].
func withinPeriod(field string) Rule {
	return Rule{
		Name:     field + "_within_period",
		Fields:   []string{field, FieldDateFrom, FieldDateTo},
		Violated: OutsideRange(field, FieldDateFrom, FieldDateTo),
		Message:  fmt.Sprintf("Field %s is not between date_from and date_to.", field),
	}
}

func dateRangeOrder() Rule {
	return Rule{
		Name:     "date_range_order",
		Fields:   []string{FieldDateFrom, FieldDateTo},
		Violated: After(FieldDateFrom, FieldDateTo),
		Message:  "Field date_from must be the same or before date_to.",
	}
}

// payerOnly returns the pair of rules making field required for the payer's
// PSP and forbidden for the payee's PSP.
func payerOnly(field string) []Rule {
	label := strings.ToUpper(field[:1]) + field[1:]

	return []Rule{
		{
			Name:     field + "_required_for_payer",
			Fields:   []string{field, fieldRole},
			Violated: All(Absent(field), In(fieldRole, catalog.RolePayersPSP)),
			Message:  fmt.Sprintf("Field required. %s can not be missing when role_in_transaction is 1, payer's PSP.", label),
		},
		{
			Name:     field + "_forbidden_for_payee",
			Fields:   []string{field, fieldRole},
			Violated: All(Present(field), In(fieldRole, catalog.RolePayeesPSP)),
			Message:  fmt.Sprintf("%s should not be reported when role_in_transaction is 2, payee's PSP.", label),
		},
	}
}

func sniRules() []Rule {
	fields := []string{fieldSNI, fieldRole, fieldPaymentServiceUser}

	return []Rule{
		{
			Name:   "sni_code_required",
			Fields: fields,
			Violated: All(
				Absent(fieldSNI),
				In(fieldRole, catalog.RolePayeesPSP),
				In(fieldPaymentServiceUser, catalog.UserNonMFIExclPrivatePersons),
			),
			Message: "Field required. When role_in_transaction is 2, payee's PSP, and payment_service_user is " +
				"a non-MFI excl. private persons, sni_code can not be missing.",
		},
		{
			Name:   "sni_code_user",
			Fields: fields,
			Violated: All(
				Present(fieldSNI),
				In(fieldRole, catalog.RolePayeesPSP),
				NotIn(fieldPaymentServiceUser, catalog.UserNonMFIExclPrivatePersons),
			),
			Message: "Sni code should only be reported from the payee's PSP and when the payment_service_user is " +
				"a non-MFI excl. private persons.",
		},
		{
			Name:     "sni_code_forbidden_for_payer",
			Fields:   fields,
			Violated: All(Present(fieldSNI), In(fieldRole, catalog.RolePayersPSP)),
			Message:  "Sni code should not be reported from the payer's PSP.",
		},
	}
}

// notRemote forbids remote initiation for the given channels.
func notRemote(name, message string, channels ...string) Rule {
	return Rule{
		Name:     name,
		Fields:   []string{fieldInitiationChannel, fieldRemoteInitiation},
		Violated: All(In(fieldInitiationChannel, channels...), In(fieldRemoteInitiation, catalog.Remote)),
		Message:  message,
	}
}

// mustBeRemote requires remote initiation for the given channels.
func mustBeRemote(channels ...string) Rule {
	return Rule{
		Name:        "channel_requires_remote",
		Fields:      []string{fieldInitiationChannel, fieldRemoteInitiation},
		Violated:    All(In(fieldInitiationChannel, channels...), In(fieldRemoteInitiation, catalog.NonRemote)),
		Message:     "Transaction with initiation channel %s has to be initiated remotely.",
		MessageArgs: []string{fieldInitiationChannel},
	}
}

// euroOnly binds a credit transfer scheme to EUR.
func euroOnly(name, scheme, label string) Rule {
	return Rule{
		Name:     name,
		Fields:   []string{fieldPaymentScheme, fieldTransactionCurrency},
		Violated: All(In(fieldPaymentScheme, scheme), NotIn(fieldTransactionCurrency, "EUR")),
		Message:  fmt.Sprintf("Payments via %s have to be in transaction currency EUR.", label),
	}
}

// remoteChannelRules are shared by credit transfers and instant credit
// transfers.
func remoteChannelRules() []Rule {
	return []Rule{
		notRemote("terminal_not_remote", "Terminal initiated payments can not be done remotely.",
			catalog.ChannelTerminal),
		mustBeRemote(
			catalog.ChannelFileBatch, catalog.ChannelOnlineBanking, catalog.ChannelECommerce,
			catalog.ChannelOtherOnline, catalog.ChannelP2PMobile, catalog.ChannelOtherMobile, catalog.ChannelPISP,
		),
	}
}

// cardRules are shared by the issuer and acquirer card variants. purchase is
// the payment type that requires a transaction type.
func cardRules(purchase string) []Rule {
	return []Rule{
		mustBeRemote(catalog.ChannelECommerce, catalog.ChannelMerchant, catalog.ChannelMobilePayment),
		{
			Name:     "non_electronic_contactless",
			Fields:   []string{fieldInitiationChannel, fieldContactless},
			Violated: All(In(fieldInitiationChannel, catalog.ChannelNonElectronic), Not(In(fieldContactless, catalog.ContactlessOther))),
			Message:  "Non-electronic initiated payments should be reported with attribute contactless as 'OTH'.",
		},
		{
			Name:     "remote_contactless",
			Fields:   []string{fieldRemoteInitiation, fieldContactless},
			Violated: All(In(fieldRemoteInitiation, catalog.Remote), Present(fieldContactless)),
			Message:  "Field contactless should not be reported when the payment is initiated remotely.",
		},
		{
			Name:     "purchase_transaction_type",
			Fields:   []string{fieldPaymentType, fieldTransactionType},
			Violated: All(In(fieldPaymentType, purchase), Absent(fieldTransactionType)),
			Message:  "Card payments have to be reported with a transaction type.",
		},
		{
			Name:     "mastercard_transaction_initiated",
			Fields:   []string{fieldPaymentScheme, fieldTransactionInitiated},
			Violated: All(In(fieldPaymentScheme, catalog.SchemeMastercard), Absent(fieldTransactionInitiated)),
			Message:  "Field transaction_initiated can't be missing when payment scheme is Mastercard.",
		},
		{
			Name:     "cleared_after_initiated",
			Fields:   []string{fieldTransactionInitiated, fieldTransactionCleared},
			Violated: After(fieldTransactionInitiated, fieldTransactionCleared),
			Message:  "Field transaction_cleared must be the same or after transaction_initiated.",
		},
	}
}

func atmOwnerRules() []Rule {
	return []Rule{
		{
			Name:     "locality_required_in_sweden",
			Fields:   []string{fieldMerchantLocation, fieldLocality},
			Violated: All(In(fieldMerchantLocation, countrySweden), Absent(fieldLocality)),
			Message:  "When merchant_location is SE locality has to be reported.",
		},
		{
			Name:     "locality_only_in_sweden",
			Fields:   []string{fieldMerchantLocation, fieldLocality},
			Violated: All(Present(fieldLocality), NotIn(fieldMerchantLocation, countrySweden)),
			Message:  "Locality should not be reported when merchant location is not SE.",
		},
		{
			Name:     "withdrawal_from_payer",
			Fields:   []string{fieldPaymentType, fieldRole},
			Violated: All(In(fieldPaymentType, catalog.PaymentTypeATMWithdrawal), NotIn(fieldRole, catalog.RolePayersPSP)),
			Message:  "Cash withdrawals should be reported from the payer's PSP.",
		},
		{
			Name:     "deposit_from_payee",
			Fields:   []string{fieldPaymentType, fieldRole},
			Violated: All(In(fieldPaymentType, catalog.PaymentTypeATMDeposit), NotIn(fieldRole, catalog.RolePayeesPSP)),
			Message:  "Cash deposits should be reported from the payee's PSP.",
		},
	}
}

func eMoneyFunctionRules() []Rule {
	eMoneyCards := []string{catalog.CardFunctionEMoney, catalog.CardFunctionCashEMoney, catalog.CardFunctionPaymentCashEMoney}

	return []Rule{
		{
			Name:     "e_money_function_required",
			Fields:   []string{fieldCardFunction, fieldEMoneyFunction},
			Violated: All(In(fieldCardFunction, eMoneyCards...), Absent(fieldEMoneyFunction)),
			Message:  "Attribute e-money function has to be reported when the card has e-money functions.",
		},
		{
			Name:     "e_money_function_forbidden",
			Fields:   []string{fieldCardFunction, fieldEMoneyFunction},
			Violated: All(NotIn(fieldCardFunction, eMoneyCards...), Present(fieldEMoneyFunction)),
			Message:  "Attribute e-money function should not be reported when the card hasn't e-money functions.",
		},
	}
}

func concat(groups ...[]Rule) []Rule {
	var out []Rule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
