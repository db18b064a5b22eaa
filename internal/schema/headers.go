package schema

import "github.com/MKhiriev/go-paystat/internal/catalog"

// SchemaVersion is the only accepted value of the schema_version header
// field.
const SchemaVersion = "1.0"

// Header fields declaring the report type.
const (
	FieldReportedPaymentType         = fieldReportedPaymentType
	FieldReportedQuantityItem        = "reported_quantity_item"
	FieldReportedPaymentSystemMetric = "reported_payment_system_metric"
)

// Item fields carrying the item type.
const (
	FieldPaymentType         = fieldPaymentType
	FieldQuantityItem        = "quantity_item"
	FieldPaymentSystemMetric = "payment_system_metric"
)

const reporterIDPattern = `^[2-9][0-9]{5}-[0-9]{4}$`

func reportBase(d *definer) []FieldSpec {
	return []FieldSpec{
		Pattern("reporter_id", reporterIDPattern),
		Code("environment", d.full(catalog.Environment)),
		Timestamp("report_datetime"),
		Text("report_part").Optional(),
		Literal("schema_version", SchemaVersion),
	}
}

// datedHeader is the header of families reporting a date range.
func datedHeader(d *definer, name, family, scope string) *Variant {
	return newVariant(name, family,
		reportBase(d),
		[]FieldSpec{
			Day(FieldDateFrom),
			Day(FieldDateTo),
			Code(FieldReportedPaymentType, d.scoped(catalog.PaymentType, scope)),
		},
	).withRules(dateRangeOrder())
}

// periodHeader is the header of families reporting a single period end.
func periodHeader(d *definer, name, family string, end PeriodEnd, declared FieldSpec) *Variant {
	return newVariant(name, family,
		reportBase(d),
		[]FieldSpec{Period("period", end), declared},
	)
}
