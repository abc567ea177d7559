package contract

import (
	"strconv"
	"time"
)

// FieldOrder is the single ordered schema for contract records. The CSV/XLSX
// header, Record.Row, and the extraction passes all key off this list; it is
// never duplicated elsewhere.
var FieldOrder = []string{
	"pdf_filename",
	"order_form_number",
	"customer_name",
	"customer_address",
	"subscription_term_start_date",
	"subscription_term_months",
	"capacity_currency",
	"capacity_amount",
	"credit_discount_percent",
	"sales_representative",
	"billing_address",
	"billing_email",
	"total_capacity_fees_currency",
	"total_capacity_fees_amount",
	"capacity_payment_terms",
	"on_demand_payment_terms",
	"capacity_billing_frequency",
	"on_demand_billing_frequency",
	"edition",
	"cloud_provider",
	"region",
	"capacity_credit_price_currency",
	"capacity_credit_price",
	"capacity_storage_currency",
	"capacity_storage_price",
	"capacity_storage_tier",
	"docu_sign_envelope_id",
}

// DateValue is a civil date, or the untouched source text when the source did
// not match any known layout. Keeping the raw text beats dropping the value.
type DateValue struct {
	Time time.Time
	Raw  string
}

func ParsedDate(t time.Time) *DateValue { return &DateValue{Time: t} }

func RawDate(s string) *DateValue { return &DateValue{Raw: s} }

func (d *DateValue) Parsed() bool { return d != nil && !d.Time.IsZero() }

// String renders parsed dates as ISO-8601 (YYYY-MM-DD) and unparsed values
// verbatim.
func (d *DateValue) String() string {
	if d == nil {
		return ""
	}
	if !d.Time.IsZero() {
		return d.Time.Format("2006-01-02")
	}
	return d.Raw
}

// Record holds the fields extracted from one order form. Optional fields are
// pointers; nil means the label was absent or its value failed to parse.
// A record starts with only the filename set, is populated by independent
// passes, and is not mutated after extraction finishes.
type Record struct {
	PDFFilename                 string
	OrderFormNumber             *string
	CustomerName                *string
	CustomerAddress             *string
	SubscriptionTermStartDate   *DateValue
	SubscriptionTermMonths      *int
	CapacityCurrency            *string
	CapacityAmount              *float64
	CreditDiscountPercent       *float64
	SalesRepresentative         *string
	BillingAddress              *string
	BillingEmail                *string
	TotalCapacityFeesCurrency   *string
	TotalCapacityFeesAmount     *float64
	CapacityPaymentTerms        *string
	OnDemandPaymentTerms        *string
	CapacityBillingFrequency    *string
	OnDemandBillingFrequency    *string
	Edition                     *string
	CloudProvider               *string
	Region                      *string
	CapacityCreditPriceCurrency *string
	CapacityCreditPrice         *float64
	CapacityStorageCurrency     *string
	CapacityStoragePrice        *float64
	CapacityStorageTier         *string
	DocuSignEnvelopeID          *string
}

func NewRecord(filename string) *Record {
	return &Record{PDFFilename: filename}
}

// Row renders every field in FieldOrder order. Absent fields render as empty
// strings so each row always has len(FieldOrder) cells.
func (r *Record) Row() []string {
	return []string{
		r.PDFFilename,
		strOrEmpty(r.OrderFormNumber),
		strOrEmpty(r.CustomerName),
		strOrEmpty(r.CustomerAddress),
		r.SubscriptionTermStartDate.String(),
		intOrEmpty(r.SubscriptionTermMonths),
		strOrEmpty(r.CapacityCurrency),
		floatOrEmpty(r.CapacityAmount),
		floatOrEmpty(r.CreditDiscountPercent),
		strOrEmpty(r.SalesRepresentative),
		strOrEmpty(r.BillingAddress),
		strOrEmpty(r.BillingEmail),
		strOrEmpty(r.TotalCapacityFeesCurrency),
		floatOrEmpty(r.TotalCapacityFeesAmount),
		strOrEmpty(r.CapacityPaymentTerms),
		strOrEmpty(r.OnDemandPaymentTerms),
		strOrEmpty(r.CapacityBillingFrequency),
		strOrEmpty(r.OnDemandBillingFrequency),
		strOrEmpty(r.Edition),
		strOrEmpty(r.CloudProvider),
		strOrEmpty(r.Region),
		strOrEmpty(r.CapacityCreditPriceCurrency),
		floatOrEmpty(r.CapacityCreditPrice),
		strOrEmpty(r.CapacityStorageCurrency),
		floatOrEmpty(r.CapacityStoragePrice),
		strOrEmpty(r.CapacityStorageTier),
		strOrEmpty(r.DocuSignEnvelopeID),
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intOrEmpty(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func floatOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
