package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/ordersight/contracts-extractor/internal/contract"
)

// pricingHeader is the exact service-table header as it appears in the
// flattened text layer of a capacity order form.
const pricingHeader = "Edition Cloud Provider Region Capacity Credit Price Capacity Storage Pricing Capacity Storage Tier"

var envelopeIDRe = regexp.MustCompile(`(?i)Docusign Envelope ID:\s*([A-Z0-9-]+)`)

// Engine turns the extracted text of one order form into a contract.Record.
// Passes run in a fixed order and each writes only its own fields; a missing
// label leaves fields nil and is never an error.
type Engine struct {
	log *slog.Logger
}

func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log}
}

// ExtractContract runs all passes over text. filename is recorded verbatim.
func (e *Engine) ExtractContract(filename, text string) *contract.Record {
	rec := contract.NewRecord(filename)
	e.populateCustomerDetails(rec, text)
	e.populateSubscriptionDetails(rec, text)
	e.populatePaymentTerms(rec, text)
	e.populateServiceDetails(rec, text)
	e.populateMetadata(rec, text)
	return rec
}

func (e *Engine) populateCustomerDetails(rec *contract.Record, text string) {
	if block, ok := ExtractBlock(text, "Customer (Ship To)", "Subscription Term Start Date"); ok {
		lines := CleanLines(block)
		if len(lines) > 0 {
			rec.CustomerName = &lines[0]
			if len(lines) > 1 {
				addr := strings.Join(lines[1:], "\n")
				rec.CustomerAddress = &addr
			}
		}
	}

	if block, ok := ExtractBlock(text, "Customer Billing Address", "Billing Email"); ok {
		if lines := CleanLines(block); len(lines) > 0 {
			addr := strings.Join(lines, "\n")
			rec.BillingAddress = &addr
		}
	}

	if v, ok := SearchLabeledLine(text, "Billing Email"); ok {
		rec.BillingEmail = &v
	}
}

func (e *Engine) populateSubscriptionDetails(rec *contract.Record, text string) {
	if v, ok := SearchLabeledLine(text, "Subscription Term Start Date"); ok {
		if t := ParseDate(v); t != nil {
			rec.SubscriptionTermStartDate = contract.ParsedDate(*t)
		} else {
			// Keep the raw text rather than dropping the value.
			rec.SubscriptionTermStartDate = contract.RawDate(v)
			e.log.Debug("engine.date.unparsed", "value", v)
		}
	}

	// "Start" skip keeps this from matching the start-date label above.
	if v, ok := SearchLabeledLine(text, "Subscription Term", "Start"); ok {
		rec.SubscriptionTermMonths = FirstInt(v)
	}

	if v, ok := SearchLabeledLine(text, "Capacity", "Commitment.", "for", "order"); ok {
		rec.CapacityCurrency, rec.CapacityAmount = ParseCurrencyAmount(v)
	}

	if v, ok := SearchLabeledLine(text, "Credit Discount"); ok {
		rec.CreditDiscountPercent = FirstNumber(v)
	}

	if v, ok := SearchLabeledLine(text, "Snowflake Sales Representative"); ok {
		rec.SalesRepresentative = &v
	}

	if v, ok := SearchLabeledLine(text, "Order Form #"); ok {
		rec.OrderFormNumber = &v
	}
}

func (e *Engine) populatePaymentTerms(rec *contract.Record, text string) {
	if line, ok := SearchLine(text, "Total Capacity Fees Due"); ok {
		value := strings.TrimSpace(strings.Replace(line, "Total Capacity Fees Due", "", 1))
		// The on-demand column may follow after a visual gap; only the
		// segment before it carries the capacity fee figure.
		if i := strings.Index(value, "  "); i >= 0 {
			value = strings.TrimSpace(value[:i])
		}
		rec.TotalCapacityFeesCurrency, rec.TotalCapacityFeesAmount = ParseCurrencyAmount(value)
	}

	if line, ok := SearchLine(text, "Payment Terms"); ok {
		value := strings.TrimSpace(strings.Replace(line, "Payment Terms", "", 1))
		rec.CapacityPaymentTerms, rec.OnDemandPaymentTerms = SplitColumnPair(value, false)
	}

	if line, ok := SearchLine(text, "Billing Frequency"); ok {
		value := strings.TrimSpace(strings.Replace(line, "Billing Frequency", "", 1))
		rec.CapacityBillingFrequency, rec.OnDemandBillingFrequency = SplitColumnPair(value, true)
	}
}

func (e *Engine) populateServiceDetails(rec *contract.Record, text string) {
	lines := CleanLines(text)
	headerIndex := -1
	for i, line := range lines {
		if line == pricingHeader {
			headerIndex = i
			break
		}
	}
	if headerIndex < 0 || headerIndex+1 >= len(lines) {
		return
	}

	tokens := strings.Fields(lines[headerIndex+1])
	if len(tokens) < 7 {
		return
	}

	rec.Edition = &tokens[0]
	rec.CloudProvider = &tokens[1]
	rec.Region = &tokens[2]
	rec.CapacityCreditPriceCurrency = &tokens[3]
	rec.CapacityCreditPrice = ParseFloat(tokens[4])
	rec.CapacityStorageCurrency = &tokens[5]
	rec.CapacityStoragePrice = ParseFloat(tokens[6])
	if len(tokens) > 7 {
		tier := strings.Join(tokens[7:], " ")
		rec.CapacityStorageTier = &tier
	}
}

func (e *Engine) populateMetadata(rec *contract.Record, text string) {
	if m := envelopeIDRe.FindStringSubmatch(text); m != nil {
		rec.DocuSignEnvelopeID = &m[1]
	}
}
