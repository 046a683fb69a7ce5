package domain

import "github.com/shopspring/decimal"

const reportDateLayout = "2006-01-02"

// ReportField is one labelled value of a report section.
type ReportField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReportColumn is one visible line-item column.
type ReportColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// InvoiceReport is an invoice rendered for display: only visible fields,
// monetary values already formatted.
type InvoiceReport struct {
	InvoiceID string          `json:"invoiceID"`
	Title     string          `json:"title"`
	Currency  CurrencyDisplay `json:"currency"`
	Business  []ReportField   `json:"business"`
	Buyer     []ReportField   `json:"buyer"`
	Meta      []ReportField   `json:"meta"`
	Columns   []ReportColumn  `json:"columns"`
	Rows      [][]string      `json:"rows"`
	Totals    []ReportField   `json:"totals"`
}

// BuildInvoiceReport lays inv out according to the sections of configKey.
func BuildInvoiceReport(inv Invoice, entity Entity, buyer Buyer, registry *FieldConfigRegistry, configKey string, formatter CurrencyFormatter) InvoiceReport {
	report := InvoiceReport{
		InvoiceID: inv.InvoiceID,
		Title:     string(inv.DocumentType),
		Currency:  formatter.Display(),
	}

	section := func(name string, value func(key string) string) []ReportField {
		visible := registry.VisibleFields(configKey, name)
		fields := make([]ReportField, 0, len(visible))
		for _, f := range visible {
			fields = append(fields, ReportField{Key: f.Key, Label: f.Label, Value: value(f.Key)})
		}
		return fields
	}

	report.Business = section(SectionBusiness, entity.fieldValue)
	report.Buyer = section(SectionBuyer, buyer.fieldValue)
	report.Meta = section(SectionMeta, inv.metaValue)

	totals := inv.Totals()
	report.Totals = section(SectionTotals, func(key string) string {
		return formatter.Format(totals.amount(key))
	})

	columns := registry.VisibleFields(configKey, SectionItems)
	report.Columns = make([]ReportColumn, len(columns))
	for i, c := range columns {
		report.Columns[i] = ReportColumn{Key: c.Key, Label: c.Label}
	}
	report.Rows = make([][]string, len(inv.Items))
	for i, item := range inv.Items {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = item.displayValue(FieldName(c.Key), formatter)
		}
		report.Rows[i] = row
	}
	return report
}

func (inv Invoice) metaValue(key string) string {
	switch key {
	case "invoiceNumber":
		return inv.InvoiceNumber
	case "date":
		if inv.InvoiceDate.IsZero() {
			return ""
		}
		return inv.InvoiceDate.Format(reportDateLayout)
	case "documentType":
		return string(inv.DocumentType)
	case "salesman":
		return inv.Salesman
	case "referenceNumber":
		return inv.ReferenceNumber
	}
	return ""
}

// displayValue renders one item column; placeholders render blank.
func (li LineItem) displayValue(f FieldName, formatter CurrencyFormatter) string {
	switch f {
	case FieldHSCode:
		return li.HSCode
	case FieldDescription:
		return li.Description
	case FieldSaleType:
		return StripPlaceholder(string(li.SaleType))
	case FieldUOM:
		return StripPlaceholder(li.UOM)
	case FieldRate:
		return StripPlaceholder(li.Rate)
	case FieldSROScheduleNo:
		return StripPlaceholder(li.SROScheduleNo)
	case FieldSROItemSerialNo:
		return StripPlaceholder(li.SROItemSerialNo)
	case FieldQuantity:
		return FormatGrouped(li.Quantity, 2)
	case FieldTotalItemValue:
		return formatter.Format(li.TotalItemValue)
	}
	if p := li.amountField(f); p != nil {
		return formatter.Format(*p)
	}
	return ""
}

func (t InvoiceTotals) amount(key string) decimal.Decimal {
	switch key {
	case "subtotal":
		return t.Subtotal
	case "totalSalesTax":
		return t.TotalSalesTax
	case "totalExtraTax":
		return t.TotalExtraTax
	case "totalFurtherTax":
		return t.TotalFurtherTax
	case "totalFED":
		return t.TotalFED
	case "totalTaxWithheld":
		return t.TotalTaxWithheld
	case "total236g":
		return t.Total236G
	case "total236h":
		return t.Total236H
	case "totalDiscount":
		return t.TotalDiscount
	case "totalOtherDiscount":
		return t.TotalOtherDiscount
	case "totalTradeDiscount":
		return t.TotalTradeDiscount
	case "grandTotal":
		return t.GrandTotal
	}
	return decimal.Zero
}
