package export

import (
	"bytes"
	"testing"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	report := domain.InvoiceReport{
		InvoiceID: "inv-1",
		Title:     "Sale Invoice",
		Business:  []domain.ReportField{{Key: "name", Label: "Business Name", Value: "Seller Ltd"}},
		Buyer:     []domain.ReportField{{Key: "name", Label: "Buyer Name", Value: "Acme"}},
		Meta:      []domain.ReportField{{Key: "invoiceNumber", Label: "Invoice #", Value: "INV-7"}},
		Columns:   []domain.ReportColumn{{Key: "description", Label: "Description"}, {Key: "totalItemValue", Label: "Total"}},
		Rows:      [][]string{{"Cement", "Rs. 1,234.50"}},
		Totals:    []domain.ReportField{{Key: "grandTotal", Label: "Grand Total", Value: "Rs. 1,234.50"}},
	}

	exporter := NewXLSXExporter()
	data, contentType, err := exporter.Export(report)

	require.NoError(t, err)
	assert.Equal(t, ContentTypeXLSX, contentType)
	assert.Equal(t, "xlsx", exporter.Extension())

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	// Title, seller, buyer and meta blocks, item table, totals; blank rows are dropped by GetRows.
	var flat [][]string
	for _, r := range rows {
		if len(r) > 0 {
			flat = append(flat, r)
		}
	}
	require.Len(t, flat, 10)
	assert.Equal(t, []string{"Sale Invoice"}, flat[0])
	assert.Equal(t, []string{"Business Name", "Seller Ltd"}, flat[2])
	assert.Equal(t, []string{"Description", "Total"}, flat[7])
	assert.Equal(t, []string{"Cement", "Rs. 1,234.50"}, flat[8])
	assert.Equal(t, []string{"Grand Total", "Rs. 1,234.50"}, flat[9])
}

func TestXLSXExporter_EmptySections(t *testing.T) {
	data, _, err := NewXLSXExporter().Export(domain.InvoiceReport{Title: "Credit Note"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Credit Note", title)
}
