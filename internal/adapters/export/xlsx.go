package export

import (
	"fmt"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	portssvc "github.com/SscSPs/sales_tax_invoicing/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of Office Open XML workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheetName = "Invoice"

// XLSXExporter renders invoice reports as single-sheet Excel workbooks.
type XLSXExporter struct{}

// NewXLSXExporter creates an Excel report exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

var _ portssvc.ReportExporter = (*XLSXExporter)(nil)

func (e *XLSXExporter) Extension() string { return "xlsx" }

// Export lays the report out top to bottom: title, party and meta sections
// as label/value pairs, the item table, then totals.
func (e *XLSXExporter) Export(report domain.InvoiceReport) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	w := &sheetWriter{f: f, bold: bold, row: 1}
	w.line(bold, report.Title)
	w.skip()

	for _, section := range []struct {
		heading string
		fields  []domain.ReportField
	}{
		{"Seller", report.Business},
		{"Buyer", report.Buyer},
		{"Invoice", report.Meta},
	} {
		if len(section.fields) == 0 {
			continue
		}
		w.line(bold, section.heading)
		w.fields(section.fields)
		w.skip()
	}

	if len(report.Columns) > 0 {
		header := make([]string, len(report.Columns))
		for i, c := range report.Columns {
			header[i] = c.Label
		}
		w.line(bold, header...)
		for _, row := range report.Rows {
			w.line(0, row...)
		}
		w.skip()
	}

	w.fields(report.Totals)

	if w.err != nil {
		return nil, "", fmt.Errorf("failed to write report sheet: %w", w.err)
	}
	if err := f.SetColWidth(sheetName, "A", "Z", 18); err != nil {
		return nil, "", fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), ContentTypeXLSX, nil
}

// sheetWriter appends rows and keeps the first error.
type sheetWriter struct {
	f    *excelize.File
	bold int
	row  int
	err  error
}

func (w *sheetWriter) skip() { w.row++ }

func (w *sheetWriter) line(style int, values ...string) {
	if w.err != nil || len(values) == 0 {
		return
	}
	start, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		w.err = err
		return
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := w.f.SetSheetRow(sheetName, start, &cells); err != nil {
		w.err = err
		return
	}
	if style != 0 {
		end, _ := excelize.CoordinatesToCellName(len(values), w.row)
		w.err = w.f.SetCellStyle(sheetName, start, end, style)
	}
	w.row++
}

func (w *sheetWriter) fields(fields []domain.ReportField) {
	for _, fd := range fields {
		if w.err != nil {
			return
		}
		label, _ := excelize.CoordinatesToCellName(1, w.row)
		w.line(0, fd.Label, fd.Value)
		if w.err == nil {
			w.err = w.f.SetCellStyle(sheetName, label, label, w.bold)
		}
	}
}
