package dto

// ExportReportResponse tells where an exported report was stored.
type ExportReportResponse struct {
	InvoiceID   string `json:"invoiceID"`
	Key         string `json:"key"`
	Location    string `json:"location"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}
