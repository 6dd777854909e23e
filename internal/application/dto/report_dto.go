package dto

import "time"

// ReportRequest rango del reporte de ventas. Fechas en RFC 3339; vacías =
// mes en curso.
type ReportRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// ReportSummaryDTO totales agregados que alimentan el documento.
type ReportSummaryDTO struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	InvoiceCount  int       `json:"invoice_count"`
	ReceiptCount  int       `json:"receipt_count"`
	NetTotal      string    `json:"net_total"`      // formateado con la moneda de la empresa
	TaxTotal      string    `json:"tax_total"`
	GrandTotal    string    `json:"grand_total"`
	ReceiptsTotal string    `json:"receipts_total"`
}
