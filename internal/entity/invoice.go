package entity

// InvoiceResult is the outcome of issuing a hosted invoice.
type InvoiceResult struct {
	InvoiceID  string `json:"invoice_id"`
	CustomerID string `json:"-"`
	URL        string `json:"url"`
}
