package domain

// Invoice is the display data for one rental's bill. It is derived on
// demand from the transaction, its car/customer joins and the payment
// ledger; rendering (PDF layout, currency formatting) is the caller's job.
type Invoice struct {
	TransactionID  string     `json:"transaction_id"`
	InvoiceNumber  string     `json:"invoice_number"`
	IssuedOn       string     `json:"issued_on"`
	Car            *Car       `json:"car,omitempty"`
	Customer       *Customer  `json:"customer,omitempty"`
	Dealer         *Dealer    `json:"dealer,omitempty"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	Breakdown      []LineItem `json:"breakdown"`
	Total          float64    `json:"total"`
	TotalPaid      float64    `json:"total_paid"`
	PendingBalance float64    `json:"pending_balance"`
	Payments       []Payment  `json:"payments"`
}
