package domain

type TransactionStatus string

const (
	TransactionStatusActive    TransactionStatus = "Active"
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusCancelled TransactionStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending      PaymentStatus = "Pending"
	PaymentStatusPaid         PaymentStatus = "Paid"
	PaymentStatusPayOnArrival PaymentStatus = "Pay on Arrival"
)

type PaymentType string

const (
	PaymentTypeCredit PaymentType = "Credit"
	PaymentTypeDebit  PaymentType = "Debit"
)

// Payment is one entry in a transaction's payment history. Credits increase
// the amount received, debits decrease it (refund or correction). Entries are
// append-only; they are never edited in place, only deleted by id.
type Payment struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Amount float64     `json:"amount"`
	Type   PaymentType `json:"type"`
	Medium string      `json:"medium,omitempty"`
	Notes  string      `json:"notes,omitempty"`
}

// LineItem is one row of a pricing breakdown, display-only.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Transaction is a rental. A cancelled transaction never counts toward
// overlap checks, status resolution, or pending-balance totals.
type Transaction struct {
	ID         string            `json:"id"`
	CarID      string            `json:"car_id"`
	CustomerID string            `json:"customer_id"`
	DealerID   string            `json:"dealer_id,omitempty"`
	StartDate  string            `json:"start_date"`
	EndDate    string            `json:"end_date"`
	Total      float64           `json:"total"`
	Status     TransactionStatus `json:"status"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	Payments   []Payment         `json:"payments"`
	// AmountPaid is the pre-migration single payment total, consulted only
	// when Payments is empty.
	AmountPaid   float64    `json:"amount_paid,omitempty"`
	Breakdown    []LineItem `json:"breakdown,omitempty"`
	DailyRate    float64    `json:"daily_rate,omitempty"`
	StartMileage int32      `json:"start_mileage,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedOn    string     `json:"created_on"`
	UpdatedOn    string     `json:"updated_on"`
}
