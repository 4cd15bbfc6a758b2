package domain

// MaintenanceRecord tracks one workshop visit. A record with no ReturnDate
// is considered ongoing.
type MaintenanceRecord struct {
	ID             string        `json:"id"`
	CarID          string        `json:"car_id"`
	WorkshopName   string        `json:"workshop_name"`
	WorkshopDetails string       `json:"workshop_details,omitempty"`
	PhoneNumber    string        `json:"phone_number,omitempty"`
	Date           string        `json:"date"`
	ReturnDate     string        `json:"return_date,omitempty"`
	Amount         float64       `json:"amount"`
	AmountPaid     float64       `json:"amount_paid"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	Description    string        `json:"description,omitempty"`
	Image          string        `json:"image,omitempty"`
	CreatedOn      string        `json:"created_on"`
	UpdatedOn      string        `json:"updated_on"`
}
