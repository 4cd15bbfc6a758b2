package domain

type RegisterEntryType string

const (
	RegisterEntryTypeEntry RegisterEntryType = "Entry"
	RegisterEntryTypeExit  RegisterEntryType = "Exit"
)

// RegisterEntry is one row of the entry/exit log. The register is
// append-only and separate from the rental ledger; an Exit entry is written
// as a side effect of creating a rental.
type RegisterEntry struct {
	ID        string            `json:"id"`
	CarID     string            `json:"car_id"`
	Name      string            `json:"name"`
	Type      RegisterEntryType `json:"type"`
	Timestamp string            `json:"timestamp"`
	Notes     string            `json:"notes,omitempty"`
}
