package domain

// StaffUser is a dashboard login. There is no self-signup; staff accounts
// are provisioned directly in the database.
type StaffUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	CreatedOn    string `json:"created_on"`
}
