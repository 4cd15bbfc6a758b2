package domain

type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	// Opaque references to uploaded document images.
	LicenseImage string `json:"license_image,omitempty"`
	IDProofImage string `json:"id_proof_image,omitempty"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}
