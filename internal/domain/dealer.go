package domain

type Dealer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address,omitempty"`
	IDProofImage string `json:"id_proof_image,omitempty"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
}
