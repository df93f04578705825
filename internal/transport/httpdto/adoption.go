package httpdto

// CreateApplicationRequest is used for POST /v1/adoptions
type CreateApplicationRequest struct {
	PetID     string `json:"pet_id" binding:"required"`
	ShelterID string `json:"shelter_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

// DecideApplicationRequest is used for POST /v1/adoptions/:id/decision
type DecideApplicationRequest struct {
	Status string `json:"status" binding:"required"` // approved | rejected
	Notes  string `json:"notes,omitempty"`
}
