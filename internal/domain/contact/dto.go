package contact

// SubmitMessageRequest is the public contact form payload.
type SubmitMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// UpdateStatusRequest moves an inquiry through triage.
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=new read resolved"`
}
