package dto

type ContactRequest struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Email   string  `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"   validate:"omitempty,max=20"`
	Message string  `json:"message" validate:"required,max=2000"`
}

// ContactJobPayload is the queued form of an enquiry.
type ContactJobPayload struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
	Message    string  `json:"message"`
	ReceivedAt string  `json:"received_at"`
	RequestID  string  `json:"request_id,omitempty"`
}
