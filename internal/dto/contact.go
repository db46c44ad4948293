package dto

// ContactRequest is the payload accepted by POST /api/contact.
type ContactRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	ServiceInterest  string `json:"service_interest"`
	ConsultationType string `json:"consultation_type"`
	BudgetRange      string `json:"budget_range"`
	Message          string `json:"message,omitempty"`
}

// ContactCreatedResponse echoes the identifying fields of a stored submission.
type ContactCreatedResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateContactStatusRequest carries the new status for a submission.
type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}
