package entity

import "time"

// Contact statuses applied through the administrative workflow.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusConverted = "converted"
	ContactStatusClosed    = "closed"
)

// ServiceInterests enumerates the services a prospect can ask about.
var ServiceInterests = []string{
	"personal_styling",
	"wardrobe_audit",
	"color_analysis",
	"virtual_consultation",
	"corporate_training",
	"special_events",
}

// ConsultationTypes enumerates how a consultation can be held.
var ConsultationTypes = []string{"virtual", "in_person"}

// BudgetRanges enumerates the accepted budget brackets.
var BudgetRanges = []string{"under_500", "500_1000", "1000_2500", "2500_plus"}

// ContactStatuses enumerates the lifecycle tags for a submission.
var ContactStatuses = []string{
	ContactStatusNew,
	ContactStatusContacted,
	ContactStatusConverted,
	ContactStatusClosed,
}

// ContactSubmission represents one stored contact form submission.
type ContactSubmission struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone,omitempty"`
	ServiceInterest  string    `json:"service_interest"`
	ConsultationType string    `json:"consultation_type"`
	BudgetRange      string    `json:"budget_range"`
	Message          *string   `json:"message,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	Status           string    `json:"status"`
}
