package dto

// NewsletterRequest is the payload for subscribe and unsubscribe calls.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// SubscriptionResponse confirms the address a subscription applies to.
type SubscriptionResponse struct {
	Email string `json:"email"`
}
