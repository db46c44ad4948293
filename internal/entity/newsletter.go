package entity

import "time"

// Subscription statuses. A subscriber is never deleted, only flipped to
// unsubscribed.
const (
	SubscriptionStatusActive       = "active"
	SubscriptionStatusUnsubscribed = "unsubscribed"
)

// NewsletterSubscription represents one newsletter signup.
type NewsletterSubscription struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	Status         string     `json:"status"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}
