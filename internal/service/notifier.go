package service

import "github.com/michellealmonte/marketing-api/internal/entity"

// Notifier dispatches transactional email after a record is durably stored.
// Implementations must not block and must never surface send failures to the
// request path.
type Notifier interface {
	NotifyContact(contact *entity.ContactSubmission)
	NotifyWelcome(email string)
}
