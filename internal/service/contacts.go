package service

import (
	"context"

	"github.com/michellealmonte/marketing-api/internal/dto"
	"github.com/michellealmonte/marketing-api/internal/entity"
	"github.com/michellealmonte/marketing-api/internal/repository"
)

// ContactsService coordinates validation, persistence and notification for
// contact form submissions.
type ContactsService struct {
	contacts repository.ContactsRepository
	notifier Notifier
}

// NewContactsService constructs a ContactsService.
func NewContactsService(contacts repository.ContactsRepository, notifier Notifier) *ContactsService {
	return &ContactsService{contacts: contacts, notifier: notifier}
}

// Submit validates and stores a submission, then hands the stored record to
// the notifier. Notification is fire-and-forget: once the insert commits the
// submission succeeds regardless of email delivery.
func (s *ContactsService) Submit(ctx context.Context, req dto.ContactRequest) (*entity.ContactSubmission, error) {
	data, err := ValidateContact(req)
	if err != nil {
		return nil, err
	}

	contact, err := s.contacts.Create(ctx, data)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyContact(contact)
	}
	return contact, nil
}

// List returns all submissions, newest first.
func (s *ContactsService) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	return s.contacts.List(ctx)
}

// UpdateStatus validates the status enum and applies it. The store itself
// accepts any status string, so the check lives here.
func (s *ContactsService) UpdateStatus(ctx context.Context, id int64, status string) (*entity.ContactSubmission, error) {
	if err := ValidateContactStatus(status); err != nil {
		return nil, err
	}

	affected, err := s.contacts.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, repository.ErrContactNotFound
	}
	return s.contacts.FindByID(ctx, id)
}
