package service

import (
	"context"

	"github.com/michellealmonte/marketing-api/internal/entity"
	"github.com/michellealmonte/marketing-api/internal/repository"
)

// NewsletterService coordinates newsletter subscription operations.
type NewsletterService struct {
	subscribers repository.NewsletterRepository
	notifier    Notifier
}

// NewNewsletterService constructs a NewsletterService.
func NewNewsletterService(subscribers repository.NewsletterRepository, notifier Notifier) *NewsletterService {
	return &NewsletterService{subscribers: subscribers, notifier: notifier}
}

// Subscribe validates the address and inserts a new active subscription. A
// second subscribe for an existing address fails with ErrDuplicateEmail even
// when that address has unsubscribed; re-activation is deliberately not
// supported.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	normalized, err := ValidateNewsletterEmail(email)
	if err != nil {
		return nil, err
	}

	sub, err := s.subscribers.Subscribe(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyWelcome(sub.Email)
	}
	return sub, nil
}

// Unsubscribe validates the address and flips its status. Returns
// ErrSubscriberNotFound when the address has no subscription row.
func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	normalized, err := ValidateNewsletterEmail(email)
	if err != nil {
		return err
	}

	affected, err := s.subscribers.Unsubscribe(ctx, normalized)
	if err != nil {
		return err
	}
	if !affected {
		return repository.ErrSubscriberNotFound
	}
	return nil
}

// ListActive returns all active subscriptions, newest first.
func (s *NewsletterService) ListActive(ctx context.Context) ([]entity.NewsletterSubscription, error) {
	return s.subscribers.ListActive(ctx)
}
