package handler

import (
	"context"
	"time"

	"github.com/michellealmonte/marketing-api/internal/entity"
	"github.com/michellealmonte/marketing-api/internal/repository"
)

type stubContactsRepo struct {
	created   *repository.NewContact
	contact   *entity.ContactSubmission
	contacts  []entity.ContactSubmission
	affected  bool
	createErr error
	listErr   error
	updateErr error
}

func (s *stubContactsRepo) Create(_ context.Context, data repository.NewContact) (*entity.ContactSubmission, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &data
	contact := &entity.ContactSubmission{
		ID:               42,
		Name:             data.Name,
		Email:            data.Email,
		Phone:            data.Phone,
		ServiceInterest:  data.ServiceInterest,
		ConsultationType: data.ConsultationType,
		BudgetRange:      data.BudgetRange,
		Message:          data.Message,
		CreatedAt:        time.Now(),
		Status:           entity.ContactStatusNew,
	}
	s.contact = contact
	return contact, nil
}

func (s *stubContactsRepo) List(context.Context) ([]entity.ContactSubmission, error) {
	return s.contacts, s.listErr
}

func (s *stubContactsRepo) FindByID(context.Context, int64) (*entity.ContactSubmission, error) {
	if s.contact == nil {
		return nil, repository.ErrContactNotFound
	}
	return s.contact, nil
}

func (s *stubContactsRepo) UpdateStatus(_ context.Context, _ int64, status string) (bool, error) {
	if s.updateErr != nil {
		return false, s.updateErr
	}
	if s.affected && s.contact != nil {
		s.contact.Status = status
	}
	return s.affected, nil
}

type stubNewsletterRepo struct {
	sub            *entity.NewsletterSubscription
	subs           []entity.NewsletterSubscription
	affected       bool
	subscribeErr   error
	unsubscribeErr error
	listErr        error
}

func (s *stubNewsletterRepo) Subscribe(_ context.Context, email string) (*entity.NewsletterSubscription, error) {
	if s.subscribeErr != nil {
		return nil, s.subscribeErr
	}
	sub := &entity.NewsletterSubscription{
		ID:           7,
		Email:        email,
		SubscribedAt: time.Now(),
		Status:       entity.SubscriptionStatusActive,
	}
	s.sub = sub
	return sub, nil
}

func (s *stubNewsletterRepo) Unsubscribe(context.Context, string) (bool, error) {
	return s.affected, s.unsubscribeErr
}

func (s *stubNewsletterRepo) ListActive(context.Context) ([]entity.NewsletterSubscription, error) {
	return s.subs, s.listErr
}

type stubAdminsRepo struct {
	admin   *entity.AdminUser
	findErr error
}

func (s *stubAdminsRepo) FindByUsername(context.Context, string) (*entity.AdminUser, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.admin, nil
}

func (s *stubAdminsRepo) Create(context.Context, string, string, string, string) (*entity.AdminUser, error) {
	return nil, repository.ErrAdminDuplicate
}

func (s *stubAdminsRepo) TouchLastLogin(context.Context, int64) error {
	return nil
}
