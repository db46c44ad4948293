// Package mailer dispatches transactional email after records are stored.
// Delivery runs on a worker goroutine fed by a bounded queue, so a slow or
// failing SMTP server can never change the outcome of an HTTP request that
// already persisted its record.
package mailer

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/michellealmonte/marketing-api/internal/entity"
)

const defaultQueueSize = 64

type job struct {
	to  string
	msg Message
}

// Service queues and delivers notification email.
type Service struct {
	log    *zap.Logger
	sender Sender
	owner  string

	mu     sync.Mutex
	queue  chan job
	closed bool
	wg     sync.WaitGroup
}

// NewService starts the dispatch worker. ownerEmail receives the
// owner-notification copy of every contact submission.
func NewService(log *zap.Logger, sender Sender, ownerEmail string) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		log:    log,
		sender: sender,
		owner:  ownerEmail,
		queue:  make(chan job, defaultQueueSize),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// NotifyContact queues the owner notification and the submitter
// confirmation for a stored submission.
func (s *Service) NotifyContact(contact *entity.ContactSubmission) {
	s.enqueue(s.owner, NewContactNotification(contact))
	s.enqueue(contact.Email, &ContactConfirmation{Name: contact.Name})
}

// NotifyWelcome queues the welcome email for a new subscriber.
func (s *Service) NotifyWelcome(email string) {
	s.enqueue(email, &NewsletterWelcome{})
}

// Close stops accepting mail and waits for queued deliveries to finish, up
// to the context deadline.
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) enqueue(to string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.log.Warn("mailer closed, dropping message", zap.String("to", to), zap.String("subject", msg.Subject()))
		return
	}
	select {
	case s.queue <- job{to: to, msg: msg}:
	default:
		// Dropping beats blocking a request handler on a full queue.
		s.log.Warn("mail queue full, dropping message", zap.String("to", to), zap.String("subject", msg.Subject()))
	}
}

func (s *Service) run() {
	defer s.wg.Done()
	for j := range s.queue {
		if err := s.sender.Send(j.to, j.msg); err != nil {
			s.log.Error("email delivery failed",
				zap.String("to", j.to),
				zap.String("subject", j.msg.Subject()),
				zap.Error(err),
			)
			continue
		}
		s.log.Info("email delivered", zap.String("to", j.to), zap.String("subject", j.msg.Subject()))
	}
}
