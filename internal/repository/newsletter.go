package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/michellealmonte/marketing-api/internal/entity"
)

var (
	// ErrDuplicateEmail signals a subscribe attempt for an address that
	// already has a row, regardless of its current status.
	ErrDuplicateEmail = errors.New("email already subscribed")
	// ErrSubscriberNotFound signals an unsubscribe for an unknown address.
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// NewsletterRepository describes persistence operations for newsletter
// subscriptions.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error)
	Unsubscribe(ctx context.Context, email string) (bool, error)
	ListActive(ctx context.Context) ([]entity.NewsletterSubscription, error)
}

// PGXNewsletterRepository implements NewsletterRepository with pgx.
type PGXNewsletterRepository struct {
	pool pgxPool
}

// NewPGXNewsletterRepository instantiates a newsletter repository.
func NewPGXNewsletterRepository(pool *pgxpool.Pool) *PGXNewsletterRepository {
	return &PGXNewsletterRepository{pool: pool}
}

const subscriberColumns = `id, email, subscribed_at, status, unsubscribed_at`

// Subscribe inserts a new active subscription. Uniqueness is enforced by the
// store constraint so concurrent subscribes for the same address cannot race
// past an application-level pre-check.
func (r *PGXNewsletterRepository) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO newsletter_subscribers (email)
        VALUES ($1)
        RETURNING `+subscriberColumns+`
    `, email)

	sub, err := scanSubscription(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateEmail, pgErr)
		}
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}
	return sub, nil
}

// Unsubscribe flips the subscription status and reports whether a row was
// affected. Rows are never deleted.
func (r *PGXNewsletterRepository) Unsubscribe(ctx context.Context, email string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `
        UPDATE newsletter_subscribers
        SET status = $1, unsubscribed_at = NOW()
        WHERE email = $2
    `, entity.SubscriptionStatusUnsubscribed, email)
	if err != nil {
		return false, fmt.Errorf("unsubscribe email: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListActive returns all subscriptions whose status is active.
func (r *PGXNewsletterRepository) ListActive(ctx context.Context) ([]entity.NewsletterSubscription, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+subscriberColumns+`
        FROM newsletter_subscribers
        WHERE status = $1
        ORDER BY subscribed_at DESC
    `, entity.SubscriptionStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active subscribers: %w", err)
	}
	defer rows.Close()

	var subs []entity.NewsletterSubscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber row: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscribers: %w", err)
	}
	return subs, nil
}

func scanSubscription(row pgx.Row) (*entity.NewsletterSubscription, error) {
	var (
		sub            entity.NewsletterSubscription
		unsubscribedAt sql.NullTime
	)
	if err := row.Scan(&sub.ID, &sub.Email, &sub.SubscribedAt, &sub.Status, &unsubscribedAt); err != nil {
		return nil, err
	}
	if unsubscribedAt.Valid {
		ts := unsubscribedAt.Time
		sub.UnsubscribedAt = &ts
	}
	return &sub, nil
}
