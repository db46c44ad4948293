package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/michellealmonte/marketing-api/internal/entity"
)

// ErrContactNotFound is returned when no submission matches the lookup id.
var ErrContactNotFound = errors.New("contact submission not found")

// NewContact carries the validated fields for a new submission. Identity,
// created_at and status are assigned by the store.
type NewContact struct {
	Name             string
	Email            string
	Phone            *string
	ServiceInterest  string
	ConsultationType string
	BudgetRange      string
	Message          *string
}

// ContactsRepository describes persistence operations for contact submissions.
type ContactsRepository interface {
	Create(ctx context.Context, data NewContact) (*entity.ContactSubmission, error)
	List(ctx context.Context) ([]entity.ContactSubmission, error)
	FindByID(ctx context.Context, id int64) (*entity.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
}

// PGXContactsRepository implements ContactsRepository with pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository instantiates a contacts repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

const contactColumns = `id, name, email, phone, service_interest, consultation_type, budget_range, message, created_at, status`

// Create inserts a new submission and returns it with the assigned id,
// created_at and defaulted status.
func (r *PGXContactsRepository) Create(ctx context.Context, data NewContact) (*entity.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO contacts (name, email, phone, service_interest, consultation_type, budget_range, message)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+contactColumns+`
    `, data.Name, data.Email, data.Phone, data.ServiceInterest, data.ConsultationType, data.BudgetRange, data.Message)

	contact, err := scanContact(row)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return contact, nil
}

// List returns all submissions ordered by creation date (desc). Intended for
// low-volume administrative use; no pagination.
func (r *PGXContactsRepository) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []entity.ContactSubmission
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, *contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

// FindByID retrieves one submission by identifier.
func (r *PGXContactsRepository) FindByID(ctx context.Context, id int64) (*entity.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)

	contact, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("query contact by id: %w", err)
	}
	return contact, nil
}

// UpdateStatus sets the status column and reports whether a row was affected.
// The store accepts any status string; enum checks are the caller's
// responsibility.
func (r *PGXContactsRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE contacts SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, fmt.Errorf("update contact status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanContact(row pgx.Row) (*entity.ContactSubmission, error) {
	var (
		contact entity.ContactSubmission
		phone   sql.NullString
		message sql.NullString
	)
	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&phone,
		&contact.ServiceInterest,
		&contact.ConsultationType,
		&contact.BudgetRange,
		&message,
		&contact.CreatedAt,
		&contact.Status,
	)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		val := phone.String
		contact.Phone = &val
	}
	if message.Valid {
		val := message.String
		contact.Message = &val
	}
	return &contact, nil
}
