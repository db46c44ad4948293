package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/michellealmonte/marketing-api/internal/entity"
)

type stubPool struct {
	queryRowFunc func(ctx context.Context, query string, args ...any) pgx.Row
	queryFunc    func(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	execFunc     func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	beginTxFunc  func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

func (s *stubPool) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if s.queryRowFunc != nil {
		return s.queryRowFunc(ctx, query, args...)
	}
	return &stubRow{scan: func(dest ...any) error { return nil }}
}

func (s *stubPool) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	if s.queryFunc != nil {
		return s.queryFunc(ctx, query, args...)
	}
	return nil, errors.New("query not implemented")
}

func (s *stubPool) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if s.execFunc != nil {
		return s.execFunc(ctx, query, args...)
	}
	return pgconn.CommandTag{}, errors.New("exec not implemented")
}

func (s *stubPool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if s.beginTxFunc != nil {
		return s.beginTxFunc(ctx, txOptions)
	}
	return nil, errors.New("begin tx not implemented")
}

type stubRow struct {
	scan func(dest ...any) error
}

func (s *stubRow) Scan(dest ...any) error {
	if s.scan != nil {
		return s.scan(dest...)
	}
	return nil
}

type stubRows struct {
	scans []func(dest ...any) error
	idx   int
	err   error
}

func (s *stubRows) Close() {}

func (s *stubRows) Err() error { return s.err }

func (s *stubRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (s *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (s *stubRows) Next() bool {
	if s.err != nil {
		return false
	}
	if s.idx < len(s.scans) {
		s.idx++
		return true
	}
	return false
}

func (s *stubRows) Scan(dest ...any) error {
	if s.idx == 0 || s.idx > len(s.scans) {
		return errors.New("scan called out of order")
	}
	return s.scans[s.idx-1](dest...)
}

func (s *stubRows) Values() ([]any, error) { return nil, nil }

func (s *stubRows) RawValues() [][]byte { return nil }

func (s *stubRows) Conn() *pgx.Conn { return nil }

func scanStoredContact(id int64, name, email, status string, created time.Time) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int64) = id
		*dest[1].(*string) = name
		*dest[2].(*string) = email
		*dest[4].(*string) = "color_analysis"
		*dest[5].(*string) = "virtual"
		*dest[6].(*string) = "500_1000"
		*dest[8].(*time.Time) = created
		*dest[9].(*string) = status
		return nil
	}
}

func TestPGXContactsRepository_Create(t *testing.T) {
	created := time.Now()
	repo := &PGXContactsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: scanStoredContact(7, "Jane Doe", "jane@example.com", entity.ContactStatusNew, created)}
		},
	}}

	contact, err := repo.Create(context.Background(), NewContact{
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		ServiceInterest:  "color_analysis",
		ConsultationType: "virtual",
		BudgetRange:      "500_1000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID != 7 || contact.Status != entity.ContactStatusNew {
		t.Fatalf("unexpected contact: %+v", contact)
	}
	if !contact.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at from store, got %s", contact.CreatedAt)
	}
	if contact.Phone != nil || contact.Message != nil {
		t.Fatalf("expected nil optional fields, got %+v", contact)
	}

	repo.pool = &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return errors.New("connection refused") }}
		},
	}
	if _, err := repo.Create(context.Background(), NewContact{}); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestPGXContactsRepository_List(t *testing.T) {
	repo := &PGXContactsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{
				scans: []func(dest ...any) error{
					scanStoredContact(2, "Recent", "recent@example.com", entity.ContactStatusNew, time.Now()),
					scanStoredContact(1, "Older", "older@example.com", entity.ContactStatusContacted, time.Now().Add(-time.Hour)),
				},
			}, nil
		},
	}}

	contacts, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 2 || contacts[0].ID != 2 || contacts[1].Status != entity.ContactStatusContacted {
		t.Fatalf("unexpected contacts: %+v", contacts)
	}
}

func TestPGXContactsRepository_FindByID(t *testing.T) {
	repo := &PGXContactsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: scanStoredContact(3, "Jane Doe", "jane@example.com", entity.ContactStatusContacted, time.Now())}
		},
	}}

	contact, err := repo.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contact.ID != 3 || contact.Status != entity.ContactStatusContacted {
		t.Fatalf("unexpected contact: %+v", contact)
	}

	repo.pool = &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	if _, err := repo.FindByID(context.Background(), 99); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestPGXContactsRepository_UpdateStatus(t *testing.T) {
	repo := &PGXContactsRepository{pool: &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		},
	}}

	affected, err := repo.UpdateStatus(context.Background(), 3, entity.ContactStatusContacted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !affected {
		t.Fatalf("expected affected row")
	}

	repo.pool = &stubPool{
		execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		},
	}
	affected, err = repo.UpdateStatus(context.Background(), 99, entity.ContactStatusClosed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected {
		t.Fatalf("expected no affected row for unknown id")
	}
}
