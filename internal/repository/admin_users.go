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
	// ErrAdminNotFound is returned when no admin matches the lookup criteria.
	ErrAdminNotFound = errors.New("admin user not found")
	// ErrAdminDuplicate is returned when username or email is already taken.
	ErrAdminDuplicate = errors.New("admin username or email already exists")
)

// AdminUsersRepository declares operations for back-office accounts.
type AdminUsersRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
	Create(ctx context.Context, username, email, passwordHash, role string) (*entity.AdminUser, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// PGXAdminUsersRepository implements AdminUsersRepository with pgx.
type PGXAdminUsersRepository struct {
	pool pgxPool
}

// NewPGXAdminUsersRepository instantiates an admin users repository.
func NewPGXAdminUsersRepository(pool *pgxpool.Pool) *PGXAdminUsersRepository {
	return &PGXAdminUsersRepository{pool: pool}
}

const adminColumns = `id, username, email, password_hash, role, created_at, last_login`

// FindByUsername fetches an admin account by username if present.
func (r *PGXAdminUsersRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE username = $1`, username)

	admin, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("query admin by username: %w", err)
	}
	return admin, nil
}

// Create inserts a new admin account.
func (r *PGXAdminUsersRepository) Create(ctx context.Context, username, email, passwordHash, role string) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO admin_users (username, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING `+adminColumns+`
    `, username, email, passwordHash, role)

	admin, err := scanAdmin(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%w: %v", ErrAdminDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return admin, nil
}

// TouchLastLogin records a successful login timestamp.
func (r *PGXAdminUsersRepository) TouchLastLogin(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE admin_users SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func scanAdmin(row pgx.Row) (*entity.AdminUser, error) {
	var (
		admin     entity.AdminUser
		lastLogin sql.NullTime
	)
	err := row.Scan(&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash, &admin.Role, &admin.CreatedAt, &lastLogin)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		ts := lastLogin.Time
		admin.LastLogin = &ts
	}
	return &admin, nil
}
