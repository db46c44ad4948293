package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		phone VARCHAR(20),
		service_interest TEXT NOT NULL CHECK (service_interest IN (
			'personal_styling',
			'wardrobe_audit',
			'color_analysis',
			'virtual_consultation',
			'corporate_training',
			'special_events'
		)),
		consultation_type TEXT NOT NULL CHECK (consultation_type IN ('virtual', 'in_person')),
		budget_range TEXT NOT NULL CHECK (budget_range IN ('under_500', '500_1000', '1000_2500', '2500_plus')),
		message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		status TEXT NOT NULL DEFAULT 'new'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_email ON contacts (email)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts (status)`,
	`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(150) NOT NULL UNIQUE,
		subscribed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'unsubscribed')),
		unsubscribed_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_newsletter_subscribers_status ON newsletter_subscribers (status)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(150) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin' CHECK (role IN ('admin', 'moderator')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	)`,
}

// Migrate applies the relational schema. Statements are idempotent so the
// command can run on every deploy.
//
// The contacts status column carries no CHECK constraint; the service layer
// owns the status enum.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
