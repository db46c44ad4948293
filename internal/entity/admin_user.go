package entity

import "time"

// Admin roles.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// AdminUser is a back-office account allowed to read submissions and manage
// their status.
type AdminUser struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
