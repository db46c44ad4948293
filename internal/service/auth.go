package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/michellealmonte/marketing-api/internal/auth"
	"github.com/michellealmonte/marketing-api/internal/repository"
)

// ErrInvalidCredentials is returned for unknown usernames and wrong passwords
// alike, so callers cannot probe for valid accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates admin credential validation and token issuance.
type AuthService struct {
	admins repository.AdminUsersRepository
	jwt    *auth.JWTManager
	log    *zap.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(admins repository.AdminUsersRepository, jwtManager *auth.JWTManager, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{admins: admins, jwt: jwtManager, log: log}
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(strconv.FormatInt(admin.ID, 10), admin.Email, admin.Role)
	if err != nil {
		return "", err
	}

	// Last-login bookkeeping must not fail the login.
	if err := s.admins.TouchLastLogin(ctx, admin.ID); err != nil {
		s.log.Warn("record last login failed", zap.Int64("admin_id", admin.ID), zap.Error(err))
	}

	return token, nil
}
