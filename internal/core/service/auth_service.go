package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spendwise/expense-system/internal/core/domain"
	"github.com/spendwise/expense-system/internal/core/ports"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// SessionRevoker abstracts the revoked-token store (Redis). Revoked token
// ids are rejected by the auth middleware until the token would have expired
// anyway.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService implements registration, login, and logout.
type AuthService struct {
	repo      ports.UserRepository
	sessions  SessionRevoker
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, sessions SessionRevoker, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a customer account. Self-registration never yields an
// admin; admins are created through the user management service.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if err := validateCredentials(username, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	})
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the token id for its remaining lifetime. An already-expired
// token needs no revocation entry.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return s.sessions.Revoke(ctx, tokenID, ttl)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"jti":      newTokenID(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newTokenID returns a random 128-bit hex token id for revocation tracking.
func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}

func validateCredentials(username, email, password string) error {
	if len(username) < minUsernameLen || len(password) < minPasswordLen {
		return domain.ErrInvalidCredentials
	}
	// Full address validation happens at the transport layer; this guards
	// direct service callers against obviously broken input.
	if !strings.Contains(email, "@") {
		return domain.ErrInvalidCredentials
	}
	return nil
}
