package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/auth-service/internal/config"
	"github.com/mrlokans/auth-service/internal/database/users"
	"github.com/mrlokans/auth-service/internal/entities"
)

// Service implements the registration, login and session lookup
// workflows on top of the users repository.
type Service struct {
	repo   *users.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, cfg config.Auth) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
	}
}

// NormalizeEmail lowercases and trims an address before storage or
// lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the input, hashes the password and persists the
// user.
func (s *Service) Register(name, email, password string) (*entities.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	email = NormalizeEmail(email)
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	// Fast-path duplicate check. The unique index on email is the
	// authoritative guarantee; a racing insert is caught below.
	if _, err := s.repo.GetUserByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if !StrongPassword(password) {
		return nil, ErrWeakPassword
	}

	hash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(name, email, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login validates the credentials and issues a signed session token.
//
// The strength check runs against login input as well, mirroring
// registration: an account whose password predates a stricter policy is
// rejected here before the hash comparison.
func (s *Service) Login(email, password string) (*entities.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	email = NormalizeEmail(email)
	if !ValidEmail(email) {
		return nil, "", ErrInvalidEmail
	}
	if !StrongPassword(password) {
		return nil, "", ErrWeakPassword
	}

	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", err
	}

	token, err := SignToken(user.ID, []byte(s.config.JWTSecret), s.config.TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// CurrentUser resolves a session token to the user it was issued for.
// Every verification failure surfaces as ErrUnauthorized; the
// underlying cause is only logged.
func (s *Service) CurrentUser(tokenString string) (*entities.User, error) {
	userID, err := VerifyToken(tokenString, []byte(s.config.JWTSecret))
	if err != nil {
		log.Printf("Session verification failed: %v", err)
		return nil, ErrUnauthorized
	}

	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Token subject no longer exists, e.g. a deleted account.
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
