package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hostbison-signup/internal/domain"
	"hostbison-signup/internal/repository"
	"hostbison-signup/internal/validation"
)

var (
	// ErrMissingFields indicates one or more required fields were absent or empty.
	ErrMissingFields = errors.New("all fields are required")
	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// UserService describes registration and listing operations.
type UserService interface {
	Register(ctx context.Context, candidate validation.Candidate) (*domain.User, error)
	ListRecent(ctx context.Context, limit int) ([]domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register validates the candidate, hashes its password, and persists the
// record. The pre-insert FindByEmail is only a fast path for the duplicate
// message; the unique constraint on the email column is the authority, so a
// duplicate racing past the check still surfaces as ErrEmailAlreadyExists.
func (s *userService) Register(ctx context.Context, candidate validation.Candidate) (*domain.User, error) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.Email = strings.TrimSpace(candidate.Email)
	candidate.Company = strings.TrimSpace(candidate.Company)

	if candidate.Name == "" || candidate.Email == "" || candidate.Company == "" ||
		candidate.Password == "" || candidate.ConfirmPassword == "" {
		return nil, ErrMissingFields
	}

	if err := validation.Validate(candidate); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, candidate.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(candidate.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         candidate.Name,
		Email:        candidate.Email,
		Company:      candidate.Company,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return sanitizeUser(user), nil
}

// ListRecent returns up to limit records, most recent first, with password
// hashes stripped.
func (s *userService) ListRecent(ctx context.Context, limit int) ([]domain.User, error) {
	users, err := s.users.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent users: %w", err)
	}
	sanitized := make([]domain.User, len(users))
	for i := range users {
		sanitized[i] = *sanitizeUser(&users[i])
	}
	return sanitized, nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Company:   user.Company,
		CreatedAt: user.CreatedAt,
	}
}
