package repository

import (
	"context"
	"errors"

	"hostbison-signup/internal/domain"
)

// ErrDuplicateEmail is returned when an insert hits the unique email
// constraint. The store is the authority on duplicates; callers may pre-check
// with FindByEmail only as a fast path.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence operations for User records.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ListRecent(ctx context.Context, limit int) ([]domain.User, error)
}
