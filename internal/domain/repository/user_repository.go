package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert collides with the
	// unique email constraint.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// UserRepository defines the store operations the account services need.
type UserRepository interface {
	// Create persists u and fills in ID, Role and timestamps. The role is
	// elected by the store: the first user in an empty store becomes admin,
	// everyone after that a regular user.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// AdminExists reports whether at least one admin account exists.
	AdminExists(ctx context.Context) (bool, error)
	CountUsers(ctx context.Context) (int64, error)
}
