package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/pkg/helpers"
)

// User-facing messages. These are part of the contract with the UI layer;
// infrastructure detail never leaks into them.
const (
	MsgAccountExists   = "An account with this email already exists."
	MsgRegisterFailed  = "An unexpected error occurred. Please try again."
	MsgNoUserFound     = "No user found with this email."
	MsgWrongPassword   = "Incorrect password."
	MsgDatabaseFailure = "An unexpected database error occurred."
)

// RegisterResult is what the registration entry point renders. Exactly one
// of Success or Message is meaningful.
type RegisterResult struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

// AuthResult carries the sanitized user projection on success, or a
// user-facing message otherwise.
type AuthResult struct {
	Success bool               `json:"success,omitempty"`
	User    *entity.ClientUser `json:"user,omitempty"`
	Message string             `json:"message,omitempty"`
}

// AccountService implements registration and credential verification.
type AccountService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewAccountService(repo repository.UserRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: repo, Logger: logger}
}

// Register creates an account for email with the given raw password.
// The first account ever created is elected admin; the election and the
// duplicate check are both settled atomically by the store, so a pre-check
// race cannot produce a second row or a second admin. Input validation
// (email syntax, password length) happens at the entry point before this
// is called.
func (s *AccountService) Register(ctx context.Context, email, rawPassword string) RegisterResult {
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logStoreError("register lookup failed", email, err)
		return RegisterResult{Message: MsgRegisterFailed}
	}
	if existing != nil {
		return RegisterResult{Message: MsgAccountExists}
	}

	hash, err := helpers.HashPassword(rawPassword)
	if err != nil {
		s.logStoreError("password hash failed", email, err)
		return RegisterResult{Message: MsgRegisterFailed}
	}

	u := &entity.User{Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		// Lost the race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return RegisterResult{Message: MsgAccountExists}
		}
		s.logStoreError("register insert failed", email, err)
		return RegisterResult{Message: MsgRegisterFailed}
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("account registered")
	}
	return RegisterResult{Success: true}
}

// Authenticate verifies email/password and returns the password-free
// projection on success. It never mints a session or token; that is the
// caller's concern.
func (s *AccountService) Authenticate(ctx context.Context, email, rawPassword string) AuthResult {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AuthResult{Message: MsgNoUserFound}
		}
		s.logStoreError("login lookup failed", email, err)
		return AuthResult{Message: MsgDatabaseFailure}
	}

	if !helpers.CompareHashAndPassword(u.Password, rawPassword) {
		if s.Logger != nil {
			s.Logger.WithField("user_id", u.ID).Debug("password mismatch")
		}
		return AuthResult{Message: MsgWrongPassword}
	}

	client := u.Client()
	return AuthResult{Success: true, User: &client}
}

func (s *AccountService) logStoreError(msg, email string, err error) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithField("email", email).Error(msg)
}
