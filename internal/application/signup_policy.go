package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain/repository"
	"storefront/internal/infrastructure/settings"
)

// SignupPolicy decides whether the public registration path is exposed.
// Two layers: a hard bootstrap override (no admin yet means signup is
// always open, otherwise the first administrator could never be created),
// and a soft feature flag from the settings service once an admin exists.
type SignupPolicy struct {
	Repo     repository.UserRepository
	Settings settings.Client
	Logger   *logrus.Logger
}

func NewSignupPolicy(repo repository.UserRepository, settings settings.Client, logger *logrus.Logger) *SignupPolicy {
	return &SignupPolicy{Repo: repo, Settings: settings, Logger: logger}
}

// SignupAllowed fails closed on every collaborator error: a broken store
// or settings service hides the signup path rather than exposing it.
func (p *SignupPolicy) SignupAllowed(ctx context.Context) bool {
	adminExists, err := p.Repo.AdminExists(ctx)
	if err != nil {
		if p.Logger != nil {
			p.Logger.WithError(err).Error("admin existence check failed")
		}
		return false
	}
	if !adminExists {
		return true
	}

	allow, err := p.Settings.AllowSignups(ctx)
	if err != nil {
		if p.Logger != nil {
			p.Logger.WithError(err).Warn("settings fetch failed, hiding signup")
		}
		return false
	}
	return allow
}
