package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
)

type fakeSettings struct {
	allow bool
	err   error
	calls int
}

func (f *fakeSettings) AllowSignups(context.Context) (bool, error) {
	f.calls++
	return f.allow, f.err
}

func repoWithAdmin(t *testing.T) *fakeUserRepo {
	t.Helper()
	repo := newFakeUserRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.User{Email: "admin@example.com", Password: "x"}))
	return repo
}

func TestSignupAllowed_NoAdminBootstrapsOpen(t *testing.T) {
	// Flag off and settings broken, yet signup stays open until the first
	// admin exists.
	st := &fakeSettings{allow: false, err: errors.New("settings down")}
	policy := NewSignupPolicy(newFakeUserRepo(), st, nil)

	assert.True(t, policy.SignupAllowed(context.Background()))
	assert.Zero(t, st.calls)
}

func TestSignupAllowed_AdminExistsFollowsFlag(t *testing.T) {
	repo := repoWithAdmin(t)

	policy := NewSignupPolicy(repo, &fakeSettings{allow: true}, nil)
	assert.True(t, policy.SignupAllowed(context.Background()))

	policy = NewSignupPolicy(repo, &fakeSettings{allow: false}, nil)
	assert.False(t, policy.SignupAllowed(context.Background()))
}

func TestSignupAllowed_SettingsFailureClosesSignup(t *testing.T) {
	repo := repoWithAdmin(t)
	policy := NewSignupPolicy(repo, &fakeSettings{allow: true, err: errors.New("timeout")}, nil)
	assert.False(t, policy.SignupAllowed(context.Background()))
}

func TestSignupAllowed_AdminCheckFailureClosesSignup(t *testing.T) {
	repo := newFakeUserRepo()
	repo.adminErr = errors.New("connection reset")
	policy := NewSignupPolicy(repo, &fakeSettings{allow: true}, nil)
	assert.False(t, policy.SignupAllowed(context.Background()))
}
