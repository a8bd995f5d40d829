package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientProjectionOmitsPassword(t *testing.T) {
	u := &User{ID: "42", Email: "a@example.com", Password: "$2a$10$hash", Role: RoleUser}

	b, err := json.Marshal(u.Client())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "42", m["id"])
	assert.Equal(t, "a@example.com", m["email"])
	assert.Equal(t, "user", m["role"])
	assert.NotContains(t, m, "password")
	assert.Len(t, m, 3)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
}
