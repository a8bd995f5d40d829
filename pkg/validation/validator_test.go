package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,pwd"`
}

func validate(t *testing.T, v any) error {
	t.Helper()
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return engine.Struct(v)
}

func TestPwdAliasMinimumSix(t *testing.T) {
	Init()

	err := validate(t, &signupForm{Email: "a@example.com", Password: "12345"})
	require.Error(t, err)
	details := ToDetails(err)
	assert.Contains(t, details, "password")
	assert.Contains(t, details["password"], "at least 6")

	assert.NoError(t, validate(t, &signupForm{Email: "a@example.com", Password: "123456"}))
}

func TestToDetails_UsesFormFieldNames(t *testing.T) {
	Init()

	err := validate(t, &signupForm{Email: "nope", Password: "longenough"})
	require.Error(t, err)
	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
}

func TestToDetails_NilAndUnknown(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("weird")))
}
