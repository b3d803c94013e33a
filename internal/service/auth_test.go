package service

import (
	"errors"
	"testing"

	"github.com/footprint-app/footprint/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse battery"

func TestAuthRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	user, err := env.auth.Register(" ada ", "Ada@Example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, testPassword, user.PasswordHash)

	_, err = env.auth.Register("ada2", "ada@example.com", testPassword)
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = env.auth.Login("ada@example.com", "wrong password here")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login("nobody@example.com", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	loggedIn, err := env.auth.Login("ADA@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	token, expiresAt, err := env.auth.GenerateJWT(loggedIn)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(user.CreatedAt))

	userID, err := env.auth.UserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthRegisterValidation(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	cases := map[string][3]string{
		"weak password":  {"ada", "ada@example.com", "short"},
		"bad email":      {"ada", "not-an-email", testPassword},
		"blank username": {"  ", "ada@example.com", testPassword},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.auth.Register(args[0], args[1], args[2])
			var verr *validation.Error
			assert.True(t, errors.As(err, &verr), "got %v", err)
		})
	}
}

func TestAuthRejectsForeignTokens(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	other := NewAuthService(nil, nil, "another-secret", 0)

	user := env.user(t)
	token, _, err := other.GenerateJWT(user)
	require.NoError(t, err)

	_, err = env.auth.UserIDFromToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = env.auth.UserIDFromToken("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
