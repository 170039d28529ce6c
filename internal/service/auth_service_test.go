package service

import (
	"online_course_backend/internal/model"
	"online_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Signup("Alice", "alice@example.com", "secret", "student")
	require.NoError(t, err)
	assert.Equal(t, model.Student, user.Role)

	loggedIn, err := env.auth.Login("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup("Alice", "alice@example.com", "secret", "STUDENT")
	require.NoError(t, err)

	_, err = env.auth.Signup("Other Alice", "alice@example.com", "other", "STUDENT")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup("Alice", "alice@example.com", "secret", "ADMIN")
	assert.ErrorIs(t, err, util.ErrInvalidRole)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup("Alice", "alice@example.com", "secret", "STUDENT")
	require.NoError(t, err)

	_, err = env.auth.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrBadCredentials)

	_, err = env.auth.Login("nobody@example.com", "secret")
	assert.ErrorIs(t, err, util.ErrBadCredentials)
}

func TestParseRoleIsCaseInsensitive(t *testing.T) {
	for _, raw := range []string{"student", "Student", "STUDENT"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, model.Student, role)
	}

	role, err := ParseRole("instructor")
	require.NoError(t, err)
	assert.Equal(t, model.Instructor, role)
}
