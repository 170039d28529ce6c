package service

import (
	"online_course_backend/internal/model"
	"online_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	user := env.createStudent(t, "alice")

	updated, err := env.user.UpdateProfile(user.ID, ProfileUpdateInput{
		Name:        strPtr("Alice Cooper"),
		AvatarIndex: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, 3, updated.AvatarIndex)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createStudent(t, "alice")
	env.createStudent(t, "carol")

	_, err := env.user.UpdateProfile(alice.ID, ProfileUpdateInput{
		Email: strPtr("carol@example.com"),
	})
	assert.ErrorIs(t, err, util.ErrEmailTaken)

	// 改回自己的邮箱不算冲突
	_, err = env.user.UpdateProfile(alice.ID, ProfileUpdateInput{
		Email: strPtr("alice@example.com"),
	})
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.createStudent(t, "alice")

	err := env.user.ChangePassword(user.ID, "wrong", "newpass")
	assert.ErrorIs(t, err, util.ErrWrongPassword)

	require.NoError(t, env.user.ChangePassword(user.ID, "secret", "newpass"))

	_, err = env.auth.Login("alice@example.com", "newpass")
	assert.NoError(t, err)
}

func TestGetUsersByRole(t *testing.T) {
	env := newTestEnv(t)
	env.createStudent(t, "alice")
	env.createStudent(t, "carol")
	env.createInstructor(t, "bob")

	students, err := env.user.GetByRole("student")
	require.NoError(t, err)
	assert.Len(t, students, 2)

	instructors, err := env.user.GetByRole("INSTRUCTOR")
	require.NoError(t, err)
	require.Len(t, instructors, 1)
	assert.Equal(t, model.Instructor, instructors[0].Role)

	_, err = env.user.GetByRole("admin")
	assert.ErrorIs(t, err, util.ErrInvalidRole)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.createStudent(t, "alice")

	require.NoError(t, env.user.Delete(user.ID))

	_, err := env.user.GetByID(user.ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	assert.ErrorIs(t, env.user.Delete(user.ID), util.ErrUserNotFound)
}

func TestEmailExists(t *testing.T) {
	env := newTestEnv(t)
	env.createStudent(t, "alice")

	exists, err := env.user.EmailExists("alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = env.user.EmailExists("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
