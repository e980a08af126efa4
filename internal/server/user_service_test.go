package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaewoo/careerfolio/internal/config"
)

func newTestUserService(mock *mockDB) *UserService {
	return NewUserService(mock, &config.PasswordConfig{BcryptCost: 10})
}

func TestUserServiceRegister(t *testing.T) {
	svc := newTestUserService(newMockDB())

	user, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Kim Jaewoo",
		Email:    "jaewoo@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kim Jaewoo", user.Name)
	assert.True(t, user.PasswordSet)
}

func TestUserServiceRegisterDuplicate(t *testing.T) {
	svc := newTestUserService(newMockDB())
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "A", Email: "a@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{Name: "B", Email: "a@example.com", Password: "hunter2hunter2"})
	var exists *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "a@example.com", exists.Email)
}

func TestUserServiceLogin(t *testing.T) {
	svc := newTestUserService(newMockDB())
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{Name: "A", Email: "a@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &LoginRequest{Email: "a@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Login(ctx, &LoginRequest{Email: "a@example.com", Password: "wrong"})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)

	_, err = svc.Login(ctx, &LoginRequest{Email: "missing@example.com", Password: "hunter2hunter2"})
	assert.ErrorAs(t, err, &invalid)
}

func TestUserServiceUpdatePassword(t *testing.T) {
	svc := newTestUserService(newMockDB())
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{Name: "A", Email: "a@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	var mismatch *ErrPasswordMismatch
	err = svc.UpdatePassword(ctx, registered.ID, "wrong", "new-password-123")
	require.ErrorAs(t, err, &mismatch)

	require.NoError(t, svc.UpdatePassword(ctx, registered.ID, "hunter2hunter2", "new-password-123"))

	_, err = svc.Login(ctx, &LoginRequest{Email: "a@example.com", Password: "new-password-123"})
	assert.NoError(t, err)
}

func TestUserServiceUpdatePasswordUnknownUser(t *testing.T) {
	svc := newTestUserService(newMockDB())

	var notFound *ErrUserNotFound
	err := svc.UpdatePassword(context.Background(), uuid.New(), "a", "b")
	assert.ErrorAs(t, err, &notFound)
}
