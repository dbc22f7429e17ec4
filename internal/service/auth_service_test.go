package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"giftcard-register-be/internal/dto"
	"giftcard-register-be/internal/entity"
)

func newAuthFixture(t *testing.T, password string) (IAuthService, *fakeRecorder) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	users := &fakeUserRepo{}
	_, err = users.Create(context.Background(), &entity.User{
		Email:        "admin@studio.local",
		FullName:     "Studio Admin",
		PasswordHash: &hashStr,
		Role:         entity.UserRoleAdmin,
	})
	require.NoError(t, err)

	uow := &fakeUnitOfWork{
		giftCards: newFakeGiftCardRepo(),
		activity:  &fakeActivityRepo{},
		users:     users,
	}
	recorder := &fakeRecorder{}
	svc := NewAuthService(&fakeUowFactory{uow: uow}, recorder, noopLogger{})
	return svc, recorder
}

func TestLoginSuccess(t *testing.T) {
	svc, recorder := newAuthFixture(t, "correct horse battery")

	res, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@studio.local",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, string(entity.UserRoleAdmin), res.Role)

	require.Equal(t, []string{entity.ActionUserLogin}, recorder.actions())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, recorder := newAuthFixture(t, "correct horse battery")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@studio.local",
		Password: "wrong",
	})
	require.EqualError(t, err, "invalid credentials")
	require.Empty(t, recorder.actions())
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t, "correct horse battery")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@studio.local",
		Password: "anything",
	})
	require.EqualError(t, err, "invalid credentials")
}
