package services

import (
	"testing"

	"core_api/internal/auth"
	"core_api/internal/models"
	"core_api/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "unit-test-secret"

func newAuthService(t *testing.T) (AuthService, repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(userRepo, testJWTSecret), userRepo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, userRepo := newAuthService(t)

	user, err := svc.Register("mechanic@shop.test", "s3cret", "")
	require.NoError(t, err)
	require.Equal(t, string(models.RoleManager), user.Role)
	require.NotEqual(t, "s3cret", user.PasswordHash)

	stored, err := userRepo.GetByEmail("mechanic@shop.test")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("owner@shop.test", "pw1", "owner")
	require.NoError(t, err)

	_, err = svc.Register("owner@shop.test", "pw2", "manager")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("x@shop.test", "pw", "janitor")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginIssuesParseableToken(t *testing.T) {
	svc, _ := newAuthService(t)

	created, err := svc.Register("owner@shop.test", "pw", "owner")
	require.NoError(t, err)

	token, user, err := svc.Login("owner@shop.test", "pw")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	claims, err := auth.ParseToken(testJWTSecret, token)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.UserID)
	require.Equal(t, "owner@shop.test", claims.Email)
	require.Equal(t, "owner", claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("owner@shop.test", "pw", "owner")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login("owner@shop.test", "nope")
	_, _, unknownEmail := svc.Login("nobody@shop.test", "pw")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
