package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet_manager/internal/apperr"
	"fleet_manager/internal/middleware"
	"fleet_manager/internal/models"
	"fleet_manager/internal/store"
)

func newService(t *testing.T) (*Service, *middleware.TokenManager, *store.Store) {
	t.Helper()
	s := store.New()
	tm := middleware.NewTokenManager("secret")
	return NewService(s, tm), tm, s
}

func validRegistration() models.RegisterInput {
	return models.RegisterInput{Name: "John", Surname: "Smith", Email: "john@x.com", Password: "qwerty"}
}

func TestRegister(t *testing.T) {
	svc, _, s := newService(t)

	cred, err := svc.Register(validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, cred.ID)
	assert.Equal(t, 1, s.CredentialCount())
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegisterInput)
		msg    string
	}{
		{"short name", func(in *models.RegisterInput) { in.Name = "Jo" }, "name: Must be at least 3 characters long"},
		{"bad email", func(in *models.RegisterInput) { in.Email = "john" }, "email: Invalid email"},
		{"short password", func(in *models.RegisterInput) { in.Password = "12345" }, "password: Must be at least 6 characters long"},
		{"missing surname", func(in *models.RegisterInput) { in.Surname = "" }, "surname: Required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, s := newService(t)
			in := validRegistration()
			tt.mutate(&in)

			_, err := svc.Register(in)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindValidation))
			assert.Equal(t, tt.msg, err.Error())
			assert.Zero(t, s.CredentialCount())
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, s := newService(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)
	_, err = svc.Register(validRegistration())
	require.ErrorIs(t, err, store.ErrEmailTaken)
	assert.Equal(t, "The email address provided is already in use", err.Error())
	assert.Equal(t, 1, s.CredentialCount())
}

func TestLogin(t *testing.T) {
	svc, tm, _ := newService(t)
	cred, err := svc.Register(validRegistration())
	require.NoError(t, err)

	token, err := svc.Login(models.LoginInput{Email: "john@x.com", Password: "qwerty"})
	require.NoError(t, err)

	id, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, cred.ID, id)
}

func TestLoginFailures(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, err = svc.Login(models.LoginInput{Email: "nobody@x.com", Password: "qwerty"})
	assert.ErrorIs(t, err, ErrEmailNotFound)

	_, err = svc.Login(models.LoginInput{Email: "john@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	_, err = svc.Login(models.LoginInput{Email: "john@x.com"})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
