// Package auth registers credentials and exchanges them for tokens.
package auth

import (
	"fleet_manager/internal/apperr"
	"fleet_manager/internal/models"
	"fleet_manager/internal/validation"
)

var (
	ErrEmailNotFound     = apperr.BadRequest("The email address not found")
	ErrIncorrectPassword = apperr.BadRequest("Incorrect password")
)

// CredentialStore is the part of the store the service needs.
type CredentialStore interface {
	AddCredential(in models.RegisterInput) (models.Credential, error)
	CredentialByEmail(email string) (models.Credential, bool)
}

// TokenIssuer signs a token for a credential id.
type TokenIssuer interface {
	Generate(credentialID string) (string, error)
}

type Service struct {
	store  CredentialStore
	tokens TokenIssuer
}

func NewService(store CredentialStore, tokens TokenIssuer) *Service {
	return &Service{store: store, tokens: tokens}
}

// Register validates the input and stores a new credential. Emails are
// unique.
func (s *Service) Register(in models.RegisterInput) (models.Credential, error) {
	if err := validation.Struct(in); err != nil {
		return models.Credential{}, err
	}
	return s.store.AddCredential(in)
}

// Login checks the email and password and returns a signed token.
func (s *Service) Login(in models.LoginInput) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}

	cred, ok := s.store.CredentialByEmail(in.Email)
	if !ok {
		return "", ErrEmailNotFound
	}
	if cred.Password != in.Password {
		return "", ErrIncorrectPassword
	}
	return s.tokens.Generate(cred.ID)
}
