package store

import (
	"fleet_manager/internal/apperr"
	"fleet_manager/internal/models"
)

// ErrEmailTaken is returned when a credential with the same email exists.
var ErrEmailTaken = apperr.BadRequest("The email address provided is already in use")

// AddCredential stores a new credential unless its email is already
// registered. The input is expected to be validated by the caller.
func (s *Store) AddCredential(in models.RegisterInput) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.credentials.rows {
		if c.Email == in.Email {
			return models.Credential{}, ErrEmailTaken
		}
	}
	c := in.ToCredential(s.newID())
	s.credentials.append(c)
	return c, nil
}

func (s *Store) CredentialByEmail(email string) (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.credentials.rows {
		if c.Email == email {
			return c, true
		}
	}
	return models.Credential{}, false
}

func (s *Store) CredentialCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.credentials.rows)
}
