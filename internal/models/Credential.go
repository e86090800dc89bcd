package models

// Credential is a registered user. Passwords are stored and compared as
// plain text.
type Credential struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

func (c Credential) GetID() string { return c.ID }

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=3"`
	Surname  string `json:"surname" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (in RegisterInput) ToCredential(id string) Credential {
	return Credential{
		ID:       id,
		Name:     in.Name,
		Surname:  in.Surname,
		Email:    in.Email,
		Password: in.Password,
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
