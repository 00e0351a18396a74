package models

import "time"

// User is a credential record. Email is stored and compared in lowercase
// form only. PasswordHash must never appear in a response payload; use
// Principal() for anything that leaves the server.
type User struct {
	ID           string
	Email        string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the authenticated user attached to a request after the auth
// gate admits it: the credential record minus the password hash.
type Principal struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	UserName  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Principal projects the user into its response-safe form.
func (u *User) Principal() Principal {
	return Principal{
		ID:        u.ID,
		Email:     u.Email,
		UserName:  u.UserName,
		CreatedAt: u.CreatedAt,
	}
}
