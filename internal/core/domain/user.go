package domain

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type User struct {
	ID           string
	Email        string
	Username     string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns a copy of the user without its credential secret.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}
