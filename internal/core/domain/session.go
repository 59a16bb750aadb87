package domain

import "time"

// Session is the client-side login state: the bearer token and the user it was issued for.
type Session struct {
	Token string
	User  User
}

type TokenClaims struct {
	UserID    string
	Role      Role
	ExpiresAt time.Time
}
