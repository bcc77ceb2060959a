package domain

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued at sign-in. Role is resolved from the
// profile once, at token time, and carried for the session.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email, Role: c.Role}
}
