package models

import "github.com/golang-jwt/jwt"

// Session is the locally persisted identity the browser used to keep in
// localStorage: who the user is, whether they are an admin, and the bearer
// token for the remote API. Absence of a token means "not logged in".
type Session struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims mirrors the payload of the tokens the remote auth service issues.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}
