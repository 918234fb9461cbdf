package session

import (
	"github.com/golang-jwt/jwt"

	"basobasFront/internal/models"
)

// Decision is the tagged result of the single capability check every guarded
// route consumes, instead of per-page boolean role checks.
type Decision int

const (
	Authorized Decision = iota
	Unauthenticated
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Authorized:
		return "authorized"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "forbidden"
	}
}

// Check gates a request. Token presence is the login check; the admin flag is
// the only capability beyond it. requiredRole is models.RoleUser or
// models.RoleAdmin; admins pass user-gated routes.
func Check(sess models.Session, requiredRole string) Decision {
	if !sess.LoggedIn() {
		return Unauthenticated
	}
	if requiredRole == models.RoleAdmin && !sess.IsAdmin() {
		return Forbidden
	}
	return Authorized
}

// DecodeClaims reads the user id and role out of a bearer token without
// verifying the signature: the remote API is the authority on validity, this
// side only needs the identity fields for sessions stored before the role
// field existed.
func DecodeClaims(token string) (models.Claims, bool) {
	claims := models.Claims{}
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return models.Claims{}, false
	}
	return claims, true
}

// Hydrate fills missing identity fields on a session from its own token.
func Hydrate(sess models.Session) models.Session {
	if !sess.LoggedIn() || (sess.UserID != "" && sess.Role != "") {
		return sess
	}
	claims, ok := DecodeClaims(sess.Token)
	if !ok {
		return sess
	}
	if sess.UserID == "" {
		sess.UserID = claims.UserID
	}
	if sess.Role == "" {
		sess.Role = claims.Role
	}
	return sess
}
