package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether a stored fallback bearer token is already
// past its exp claim. The signature is not checked here — verification is
// the backend's job — this only keeps the client from attaching a token it
// knows is dead. Malformed tokens count as expired; tokens without an exp
// claim never do.
func TokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
