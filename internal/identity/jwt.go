// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package identity

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims mirrors the provider's session token payload. The
// subject carries the user ID; the display name comes from whichever of
// the profile claims the provider filled in.
type sessionClaims struct {
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Email     string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256-signed provider session tokens with a
// shared secret.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a Verifier for tokens signed with the given secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token. Invalid, expired, or
// wrongly-signed tokens yield (nil, nil): the caller treats the request
// as unauthenticated.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, nil
	}

	return &Identity{
		UserID:      claims.Subject,
		DisplayName: displayName(claims),
	}, nil
}

// displayName picks the first profile claim the provider populated.
func displayName(c *sessionClaims) string {
	switch {
	case c.Username != "":
		return c.Username
	case c.FirstName != "":
		return c.FirstName
	case c.Email != "":
		return c.Email
	default:
		return "Anonymous"
	}
}

// Issue signs a session token for the given user. Used by development
// tooling and tests; real tokens come from the identity provider.
func Issue(secret, userID, username string, ttl time.Duration) (string, error) {
	claims := &sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
