// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"inkwell/internal/identity"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// IdentityKey is the context key for the verified identity.
	IdentityKey contextKey = "identity"
)

// LoadIdentity extracts the bearer credential from the Authorization
// header, verifies it, and stores the resulting identity in the request
// context. This middleware does NOT enforce authentication — requests
// without a valid credential simply continue unauthenticated.
func LoadIdentity(verifier identity.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" {
				id, err := verifier.Verify(r.Context(), token)
				if err == nil && id != nil {
					ctx := context.WithValue(r.Context(), IdentityKey, id)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireIdentity rejects requests that carry no verified identity with
// a 401 JSON envelope. Must be applied after LoadIdentity.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromCtx(r.Context()) == nil {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Unauthorized"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IdentityFromCtx extracts the verified identity from the request context.
// Returns nil if the request is unauthenticated.
func IdentityFromCtx(ctx context.Context) *identity.Identity {
	id, _ := ctx.Value(IdentityKey).(*identity.Identity)
	return id
}

// bearerToken pulls the token out of an "Authorization: Bearer <token>"
// header. Returns "" when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
