// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package identity verifies bearer credentials issued by the external
// identity provider. The rest of the application never inspects tokens
// itself; it only consumes the verified (userId, displayName) pair.
package identity

import "context"

// Identity is the verified result of a credential check.
type Identity struct {
	UserID      string
	DisplayName string
}

// Verifier validates a bearer credential. Implementations return
// (nil, nil) when the credential is absent, malformed, or rejected by
// the provider — an unauthenticated request is an expected outcome, not
// an error. A non-nil error is reserved for unexpected failures.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
