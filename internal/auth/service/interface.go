// Package service provides technical services for authentication operations.
package service

import (
	"github.com/tlias/tlias/internal/auth/domain"
)

// TokenCodec issues and verifies signed, time-bounded login tokens.
// Tokens are stateless: nothing is persisted server-side, so verification
// is a pure transform of the token string.
type TokenCodec interface {
	// Issue serializes the claims plus an expiry timestamp (now + TTL) and
	// signs them with the shared secret.
	Issue(claims domain.Claims) (string, error)

	// Verify checks the signature, structure, and expiry of a token and
	// returns the embedded claims. Any failure is reported as
	// domain.ErrInvalidToken; callers must not leak which check failed.
	Verify(token string) (domain.Claims, error)
}
