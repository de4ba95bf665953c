// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"
)

// actorKey is a context key type for storing the authenticated employee id.
type actorKey struct{}

// WithActor binds the resolved employee id to the request context.
// Called by the authentication middleware after successful token verification.
// The binding lives exactly as long as the request context, so concurrent
// requests can never observe each other's identity and nothing survives
// into a reused connection.
func WithActor(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, actorKey{}, id)
}

// ActorID retrieves the authenticated employee id from the context.
// Returns (0, false) when no identity is bound; callers must treat that as
// "not authenticated" and fail closed.
func ActorID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(actorKey{}).(int64)
	return id, ok
}
