package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// identityKey is the context key for storing the caller Identity.
const identityKey contextKey = "identity"

// ContextWithIdentity adds the caller Identity to the context.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext retrieves the caller Identity from the context.
// Returns nil if not present.
func IdentityFromContext(ctx context.Context) *Identity {
	identity, ok := ctx.Value(identityKey).(*Identity)
	if !ok {
		return nil
	}
	return identity
}

// MustIdentityFromContext retrieves the caller Identity from the context.
// Panics if not present (use only when auth middleware has run).
func MustIdentityFromContext(ctx context.Context) *Identity {
	identity := IdentityFromContext(ctx)
	if identity == nil {
		panic("identity not found in context - ensure auth middleware is applied")
	}
	return identity
}
