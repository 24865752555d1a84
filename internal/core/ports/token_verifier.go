package ports

import "context"

// IdentityClaims are the verified attributes extracted from a valid ID token.
type IdentityClaims struct {
	Subject string
	Email   string
	Name    string
	Picture string // optional
}

// TokenVerifier validates a raw bearer token against the identity provider's
// current signing keys and returns the claims it carries. Implementations
// return a descriptive error on any failure (signature, expiry, audience);
// callers are responsible for collapsing that detail before it reaches a
// client.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*IdentityClaims, error)
}
