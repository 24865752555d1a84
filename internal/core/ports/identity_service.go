package ports

import (
	"context"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

// IdentityService resolves a bearer token to a local user account.
type IdentityService interface {
	// Authenticate verifies the token, enforces the email-domain allowlist,
	// and materializes the user record on first sight. Verification failures
	// of any kind surface as domain.ErrInvalidToken; a valid token with an
	// email outside the allowed domain surfaces as
	// domain.ErrEmailDomainNotAllowed.
	Authenticate(ctx context.Context, rawToken string) (*domain.User, error)
}
