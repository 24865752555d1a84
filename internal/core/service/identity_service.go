package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
	"github.com/rentit/campus-rentals-api/internal/core/ports"
)

// IdentityService verifies bearer tokens and materializes local user records.
type IdentityService struct {
	verifier      ports.TokenVerifier
	users         ports.UserRepository
	allowedDomain string
	logger        zerolog.Logger
}

func NewIdentityService(verifier ports.TokenVerifier, users ports.UserRepository, allowedDomain string, logger zerolog.Logger) *IdentityService {
	return &IdentityService{
		verifier:      verifier,
		users:         users,
		allowedDomain: allowedDomain,
		logger:        logger,
	}
}

// Authenticate resolves a raw bearer token to a user account.
//
// Every call re-verifies the token against the provider; verified tokens are
// never cached. All verification failures collapse to domain.ErrInvalidToken
// and the real cause goes to the log. The domain check only fires after
// verification succeeded, and surfaces as a forbidden error.
func (s *IdentityService) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	claims, err := s.verifier.Verify(ctx, rawToken)
	if err != nil {
		s.logger.Warn().Err(err).Msg("token verification failed")
		return nil, domain.ErrInvalidToken
	}

	if !strings.HasSuffix(claims.Email, "@"+s.allowedDomain) {
		s.logger.Info().Str("email", claims.Email).Msg("email outside allowed domain")
		return nil, domain.ErrEmailDomainNotAllowed
	}

	user, err := s.users.UpsertByEmail(ctx, &domain.User{
		ID:        claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		Picture:   claims.Picture,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email", claims.Email).Msg("failed to upsert user")
		return nil, err
	}

	return user, nil
}
