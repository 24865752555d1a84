package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
	"github.com/rentit/campus-rentals-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubVerifier struct {
	claims *ports.IdentityClaims
	err    error
	calls  int
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*ports.IdentityClaims, error) {
	v.calls++
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

type stubUserRepo struct {
	byEmail     map[string]*domain.User
	upsertCalls int
	upsertErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

// UpsertByEmail mirrors the real Mongo behaviour: insert when absent, return
// the existing document untouched when present.
func (r *stubUserRepo) UpsertByEmail(_ context.Context, user *domain.User) (*domain.User, error) {
	r.upsertCalls++
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	if existing, ok := r.byEmail[user.Email]; ok {
		clone := *existing
		return &clone, nil
	}
	clone := *user
	r.byEmail[user.Email] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

var discardLogger = zerolog.Nop()

func campusClaims() *ports.IdentityClaims {
	return &ports.IdentityClaims{
		Subject: "108500000000000000001",
		Email:   "ab1234@nyu.edu",
		Name:    "Alex Brown",
		Picture: "https://lh3.googleusercontent.com/a/photo",
	}
}

// ---------------------------------------------------------------------------
// Authenticate tests
// ---------------------------------------------------------------------------

func TestIdentityService_VerifierFailureCollapsesToInvalidToken(t *testing.T) {
	cases := []error{
		errors.New("token signature is invalid"),
		errors.New("token is expired"),
		errors.New("audience mismatch"),
		errors.New("token is malformed: could not base64 decode"),
	}

	for _, cause := range cases {
		verifier := &stubVerifier{err: cause}
		svc := NewIdentityService(verifier, newStubUserRepo(), "nyu.edu", discardLogger)

		_, err := svc.Authenticate(context.Background(), "some-token")
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("cause %q: expected ErrInvalidToken, got %v", cause, err)
		}
		// The outward error must be the generic message, never the real cause.
		if err.Error() != "could not validate credentials" {
			t.Errorf("cause %q leaked into response error: %q", cause, err.Error())
		}
	}
}

func TestIdentityService_WrongDomainIsForbiddenNotUnauthorized(t *testing.T) {
	claims := campusClaims()
	claims.Email = "someone@gmail.com"
	svc := NewIdentityService(&stubVerifier{claims: claims}, newStubUserRepo(), "nyu.edu", discardLogger)

	_, err := svc.Authenticate(context.Background(), "valid-token")
	if !errors.Is(err, domain.ErrEmailDomainNotAllowed) {
		t.Fatalf("expected ErrEmailDomainNotAllowed, got %v", err)
	}
}

func TestIdentityService_SubdomainDoesNotMatchAllowedDomain(t *testing.T) {
	// The allowlist matches the full domain after "@", so a lookalike
	// subdomain of a different registrable domain must not pass.
	claims := campusClaims()
	claims.Email = "ab1234@nyu.edu.evil.com"
	svc := NewIdentityService(&stubVerifier{claims: claims}, newStubUserRepo(), "nyu.edu", discardLogger)

	if _, err := svc.Authenticate(context.Background(), "valid-token"); !errors.Is(err, domain.ErrEmailDomainNotAllowed) {
		t.Fatalf("expected ErrEmailDomainNotAllowed, got %v", err)
	}
}

func TestIdentityService_FirstSeenEmailCreatesUserFromClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewIdentityService(&stubVerifier{claims: campusClaims()}, repo, "nyu.edu", discardLogger)

	user, err := svc.Authenticate(context.Background(), "valid-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID != "108500000000000000001" {
		t.Errorf("id must be the provider subject, got %q", user.ID)
	}
	if user.Email != "ab1234@nyu.edu" {
		t.Errorf("email not copied verbatim: %q", user.Email)
	}
	if user.Name != "Alex Brown" {
		t.Errorf("name not copied verbatim: %q", user.Name)
	}
	if user.Picture != "https://lh3.googleusercontent.com/a/photo" {
		t.Errorf("picture not copied verbatim: %q", user.Picture)
	}
	if user.IsAdmin {
		t.Error("new users must not be admins")
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}
}

func TestIdentityService_SecondAuthenticationReturnsExistingUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewIdentityService(&stubVerifier{claims: campusClaims()}, repo, "nyu.edu", discardLogger)

	first, err := svc.Authenticate(context.Background(), "valid-token")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	second, err := svc.Authenticate(context.Background(), "valid-token")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if len(repo.byEmail) != 1 {
		t.Fatalf("expected exactly 1 stored user, got %d", len(repo.byEmail))
	}
	if first.ID != second.ID || !first.CreatedAt.Equal(second.CreatedAt) {
		t.Error("repeat authentication must return the same record")
	}
}

func TestIdentityService_EveryRequestReverifies(t *testing.T) {
	verifier := &stubVerifier{claims: campusClaims()}
	svc := NewIdentityService(verifier, newStubUserRepo(), "nyu.edu", discardLogger)

	for i := 0; i < 3; i++ {
		if _, err := svc.Authenticate(context.Background(), "valid-token"); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if verifier.calls != 3 {
		t.Errorf("expected 3 verifier calls (no token caching), got %d", verifier.calls)
	}
}

func TestIdentityService_UpsertConflictPropagates(t *testing.T) {
	repo := newStubUserRepo()
	repo.upsertErr = domain.ErrUserExists
	svc := NewIdentityService(&stubVerifier{claims: campusClaims()}, repo, "nyu.edu", discardLogger)

	if _, err := svc.Authenticate(context.Background(), "valid-token"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestIdentityService_UpsertTimestampIsUTC(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewIdentityService(&stubVerifier{claims: campusClaims()}, repo, "nyu.edu", discardLogger)

	user, err := svc.Authenticate(context.Background(), "valid-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt must be UTC, got %v", user.CreatedAt.Location())
	}
}
