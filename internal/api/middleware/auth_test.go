package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

type stubIdentity struct {
	user      *domain.User
	err       error
	lastToken string
}

func (s *stubIdentity) Authenticate(_ context.Context, token string) (*domain.User, error) {
	s.lastToken = token
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func invoke(t *testing.T, identity *stubIdentity, authHeader string) (error, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(identity)(next)(c)
	return err, c
}

func TestAuth_MissingHeaderIsUnauthorized(t *testing.T) {
	err, _ := invoke(t, &stubIdentity{}, "")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != "could not validate credentials" {
		t.Errorf("message must stay generic, got %v", he.Message)
	}
}

func TestAuth_MalformedHeaderIsUnauthorized(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic dXNlcjpwYXNz", "token-without-scheme"} {
		err, _ := invoke(t, &stubIdentity{}, header)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401 HTTPError, got %v", header, err)
		}
	}
}

func TestAuth_SchemeIsCaseInsensitive(t *testing.T) {
	identity := &stubIdentity{user: &domain.User{ID: "u1", Email: "ab1234@nyu.edu"}}

	if err, _ := invoke(t, identity, "bearer some-token"); err != nil {
		t.Fatalf("lowercase scheme must be accepted: %v", err)
	}
	if identity.lastToken != "some-token" {
		t.Errorf("token not extracted: %q", identity.lastToken)
	}
}

func TestAuth_ServiceErrorsPassThroughForCentralMapping(t *testing.T) {
	for _, cause := range []error{domain.ErrInvalidToken, domain.ErrEmailDomainNotAllowed} {
		err, _ := invoke(t, &stubIdentity{err: cause}, "Bearer bad-token")
		if !errors.Is(err, cause) {
			t.Errorf("expected %v to pass through untouched, got %v", cause, err)
		}
	}
}

func TestAuth_SuccessStoresUserInContext(t *testing.T) {
	user := &domain.User{ID: "108500000000000000001", Email: "ab1234@nyu.edu"}
	err, c := invoke(t, &stubIdentity{user: user}, "Bearer good-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, ok := c.Get(UserContextKey).(*domain.User)
	if !ok || stored == nil {
		t.Fatal("authenticated user not stored in context")
	}
	if stored.ID != user.ID {
		t.Errorf("wrong user in context: %q", stored.ID)
	}
}
