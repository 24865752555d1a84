package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rentit/campus-rentals-api/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "could not validate credentials"},
		{"wrapped invalid token", errors.Join(domain.ErrInvalidToken, errors.New("signature mismatch")), http.StatusUnauthorized, "could not validate credentials"},
		{"domain not allowed", domain.ErrEmailDomainNotAllowed, http.StatusForbidden, "email domain not allowed"},
		{"unsupported image", domain.ErrUnsupportedImageType, http.StatusBadRequest, "only JPEG and PNG images are allowed"},
		{"image too large", domain.ErrImageTooLarge, http.StatusBadRequest, "file size exceeds 10MB limit"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"listing not found", domain.ErrListingNotFound, http.StatusNotFound, "listing not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handleError(t, tc.err)

			if rec.Code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tc.wantMsg {
				t.Errorf("expected message %q, got %q", tc.wantMsg, body.Error)
			}
		})
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid skip parameter"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "invalid skip parameter" {
		t.Errorf("message: %q", body.Error)
	}
}

func TestErrorHandler_UnknownErrorIsInternal(t *testing.T) {
	rec := handleError(t, errors.New("mongo: connection reset"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	// The real cause stays in the log, never in the response.
	if body.Error != "internal server error" {
		t.Errorf("internal details leaked: %q", body.Error)
	}
}

func TestErrorHandler_UnauthorizedSetsWWWAuthenticate(t *testing.T) {
	for _, err := range []error{
		domain.ErrInvalidToken,
		echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials"),
	} {
		rec := handleError(t, err)
		if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
			t.Errorf("%v: expected WWW-Authenticate: Bearer, got %q", err, got)
		}
	}
}

func TestErrorHandler_NonUnauthorizedOmitsWWWAuthenticate(t *testing.T) {
	rec := handleError(t, domain.ErrEmailDomainNotAllowed)
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "" {
		t.Errorf("unexpected WWW-Authenticate on 403: %q", got)
	}
}
