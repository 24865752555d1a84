package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestUserHandler_Me(t *testing.T) {
	h := NewUserHandler()

	c, rec := newTestContext(t, httptest.NewRequest(http.MethodGet, "/me", nil), true)
	if err := h.Me(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "user_1" || resp.Email != "ab1234@nyu.edu" {
		t.Errorf("unexpected user: %+v", resp)
	}
}

func TestUserHandler_Me_WithoutUserIsUnauthorized(t *testing.T) {
	h := NewUserHandler()

	c, _ := newTestContext(t, httptest.NewRequest(http.MethodGet, "/me", nil), false)
	err := h.Me(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
