package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/service"
)

func newIssuer(t *testing.T) *service.TokenIssuer {
	t.Helper()
	issuer, err := service.NewTokenIssuer("secret", time.Hour)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	return issuer
}

// runAuth executes the Auth middleware with the given header and returns the
// recorded status. next is only reached for valid tokens.
func runAuth(t *testing.T, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth(newIssuer(t))(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func mustNotReach(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := newIssuer(t).Issue(&domain.Administrator{ID: 1, Email: "alice@test.com", Role: domain.RoleEditor})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	rec := runAuth(t, "Bearer "+token, func(c echo.Context) error {
		called = true
		if c.Get(ContextEmail) != "alice@test.com" {
			t.Fatalf("email not set")
		}
		if c.Get(ContextRole) != domain.RoleEditor {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	if rec := runAuth(t, "", mustNotReach(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	for _, h := range []string{"Token abc", "Bearer", "Bearer "} {
		if rec := runAuth(t, h, mustNotReach(t)); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", h, rec.Code)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	if rec := runAuth(t, "Bearer not-a-token", mustNotReach(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "alice@test.com",
		"role":  domain.RoleAdm,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if rec := runAuth(t, "Bearer "+expired, mustNotReach(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_TokenWithoutExpiry(t *testing.T) {
	forever, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": domain.RoleAdm,
	}).SignedString([]byte("secret"))

	if rec := runAuth(t, "Bearer "+forever, mustNotReach(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
