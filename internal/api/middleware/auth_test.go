package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const secret = "test-secret"

func mintToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runChain(t *testing.T, authHeader string, mw ...echo.MiddlewareFunc) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/checkouts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := mintToken(t, secret, "admin", time.Hour)

	c, err := runChain(t, "Bearer "+token, Auth(secret))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role, _ := c.Get("role").(string); role != "admin" {
		t.Errorf("role claim not injected: %v", c.Get("role"))
	}
}

func TestAuth_Rejections(t *testing.T) {
	expired := mintToken(t, secret, "admin", -time.Hour)
	wrongKey := mintToken(t, "other-secret", "admin", time.Hour)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runChain(t, tc.header, Auth(secret))
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if he.Code != http.StatusUnauthorized {
				t.Errorf("status: %d", he.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	adminToken := mintToken(t, secret, "admin", time.Hour)
	viewerToken := mintToken(t, secret, "viewer", time.Hour)

	if _, err := runChain(t, "Bearer "+adminToken, Auth(secret), RequireRole("admin")); err != nil {
		t.Fatalf("admin must pass: %v", err)
	}

	_, err := runChain(t, "Bearer "+viewerToken, Auth(secret), RequireRole("admin"))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
