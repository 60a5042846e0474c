package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/troupe-audition-scheduler/internal/utils"
)

const testSecret = "test-secret"

func authRequest(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.String(http.StatusOK, "in")
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, c
}

func TestJWTAuthInjectsIdentity(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, 1, 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec, c := authRequest(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if uid, ok := c.Get("user_id").(float64); !ok || uid != 42 {
		t.Errorf("user_id = %v, want 42", c.Get("user_id"))
	}
	if level, ok := c.Get("level").(float64); !ok || level != 1 {
		t.Errorf("level = %v, want 1", c.Get("level"))
	}
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec, _ := authRequest(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", rec.Code)
	}
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 42, 1, 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec, _ := authRequest(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", rec.Code)
	}
}

func TestJWTAuthRejectsGarbage(t *testing.T) {
	rec, _ := authRequest(t, "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", rec.Code)
	}
}
