package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/troupe-audition-scheduler/internal/config"
	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
)

func testAuthHandler() *AuthHandler {
	return NewAuthHandler(config.Config{},
		repository.NewUserRepo(nil),
		repository.NewTokenRepo(nil))
}

func authPost(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

// The refresh-token endpoints share one contract: a missing or blank
// refresh_token is rejected before any store lookup runs.
func TestRefreshEndpointsRequireToken(t *testing.T) {
	h := testAuthHandler()
	endpoints := map[string]echo.HandlerFunc{
		"refresh":        h.Refresh,
		"refresh-access": h.RefreshAccess,
		"logout":         h.Logout,
	}
	for name, fn := range endpoints {
		for _, body := range []string{`{}`, `{"refresh_token":"  "}`, `not json`} {
			rec := authPost(t, fn, body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("%s with body %q: status %d, want 400", name, body, rec.Code)
			}
		}
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	h := testAuthHandler()
	for _, body := range []string{
		`{}`,
		`{"name":"kim","email":"kim@troupe.test"}`,
		`{"email":"kim@troupe.test","password":"pw"}`,
		`{"name":"kim","password":"pw"}`,
	} {
		rec := authPost(t, h.Register, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status %d, want 400", body, rec.Code)
		}
	}
}
