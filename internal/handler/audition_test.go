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

// testAuditionHandler builds a handler whose repositories carry no live
// database. The cases below only exercise paths that fail validation
// before any query runs.
func testAuditionHandler() *AuditionHandler {
	return NewAuditionHandler(config.Config{},
		repository.NewBlockRepo(nil),
		repository.NewBookingRepo(nil),
		repository.NewUserRepo(nil))
}

func bookRequest(t *testing.T, userID interface{}, show, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auditions/shows/"+show+"/slots", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("show")
	c.SetParamValues(show)
	if userID != nil {
		c.Set("user_id", userID)
	}
	if err := testAuditionHandler().BookSlot(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestBookSlotRequiresIdentity(t *testing.T) {
	rec := bookRequest(t, nil, "hamlet", `{"slot":"Monday September 14 2026::10:00"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401; body %s", rec.Code, rec.Body.String())
	}
}

func TestBookSlotRequiresSlot(t *testing.T) {
	for _, body := range []string{`{}`, `{"slot":"   "}`, `not json`} {
		rec := bookRequest(t, float64(7), "hamlet", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status %d, want 400", body, rec.Code)
		}
	}
}

func TestBookSlotRejectsMalformedLabel(t *testing.T) {
	for _, slot := range []string{
		"10:00",
		"Monday September 14 2026",
		"Monday September 14 2026::25:99",
		"September 14 2026::10:00",
	} {
		rec := bookRequest(t, float64(7), "hamlet", `{"slot":"`+slot+`"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("slot %q: status %d, want 400; body %s", slot, rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "invalid slot") {
			t.Errorf("slot %q: body %s, want invalid slot error", slot, rec.Body.String())
		}
	}
}

func TestListSlotsRequiresIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auditions/shows/hamlet/slots", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("show")
	c.SetParamValues("hamlet")
	if err := testAuditionHandler().ListSlots(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", rec.Code)
	}
}
