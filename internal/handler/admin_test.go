package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
)

func createBlockRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/audition-blocks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := NewAdminHandler(repository.NewBlockRepo(nil), repository.NewBookingRepo(nil))
	if err := h.CreateBlock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

// Every case here fails validation before the store is touched.
func TestCreateBlockValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			"missing show",
			`{"date":"2026-09-14","start_time":"10:00","block_length":"2h","audition_length":"10m"}`,
			"show is required",
		},
		{
			"bad date",
			`{"show":"hamlet","date":"14-09-2026","start_time":"10:00","block_length":"2h","audition_length":"10m"}`,
			"invalid date",
		},
		{
			"bad start time",
			`{"show":"hamlet","date":"2026-09-14","start_time":"10am","block_length":"2h","audition_length":"10m"}`,
			"invalid start_time",
		},
		{
			"block too short",
			`{"show":"hamlet","date":"2026-09-14","start_time":"10:00","block_length":"30m","audition_length":"10m"}`,
			"block_length",
		},
		{
			"block too long",
			`{"show":"hamlet","date":"2026-09-14","start_time":"10:00","block_length":"9h","audition_length":"10m"}`,
			"block_length",
		},
		{
			"slot off the 5m grid",
			`{"show":"hamlet","date":"2026-09-14","start_time":"10:00","block_length":"2h","audition_length":"7m"}`,
			"audition_length",
		},
		{
			"slot too long",
			`{"show":"hamlet","date":"2026-09-14","start_time":"10:00","block_length":"2h","audition_length":"45m"}`,
			"audition_length",
		},
		{
			"slot too short",
			`{"show":"hamlet","date":"2026-09-14","start_time":"10:00","block_length":"2h","audition_length":"4m"}`,
			"audition_length",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := createBlockRequest(t, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.wantMsg) {
				t.Errorf("body %s, want %q", rec.Body.String(), tc.wantMsg)
			}
		})
	}
}

func TestShowBookingsRequiresShow(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/shows//bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("show")
	c.SetParamValues("  ")
	h := NewAdminHandler(repository.NewBlockRepo(nil), repository.NewBookingRepo(nil))
	if err := h.ShowBookings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}
