package handler

// Admin-side endpoints: declaring audition blocks and reviewing who signed
// up for what. Blocks are immutable once created — there is deliberately
// no edit or delete route.

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
	"github.com/iliyamo/troupe-audition-scheduler/internal/schedule"
)

// AdminHandler groups the stores admins manage.
type AdminHandler struct {
	Blocks   *repository.BlockRepo
	Bookings *repository.BookingRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any dependency
// is nil.
func NewAdminHandler(blocks *repository.BlockRepo, bookings *repository.BookingRepo) *AdminHandler {
	if blocks == nil || bookings == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Blocks: blocks, Bookings: bookings}
}

// createBlockReq carries the admin's block declaration. Durations travel
// as Go duration strings ("2h", "10m") and dates/times in fixed layouts;
// everything is converted to native types here at the boundary and stays
// typed from then on.
type createBlockReq struct {
	Show           string `json:"show"`
	Date           string `json:"date"`            // "2006-01-02"
	StartTime      string `json:"start_time"`      // "15:04"
	BlockLength    string `json:"block_length"`    // e.g. "2h", 1h-8h
	AuditionLength string `json:"audition_length"` // e.g. "10m", 5-30m in 5m steps
}

// blockResp renders a block for API responses.
type blockResp struct {
	ID         uint64 `json:"id"`
	Show       string `json:"show"`
	Date       string `json:"date"`
	StartsAt   string `json:"starts_at"`
	EndsAt     string `json:"ends_at"`
	SlotLength string `json:"slot_length"`
}

func renderBlock(b repository.AuditionBlock) blockResp {
	return blockResp{
		ID:         b.ID,
		Show:       b.Show,
		Date:       b.Date.UTC().Format("2006-01-02"),
		StartsAt:   b.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:     b.EndsAt.UTC().Format(time.RFC3339),
		SlotLength: b.SlotLength.String(),
	}
}

// CreateBlock handles POST /v1/admin/audition-blocks. The end time is
// derived from start + block length; the per-auditioner slot length must
// be 5–30 minutes in 5-minute steps and the block 1–8 hours, the same
// bounds the old signup form offered.
func (h *AdminHandler) CreateBlock(c echo.Context) error {
	var req createBlockReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Show = strings.TrimSpace(req.Show)
	if req.Show == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "show is required"})
	}
	day, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, want YYYY-MM-DD"})
	}
	clock, err := time.Parse("15:04", strings.TrimSpace(req.StartTime))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time, want HH:MM"})
	}
	blockLen, err := time.ParseDuration(strings.TrimSpace(req.BlockLength))
	if err != nil || blockLen < time.Hour || blockLen > 8*time.Hour {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "block_length must be between 1h and 8h"})
	}
	slotLen, err := time.ParseDuration(strings.TrimSpace(req.AuditionLength))
	if err != nil || slotLen < 5*time.Minute || slotLen > 30*time.Minute || slotLen%(5*time.Minute) != 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "audition_length must be 5m to 30m in 5m steps"})
	}

	starts := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	block := repository.AuditionBlock{
		Show:       req.Show,
		Date:       time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		StartsAt:   starts,
		EndsAt:     starts.Add(blockLen),
		SlotLength: slotLen,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Blocks.Create(ctx, &block); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create block failed"})
	}
	return c.JSON(http.StatusCreated, renderBlock(block))
}

// ListBlocks handles GET /v1/admin/audition-blocks and returns every block,
// past and upcoming, ordered by date then start time.
func (h *AdminHandler) ListBlocks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blocks, err := h.Blocks.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]blockResp, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, renderBlock(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"blocks": out})
}

// showBookingResp is one row of the admin's audition-day sheet.
type showBookingResp struct {
	Slot      string `json:"slot"`
	UserID    uint64 `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// ShowBookings handles GET /v1/admin/shows/:show/bookings. It returns each
// booked slot joined with the auditioner, ordered by slot time. An unknown
// show yields an empty list, not an error.
func (h *AdminHandler) ShowBookings(c echo.Context) error {
	show := strings.TrimSpace(c.Param("show"))
	if show == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "show is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	details, err := h.Bookings.ListByShow(ctx, show)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]showBookingResp, 0, len(details))
	for _, d := range details {
		out = append(out, showBookingResp{
			Slot:      schedule.Label(d.SlotAt),
			UserID:    d.UserID,
			UserName:  d.UserName,
			UserEmail: d.UserEmail,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"show": show, "bookings": out})
}
