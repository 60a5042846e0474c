package handler

// This file implements the member-facing signup flow. It walks one request
// at a time through the same three steps the site has always had: pick a
// show (skipped when only one show is auditioning), pick a slot from the
// expanded candidate list, confirm. Confirmation replaces any booking the
// member already holds for that show — delete and insert run in a single
// transaction so no observer can see the member with zero bookings
// mid-replace.

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/troupe-audition-scheduler/internal/config"
	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
	"github.com/iliyamo/troupe-audition-scheduler/internal/schedule"
	queue_publisher "github.com/iliyamo/troupe-audition-scheduler/internal/service"
)

// AuditionHandler groups the stores the signup flow touches. All methods
// assume JWT authentication already ran; the member's identity comes from
// the request context, never from ambient session state.
type AuditionHandler struct {
	Cfg      config.Config
	Blocks   *repository.BlockRepo
	Bookings *repository.BookingRepo
	Users    *repository.UserRepo
}

// NewAuditionHandler constructs an AuditionHandler and panics if any
// dependency is nil.
func NewAuditionHandler(cfg config.Config, blocks *repository.BlockRepo, bookings *repository.BookingRepo, users *repository.UserRepo) *AuditionHandler {
	if blocks == nil || bookings == nil || users == nil {
		panic("nil repository passed to NewAuditionHandler")
	}
	return &AuditionHandler{Cfg: cfg, Blocks: blocks, Bookings: bookings, Users: users}
}

// ListShows handles GET /v1/auditions/shows — the choose-a-show step.
// With no upcoming auditions the flow is terminal; with exactly one show
// the response carries auto_selected so clients skip the choice screen.
func (h *AuditionHandler) ListShows(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blocks, err := h.Blocks.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	sel := schedule.SelectShow(blocks, time.Now().UTC())
	switch {
	case len(sel.Shows) == 0:
		return c.JSON(http.StatusOK, echo.Map{
			"shows":   []string{},
			"message": "no upcoming auditions",
		})
	case sel.AutoSelected != "":
		return c.JSON(http.StatusOK, echo.Map{
			"shows":         sel.Shows,
			"auto_selected": sel.AutoSelected,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": sel.Shows})
}

// ListSlots handles GET /v1/auditions/shows/:show/slots — the pick-a-slot
// step. Already-booked slots are filtered out of the candidates. If the
// member already holds a booking for this show the response carries a
// non-blocking warning; viewing never mutates anything.
func (h *AuditionHandler) ListSlots(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	show := strings.TrimSpace(c.Param("show"))
	if show == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "show is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	slots, err := h.candidates(ctx, show)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if slots == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no upcoming auditions for that show"})
	}

	resp := echo.Map{"show": show, "slots": labels(slots)}
	if prior, err := h.Bookings.GetByUserAndShow(ctx, userID, show); err == nil {
		resp["warning"] = fmt.Sprintf(
			"you already have an audition for %s at %s; signing up again will replace it",
			show, schedule.Label(prior.SlotAt))
	}
	return c.JSON(http.StatusOK, resp)
}

type bookSlotReq struct {
	Slot string `json:"slot"`
}

// BookSlot handles POST /v1/auditions/shows/:show/slots — confirmation.
// The submitted label must parse back to a timestamp and match a freshly
// recomputed candidate; anything else is a validation error with no state
// change. The replace itself is one transaction: drop the member's prior
// booking for the show, insert the new one. Losing the insert to a
// concurrent signup surfaces as 409 so the member can re-pick.
func (h *AuditionHandler) BookSlot(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	show := strings.TrimSpace(c.Param("show"))
	if show == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "show is required"})
	}
	var req bookSlotReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Slot) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slot is required"})
	}
	label := strings.TrimSpace(req.Slot)

	slotAt, err := schedule.ParseLabel(label)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slot"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	slots, err := h.candidates(ctx, show)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !hasLabel(slots, label) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "that time is not available, please choose another"})
	}

	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin failed"})
	}
	defer func() { _ = tx.Rollback() }()

	if err := h.Bookings.DeleteByUserShowTx(ctx, tx, userID, show); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "replace booking failed"})
	}
	booking := repository.Booking{Show: show, SlotAt: slotAt, UserID: userID}
	if err := h.Bookings.CreateTx(ctx, tx, &booking); err != nil {
		if err == repository.ErrSlotTaken {
			return c.JSON(http.StatusConflict, echo.Map{"error": "slot no longer available, please choose another"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}

	// Confirmation mail is fire-and-forget.
	if u, err := h.Users.GetByID(ctx, userID); err == nil {
		go func(email string) {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			_ = queue_publisher.PublishEmail(pubCtx,
				queue_publisher.BookedEvent(h.Cfg.MailFrom, email, show, slotAt))
		}(u.Email)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("you're signed up to audition for %s at %s", show, label),
		"show":    show,
		"slot":    label,
	})
}

// candidates returns the current bookable slots for a show: every upcoming
// block expanded, minus booked timestamps. A nil slice means the show has
// no upcoming blocks at all (as opposed to blocks that are fully booked,
// which yield an empty non-nil slice).
func (h *AuditionHandler) candidates(ctx context.Context, show string) ([]schedule.Slot, error) {
	blocks, err := h.Blocks.ListByShow(ctx, show)
	if err != nil {
		return nil, err
	}
	upcoming := schedule.Upcoming(blocks, time.Now().UTC())
	if len(upcoming) == 0 {
		return nil, nil
	}
	booked, err := h.Bookings.SlotTimes(ctx, show)
	if err != nil {
		return nil, err
	}
	slots := schedule.Candidates(blocks, show, schedule.BookedSet(booked), time.Now().UTC())
	if slots == nil {
		slots = []schedule.Slot{}
	}
	return slots, nil
}

func labels(slots []schedule.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}

func hasLabel(slots []schedule.Slot, label string) bool {
	for _, s := range slots {
		if s.Label == label {
			return true
		}
	}
	return false
}
