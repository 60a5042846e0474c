package handler

// Public browse endpoint: anyone can see which shows have upcoming
// audition days without an account. Responses are cacheable — the router
// wraps this route in the Redis response cache.

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
	"github.com/iliyamo/troupe-audition-scheduler/internal/schedule"
)

// PublicHandler exposes sanitized audition data to guests.
type PublicHandler struct {
	Blocks *repository.BlockRepo
}

func NewPublicHandler(blocks *repository.BlockRepo) *PublicHandler {
	if blocks == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Blocks: blocks}
}

type upcomingShow struct {
	Show  string   `json:"show"`
	Dates []string `json:"dates"`
}

// UpcomingAuditions handles GET /v1/auditions/upcoming. It lists each show
// with upcoming blocks and the dates auditions run, without slot detail —
// signing up requires an account.
func (h *PublicHandler) UpcomingAuditions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blocks, err := h.Blocks.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	upcoming := schedule.Upcoming(blocks, time.Now().UTC())

	byShow := make(map[string][]string)
	for _, b := range upcoming {
		byShow[b.Show] = append(byShow[b.Show], b.Date.UTC().Format("2006-01-02"))
	}
	out := make([]upcomingShow, 0, len(byShow))
	for _, show := range schedule.Shows(upcoming) {
		out = append(out, upcomingShow{Show: show, Dates: byShow[show]})
	}
	return c.JSON(http.StatusOK, echo.Map{"auditions": out})
}
