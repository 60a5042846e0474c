package handler

// Webmaster-only role management. The one policy rule here: the site can
// never be left without a webmaster, so demoting the last level-2 account
// is refused.

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
)

// UserAdminHandler exposes the identity store to webmasters.
type UserAdminHandler struct {
	Users *repository.UserRepo
}

func NewUserAdminHandler(users *repository.UserRepo) *UserAdminHandler {
	if users == nil {
		panic("nil repository passed to NewUserAdminHandler")
	}
	return &UserAdminHandler{Users: users}
}

type userRow struct {
	ID     uint64    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Level  uint8     `json:"level"`
	Joined time.Time `json:"joined"`
}

// ListUsers handles GET /v1/admin/users.
func (h *UserAdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]userRow, 0, len(users))
	for _, u := range users {
		out = append(out, userRow{ID: u.ID, Name: u.Name, Email: u.Email, Level: u.Level, Joined: u.CreatedAt})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": out})
}

type setRoleReq struct {
	Level uint8 `json:"level"`
}

// SetRole handles PUT /v1/admin/users/:id/role. Level changes are visible
// to the very next permission check: tokens carry the level claim, but
// fresh logins and refreshes reread it from the store.
func (h *UserAdminHandler) SetRole(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var req setRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Level > repository.LevelWebmaster {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "level must be 0, 1 or 2"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Users.SetLevel(ctx, userID, req.Level); err {
	case nil:
		return c.JSON(http.StatusOK, echo.Map{"user_id": userID, "level": req.Level})
	case repository.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	case repository.ErrLastWebmaster:
		return c.JSON(http.StatusConflict, echo.Map{"error": "cannot demote the last webmaster"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
}
