package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/troupe-audition-scheduler/internal/config"
	"github.com/iliyamo/troupe-audition-scheduler/internal/handler"
	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
)

// Registers every group against a bare Echo instance (nil Redis makes the
// rate limiter and cache pass-throughs) and checks the route table.
func TestRegisteredRoutes(t *testing.T) {
	cfg := config.Config{}
	users := repository.NewUserRepo(nil)
	tokens := repository.NewTokenRepo(nil)
	blocks := repository.NewBlockRepo(nil)
	bookings := repository.NewBookingRepo(nil)

	e := echo.New()
	RegisterRoutes(e)
	RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), "secret", nil)
	RegisterPublic(e, handler.NewPublicHandler(blocks), nil)
	RegisterAuditions(e, handler.NewAuditionHandler(cfg, blocks, bookings, users), "secret")
	RegisterAdmin(e, handler.NewAdminHandler(blocks, bookings), handler.NewUserAdminHandler(users), "secret")

	want := map[string]string{
		"/healthz":                         http.MethodGet,
		"/v1/auth/register":                http.MethodPost,
		"/v1/auth/login":                   http.MethodPost,
		"/v1/auth/refresh":                 http.MethodPost,
		"/v1/auth/refresh-access":          http.MethodPost,
		"/v1/auth/logout":                  http.MethodPost,
		"/v1/me":                           http.MethodGet,
		"/v1/logout-all":                   http.MethodPost,
		"/v1/auditions/upcoming":           http.MethodGet,
		"/v1/auditions/shows":              http.MethodGet,
		"/v1/auditions/shows/:show/slots":  http.MethodPost,
		"/v1/admin/audition-blocks":        http.MethodPost,
		"/v1/admin/shows/:show/bookings":   http.MethodGet,
		"/v1/admin/users":                  http.MethodGet,
		"/v1/admin/users/:id/role":         http.MethodPut,
	}
	got := make(map[string]bool)
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for path, method := range want {
		if !got[method+" "+path] {
			t.Errorf("route %s %s not registered", method, path)
		}
	}
}
