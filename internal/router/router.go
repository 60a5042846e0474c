package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/troupe-audition-scheduler/internal/config"
	"github.com/iliyamo/troupe-audition-scheduler/internal/handler"
	"github.com/iliyamo/troupe-audition-scheduler/internal/middleware"
	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware. Unauthenticated operations live under /v1/auth and
// are rate limited per client; protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, rdb *redis.Client) {
	g := e.Group("/v1/auth")
	g.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/logout-all", a.LogoutAll)
}

// RegisterPublic registers unauthenticated browse endpoints. These routes
// apply no JWT middleware; the upcoming-auditions listing is wrapped in
// the Redis response cache because it is identical for every guest.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	e.GET("/v1/auditions/upcoming", p.UpcomingAuditions, cache)
}

// RegisterAuditions registers the member signup flow. Every route requires
// a valid access token; the role gate is the ordinal level check, and
// plain members (level 0) pass it.
func RegisterAuditions(e *echo.Echo, h *handler.AuditionHandler, jwtSecret string) {
	g := e.Group("/v1/auditions")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireLevel(repository.LevelMember))
	g.GET("/shows", h.ListShows)
	g.GET("/shows/:show/slots", h.ListSlots)
	g.POST("/shows/:show/slots", h.BookSlot)
}

// RegisterAdmin registers block management and booking review for admins
// (level >= 1) and user role management for webmasters (level 2).
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, u *handler.UserAdminHandler, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))

	blocks := g.Group("", middleware.RequireLevel(repository.LevelAdmin))
	blocks.POST("/audition-blocks", a.CreateBlock)
	blocks.GET("/audition-blocks", a.ListBlocks)
	blocks.GET("/shows/:show/bookings", a.ShowBookings)

	users := g.Group("/users", middleware.RequireLevel(repository.LevelWebmaster))
	users.GET("", u.ListUsers)
	users.PUT("/:id/role", u.SetRole)
}
