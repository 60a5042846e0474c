package main // Entry point package

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/troupe-audition-scheduler/internal/config"
	"github.com/iliyamo/troupe-audition-scheduler/internal/database"
	"github.com/iliyamo/troupe-audition-scheduler/internal/handler"
	"github.com/iliyamo/troupe-audition-scheduler/internal/queue"
	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
	"github.com/iliyamo/troupe-audition-scheduler/internal/router"
	"github.com/iliyamo/troupe-audition-scheduler/internal/worker"
)

func main() {
	cfg := config.Load() // Load environment config (and .env if present)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if cfg.Env == "dev" {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}
	defer db.Close()
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("schema bootstrap failed", zap.Error(err))
	}

	// Redis is optional: a nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable; rate limiting and response cache disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	blocks := repository.NewBlockRepo(db)
	bookings := repository.NewBookingRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	auditionH := handler.NewAuditionHandler(cfg, blocks, bookings, users)
	adminH := handler.NewAdminHandler(blocks, bookings)
	userAdminH := handler.NewUserAdminHandler(users)
	publicH := handler.NewPublicHandler(blocks)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret, rdb)
	router.RegisterPublic(e, publicH, rdb)
	router.RegisterAuditions(e, auditionH, cfg.JWTSecret)
	router.RegisterAdmin(e, adminH, userAdminH, cfg.JWTSecret)

	// Background loops: the email consumer drains notify.email into the
	// outbox, the reminder worker publishes day-of audition reminders.
	go queue.StartEmailConsumer(logger)
	reminder := &worker.ReminderWorker{Bookings: bookings, From: cfg.MailFrom, Logger: logger}
	go reminder.Run(context.Background())

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
