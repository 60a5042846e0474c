// Package worker holds long-running background loops that run alongside
// the HTTP server.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
	queue_publisher "github.com/iliyamo/troupe-audition-scheduler/internal/service"
)

// ReminderWorker publishes a day-of reminder mail for every booking whose
// slot falls on the current UTC day. It runs once at startup and then
// every interval; a sensible interval is 24h. Reminders are best-effort:
// a publish failure is logged and the loop moves on.
type ReminderWorker struct {
	Bookings *repository.BookingRepo
	From     string
	Interval time.Duration
	Logger   *zap.Logger
}

// Run blocks until ctx is cancelled.
func (w *ReminderWorker) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ReminderWorker) sweep(ctx context.Context) {
	qctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	today := time.Now().UTC()
	bookings, err := w.Bookings.ListForDay(qctx, today)
	cancel()
	if err != nil {
		w.Logger.Error("reminder: list bookings failed", zap.Error(err))
		return
	}
	// Each publish dials the broker, so each gets its own deadline; one
	// slow delivery must not starve the rest of the day's reminders.
	for _, b := range bookings {
		ev := queue_publisher.ReminderEvent(w.From, b.UserEmail, b.Show, b.SlotAt)
		pubCtx, pubCancel := context.WithTimeout(ctx, 5*time.Second)
		err := queue_publisher.PublishEmail(pubCtx, ev)
		pubCancel()
		if err != nil {
			w.Logger.Warn("reminder: publish failed",
				zap.String("show", b.Show), zap.Uint64("user_id", b.UserID), zap.Error(err))
		}
	}
	if len(bookings) > 0 {
		w.Logger.Info("reminder: sweep complete",
			zap.Int("bookings", len(bookings)), zap.String("day", today.Format("2006-01-02")))
	}
}
