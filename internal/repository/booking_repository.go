package repository

import (
	"context"
	"database/sql"
	"time"
)

// Booking mirrors the 'bookings' table: one user's claim on one discrete
// slot of one show. The table enforces two unique keys — (show, slot) and
// (user, show) — so double-booked slots and duplicate per-show signups are
// impossible at the storage layer, not just at render time.
type Booking struct {
	ID        uint64
	Show      string
	SlotAt    time.Time
	UserID    uint64
	CreatedAt time.Time
}

// BookingDetail is a booking joined with the owning user, as shown to
// admins reviewing an audition day.
type BookingDetail struct {
	ID        uint64    `json:"id"`
	Show      string    `json:"show"`
	SlotAt    time.Time `json:"slot_at"`
	UserID    uint64    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}

// BookingRepo manages persistence for bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB so handlers can run the
// delete-then-insert replace inside a single transaction.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// ListByShow returns every booking for a show joined with the auditioner's
// name and email, ordered by slot time.
func (r *BookingRepo) ListByShow(ctx context.Context, show string) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, b.show_name, b.slot_at, b.user_id, u.name, u.email
		 FROM bookings b JOIN users u ON u.id = b.user_id
		 WHERE b.show_name=? ORDER BY b.slot_at`,
		show)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BookingDetail
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(&d.ID, &d.Show, &d.SlotAt, &d.UserID, &d.UserName, &d.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByUserAndShow returns the user's booking for a show, or ErrNotFound.
func (r *BookingRepo) GetByUserAndShow(ctx context.Context, userID uint64, show string) (Booking, error) {
	var b Booking
	err := r.db.QueryRowContext(ctx,
		"SELECT id, show_name, slot_at, user_id, created_at FROM bookings WHERE user_id=? AND show_name=? LIMIT 1",
		userID, show).Scan(&b.ID, &b.Show, &b.SlotAt, &b.UserID, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return Booking{}, ErrNotFound
	}
	return b, err
}

// SlotTimes returns the slot timestamps already booked for a show. The
// schedule package uses this set to filter expanded candidates.
func (r *BookingRepo) SlotTimes(ctx context.Context, show string) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT slot_at FROM bookings WHERE show_name=?", show)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateTx inserts a booking within the caller's transaction. A duplicate
// on uq_show_slot means another user claimed the slot after the candidate
// list was rendered; a duplicate on uq_user_show means the same user
// submitted twice concurrently and the other replace won. Both are
// retryable, so both surface as ErrSlotTaken.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *Booking) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (show_name, slot_at, user_id) VALUES (?,?,?)",
		b.Show, b.SlotAt, b.UserID)
	if err != nil {
		if isDuplicate(err, "uq_show_slot") || isDuplicate(err, "uq_user_show") {
			return ErrSlotTaken
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// DeleteByUserShowTx removes the user's booking for a show, if any, within
// the caller's transaction. Deleting a booking that does not exist is not
// an error: the replace flow calls this unconditionally.
func (r *BookingRepo) DeleteByUserShowTx(ctx context.Context, tx *sql.Tx, userID uint64, show string) error {
	_, err := tx.ExecContext(ctx,
		"DELETE FROM bookings WHERE user_id=? AND show_name=?", userID, show)
	return err
}

// ListForDay returns bookings whose slot falls on the given UTC day,
// joined with the auditioner's contact details. The reminder worker uses
// this to send day-of notifications.
func (r *BookingRepo) ListForDay(ctx context.Context, day time.Time) ([]BookingDetail, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, b.show_name, b.slot_at, b.user_id, u.name, u.email
		 FROM bookings b JOIN users u ON u.id = b.user_id
		 WHERE b.slot_at >= ? AND b.slot_at < ? ORDER BY b.slot_at`,
		start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BookingDetail
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(&d.ID, &d.Show, &d.SlotAt, &d.UserID, &d.UserName, &d.UserEmail); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
