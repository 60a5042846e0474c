package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func bookingRepoWithMock(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewBookingRepo(db), mock, db
}

// The replace flow: drop the member's prior booking for the show and
// insert the new one, both inside a single transaction, so the member is
// never observed with zero bookings mid-replace.
func TestReplaceBookingRunsInOneTransaction(t *testing.T) {
	repo, mock, db := bookingRepoWithMock(t)
	slotAt := time.Date(2026, 9, 14, 10, 20, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(uint64(7), "hamlet").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("hamlet", slotAt, uint64(7)).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := repo.DeleteByUserShowTx(ctx, tx, 7, "hamlet"); err != nil {
		t.Fatalf("delete prior booking: %v", err)
	}
	b := Booking{Show: "hamlet", SlotAt: slotAt, UserID: 7}
	if err := repo.CreateTx(ctx, tx, &b); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if b.ID != 5 {
		t.Errorf("booking ID = %d, want 5", b.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Losing the insert to a concurrent signup surfaces as ErrSlotTaken,
// whether the collision is on the slot itself or on the member's
// one-booking-per-show key.
func TestCreateTxMapsDuplicateKeys(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			"slot claimed by another user",
			errors.New("Error 1062 (23000): Duplicate entry 'hamlet-2026-09-14 10:20:00' for key 'bookings.uq_show_slot'"),
			ErrSlotTaken,
		},
		{
			"same user submitted twice",
			errors.New("Error 1062 (23000): Duplicate entry '7-hamlet' for key 'bookings.uq_user_show'"),
			ErrSlotTaken,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, db := bookingRepoWithMock(t)
			slotAt := time.Date(2026, 9, 14, 10, 20, 0, 0, time.UTC)

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO bookings").
				WithArgs("hamlet", slotAt, uint64(7)).
				WillReturnError(tc.err)
			mock.ExpectRollback()

			ctx := context.Background()
			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				t.Fatalf("begin: %v", err)
			}
			b := Booking{Show: "hamlet", SlotAt: slotAt, UserID: 7}
			if got := repo.CreateTx(ctx, tx, &b); got != tc.want {
				t.Errorf("CreateTx error = %v, want %v", got, tc.want)
			}
			_ = tx.Rollback()
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestCreateTxPassesThroughOtherErrors(t *testing.T) {
	repo, mock, db := bookingRepoWithMock(t)
	slotAt := time.Date(2026, 9, 14, 10, 20, 0, 0, time.UTC)
	boom := errors.New("Error 1146 (42S02): Table 'troupe.bookings' doesn't exist")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("hamlet", slotAt, uint64(7)).
		WillReturnError(boom)
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	b := Booking{Show: "hamlet", SlotAt: slotAt, UserID: 7}
	if got := repo.CreateTx(ctx, tx, &b); !errors.Is(got, boom) {
		t.Errorf("CreateTx error = %v, want the raw driver error", got)
	}
	_ = tx.Rollback()
}
