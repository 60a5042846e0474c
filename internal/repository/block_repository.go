// Package repository contains data access logic for the audition domain.
// This file defines the AuditionBlock model and its repository. A block is
// an admin-declared contiguous window during which auditions for one show
// run on one date; the schedule package expands it into bookable slots.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// AuditionBlock mirrors the 'audition_blocks' table. Blocks are immutable
// once created: there is no update or delete path.
//
// SlotLength is the per-auditioner duration; it is stored as whole seconds
// (slot_length_sec) and converted at the scan boundary so everything above
// the repository works with time.Duration. All timestamps are UTC.
type AuditionBlock struct {
	ID         uint64
	Show       string
	Date       time.Time // calendar date of the block (midnight UTC)
	StartsAt   time.Time
	EndsAt     time.Time
	SlotLength time.Duration
	CreatedAt  time.Time
}

// BlockRepo manages persistence for audition blocks.
type BlockRepo struct {
	db *sql.DB
}

// NewBlockRepo constructs a BlockRepo with the given DB handle.
func NewBlockRepo(db *sql.DB) *BlockRepo { return &BlockRepo{db: db} }

const blockCols = "id, show_name, audition_on, starts_at, ends_at, slot_length_sec, created_at"

// Create inserts a new block and assigns the generated ID and creation
// timestamp back to the struct. Validation (start < end, slot length
// bounds) belongs to the handler; the repository stores what it is given.
func (r *BlockRepo) Create(ctx context.Context, b *AuditionBlock) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO audition_blocks (show_name, audition_on, starts_at, ends_at, slot_length_sec)
		 VALUES (?,?,?,?,?)`,
		b.Show, b.Date, b.StartsAt, b.EndsAt, int64(b.SlotLength/time.Second))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT created_at FROM audition_blocks WHERE id=?", b.ID).Scan(&b.CreatedAt)
}

// ListAll returns every block ordered by date then start time. Callers
// filter for "upcoming" themselves; the store does not second-guess them.
func (r *BlockRepo) ListAll(ctx context.Context) ([]AuditionBlock, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+blockCols+" FROM audition_blocks ORDER BY audition_on, starts_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBlocks(rows)
}

// ListByShow returns the blocks of one show ordered by date then start time.
func (r *BlockRepo) ListByShow(ctx context.Context, show string) ([]AuditionBlock, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+blockCols+" FROM audition_blocks WHERE show_name=? ORDER BY audition_on, starts_at",
		show)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBlocks(rows)
}

func scanBlocks(rows *sql.Rows) ([]AuditionBlock, error) {
	var out []AuditionBlock
	for rows.Next() {
		var b AuditionBlock
		var slotSec int64
		if err := rows.Scan(&b.ID, &b.Show, &b.Date, &b.StartsAt, &b.EndsAt, &slotSec, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.SlotLength = time.Duration(slotSec) * time.Second
		out = append(out, b)
	}
	return out, rows.Err()
}
