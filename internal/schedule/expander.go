// Package schedule turns admin-declared audition blocks into the discrete
// bookable slots members see. Everything in this package is pure: stores
// hand in blocks and booked timestamps, handlers get candidate slots back.
package schedule

import (
	"time"

	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
)

// Slot is one bookable unit of time within a block. At is the slot's
// start; Label is the string members see and submit back.
type Slot struct {
	At    time.Time `json:"-"`
	Label string    `json:"label"`
}

// BookedSet normalizes booked slot timestamps into a lookup set. Times are
// reduced to UTC minute precision so values scanned from the database
// compare equal to cursor values computed in memory.
func BookedSet(times []time.Time) map[time.Time]bool {
	set := make(map[time.Time]bool, len(times))
	for _, t := range times {
		set[minuteKey(t)] = true
	}
	return set
}

// Expand walks a block from StartsAt in SlotLength steps and emits a
// candidate slot at each cursor position not already booked.
//
// The loop runs while cursor <= EndsAt, not <: a slot starting exactly at
// EndsAt is still emitted and runs past the block's nominal end. The
// signup flow has always worked this way, so it is reproduced here rather
// than corrected; TestExpandBoundarySlot pins it.
func Expand(b repository.AuditionBlock, booked map[time.Time]bool) []Slot {
	if b.SlotLength <= 0 {
		return nil
	}
	var out []Slot
	for cur := b.StartsAt; !cur.After(b.EndsAt); cur = cur.Add(b.SlotLength) {
		if booked[minuteKey(cur)] {
			continue
		}
		out = append(out, Slot{At: cur, Label: Label(cur)})
	}
	return out
}

// Candidates expands every upcoming block of one show and concatenates the
// results. Slots are ordered within each block by generation; blocks keep
// the store's (date, start) order. No cross-block sort is applied.
func Candidates(blocks []repository.AuditionBlock, show string, booked map[time.Time]bool, now time.Time) []Slot {
	var out []Slot
	for _, b := range Upcoming(blocks, now) {
		if b.Show != show {
			continue
		}
		out = append(out, Expand(b, booked)...)
	}
	return out
}

func minuteKey(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}
