package schedule

import (
	"time"

	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
)

// Upcoming filters blocks to those whose audition date lies after now.
// The comparison is against the calendar date, so blocks earlier on the
// current day are already excluded — the same cut the site has always
// applied.
func Upcoming(blocks []repository.AuditionBlock, now time.Time) []repository.AuditionBlock {
	var out []repository.AuditionBlock
	for _, b := range blocks {
		if b.Date.After(now) {
			out = append(out, b)
		}
	}
	return out
}

// Shows returns the distinct show names of the given blocks in first-seen
// order. Shows are implicit: there is no show table, only block names.
func Shows(blocks []repository.AuditionBlock) []string {
	seen := make(map[string]bool, len(blocks))
	var out []string
	for _, b := range blocks {
		if !seen[b.Show] {
			seen[b.Show] = true
			out = append(out, b.Show)
		}
	}
	return out
}

// ShowSelection is the outcome of the choose-a-show step. Zero shows is
// the terminal "nothing to sign up for" case; exactly one skips the
// choice screen entirely via AutoSelected.
type ShowSelection struct {
	Shows        []string
	AutoSelected string
}

// SelectShow derives the show choices from all blocks and the current time.
func SelectShow(blocks []repository.AuditionBlock, now time.Time) ShowSelection {
	shows := Shows(Upcoming(blocks, now))
	sel := ShowSelection{Shows: shows}
	if len(shows) == 1 {
		sel.AutoSelected = shows[0]
	}
	return sel
}
