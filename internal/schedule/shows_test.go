package schedule

import (
	"testing"
	"time"

	"github.com/iliyamo/troupe-audition-scheduler/internal/repository"
)

func TestUpcomingFiltersByDate(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	past := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	blocks := []struct {
		day  time.Time
		want bool
	}{
		{past, false},
		{time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), false}, // today's date is not after now
		{day, true},
	}
	for _, tc := range blocks {
		got := Upcoming([]repository.AuditionBlock{block("hamlet", tc.day, 10, 0, time.Hour, 10*time.Minute)}, now)
		if (len(got) == 1) != tc.want {
			t.Errorf("block on %v: upcoming=%v, want %v", tc.day, len(got) == 1, tc.want)
		}
	}
}

func TestShowsDistinctFirstSeen(t *testing.T) {
	blocks := []repository.AuditionBlock{
		block("hamlet", day, 10, 0, time.Hour, 10*time.Minute),
		block("macbeth", day, 12, 0, time.Hour, 10*time.Minute),
		block("hamlet", day.Add(24*time.Hour), 10, 0, time.Hour, 10*time.Minute),
	}
	got := Shows(blocks)
	if len(got) != 2 || got[0] != "hamlet" || got[1] != "macbeth" {
		t.Errorf("Shows = %v, want [hamlet macbeth]", got)
	}
}

func TestSelectShowZeroIsTerminal(t *testing.T) {
	now := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC) // everything is past
	blocks := []repository.AuditionBlock{block("hamlet", day, 10, 0, time.Hour, 10*time.Minute)}
	sel := SelectShow(blocks, now)
	if len(sel.Shows) != 0 || sel.AutoSelected != "" {
		t.Errorf("SelectShow = %+v, want empty terminal outcome", sel)
	}
}

func TestSelectShowAutoSkipsSingleShow(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	blocks := []repository.AuditionBlock{
		block("hamlet", day, 10, 0, time.Hour, 10*time.Minute),
		block("hamlet", day.Add(24*time.Hour), 10, 0, time.Hour, 10*time.Minute),
	}
	sel := SelectShow(blocks, now)
	if sel.AutoSelected != "hamlet" {
		t.Errorf("AutoSelected = %q, want hamlet", sel.AutoSelected)
	}
}

func TestSelectShowMultipleNeedsChoice(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	blocks := []repository.AuditionBlock{
		block("hamlet", day, 10, 0, time.Hour, 10*time.Minute),
		block("macbeth", day, 12, 0, time.Hour, 10*time.Minute),
	}
	sel := SelectShow(blocks, now)
	if len(sel.Shows) != 2 || sel.AutoSelected != "" {
		t.Errorf("SelectShow = %+v, want two shows and no auto-select", sel)
	}
}
