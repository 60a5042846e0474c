package schedule

import (
	"testing"
	"time"
)

func TestLabelFormat(t *testing.T) {
	at := time.Date(2026, time.September, 14, 18, 30, 0, 0, time.UTC)
	got := Label(at)
	want := "Monday September 14 2026::18:30"
	if got != want {
		t.Errorf("Label(%v) = %q, want %q", at, got, want)
	}
}

func TestLabelRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(2026, time.September, 14, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.December, 31, 23, 55, 0, 0, time.UTC),
		time.Date(2027, time.February, 28, 9, 5, 0, 0, time.UTC),
	}
	for _, at := range cases {
		back, err := ParseLabel(Label(at))
		if err != nil {
			t.Errorf("ParseLabel(Label(%v)): %v", at, err)
			continue
		}
		if !back.Equal(at) {
			t.Errorf("round trip: got %v, want %v", back, at)
		}
	}
}

// Every label the expander emits must survive the round trip, to the minute.
func TestExpandedLabelsRoundTrip(t *testing.T) {
	b := block("hamlet", day, 9, 30, 3*time.Hour, 15*time.Minute)
	for _, s := range Expand(b, nil) {
		back, err := ParseLabel(s.Label)
		if err != nil {
			t.Fatalf("ParseLabel(%q): %v", s.Label, err)
		}
		if !back.Equal(s.At) {
			t.Errorf("label %q: parsed %v, want %v", s.Label, back, s.At)
		}
	}
}

func TestParseLabelRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"no delimiter here",
		"Monday September 14 2026",
		"Monday September 14 2026::",
		"::18:30",
		"Monday September 14 2026::25:99",
		"14/09/2026::18:30",
		"Monday September 14 2026::18:30:00",
	}
	for _, s := range bad {
		if _, err := ParseLabel(s); err == nil {
			t.Errorf("ParseLabel(%q) accepted malformed input", s)
		}
	}
}
