package repository

import (
	"errors"
	"testing"
)

func TestIsDuplicate(t *testing.T) {
	dup := errors.New("Error 1062 (23000): Duplicate entry 'hamlet-2026-09-14 10:20:00' for key 'bookings.uq_show_slot'")
	cases := []struct {
		name string
		err  error
		key  string
		want bool
	}{
		{"nil error", nil, "", false},
		{"matching key", dup, "uq_show_slot", true},
		{"any key", dup, "", true},
		{"other key", dup, "uq_users_email", false},
		{"not a duplicate", errors.New("Error 1146: Table 'bookings' doesn't exist"), "uq_show_slot", false},
	}
	for _, tc := range cases {
		if got := isDuplicate(tc.err, tc.key); got != tc.want {
			t.Errorf("%s: isDuplicate = %v, want %v", tc.name, got, tc.want)
		}
	}
}
