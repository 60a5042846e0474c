// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrSlotTaken indicates that another user claimed an audition
// slot between the time the candidate list was rendered and the time the
// booking insert ran; handlers turn it into a retryable "pick another
// slot" response instead of a server fault.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a lookup matches no row. Handlers should
// translate this into an HTTP 404 response or an empty result set.
var ErrNotFound = errors.New("not found")

// ErrSlotTaken is returned when inserting a booking violates the
// (show, slot) uniqueness constraint. Handlers should translate this
// into an HTTP 409 response telling the user to choose another slot.
var ErrSlotTaken = errors.New("slot already taken")

// ErrLastWebmaster is returned when a role change would leave the site
// with no webmaster-level account.
var ErrLastWebmaster = errors.New("at least one webmaster is required")

// isDuplicate reports whether err is a MySQL duplicate-key error (1062),
// optionally on the named unique key.
func isDuplicate(err error, key string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "1062") {
		return false
	}
	return key == "" || strings.Contains(msg, strings.ToLower(key))
}
