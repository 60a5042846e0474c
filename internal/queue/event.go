// Package queue defines message payloads exchanged over the message broker.
package queue

// Email event kinds. The consumer uses the kind only for logging; the
// rendered subject and body are built by the publisher so that a consumer
// never needs the primary database.
const (
	KindWelcome          = "welcome"
	KindAuditionBooked   = "audition.booked"
	KindAuditionReminder = "audition.reminder"
)

// EmailEvent is published whenever the application wants a mail sent:
// a welcome note on registration, a confirmation when an audition slot is
// booked, and a day-of reminder. Delivery is fire-and-forget — publish
// failures are logged and never surface into booking state.
type EmailEvent struct {
	Kind    string   `json:"kind"`
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Show    string   `json:"show,omitempty"`
	SlotAt  string   `json:"slot_at,omitempty"`
	SentAt  string   `json:"sent_at"`
}
