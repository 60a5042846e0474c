// Package queue_publisher provides functions to publish notification events
// to RabbitMQ. Errors are logged and returned so callers can ignore
// failures without interrupting the main request flow — a lost email must
// never roll back a booking.
package queue_publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/troupe-audition-scheduler/internal/queue"
	"github.com/iliyamo/troupe-audition-scheduler/internal/schedule"
)

const emailQueueName = "notify.email"

// PublishEmail publishes an EmailEvent to the notify.email queue. The
// function never panics; any error is logged and returned so the caller
// can choose to ignore it. Messages are marked as persistent.
func PublishEmail(ctx context.Context, event q.EmailEvent) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		emailQueueName, // name
		true,           // durable
		false,          // autoDelete
		false,          // exclusive
		false,          // noWait
		nil,            // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	if event.SentAt == "" {
		event.SentAt = time.Now().UTC().Format(time.RFC3339)
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",             // default exchange
		emailQueueName, // routing key = queue name
		false,          // mandatory
		false,          // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}

// WelcomeEvent builds the registration welcome mail.
func WelcomeEvent(from, to string) q.EmailEvent {
	return q.EmailEvent{
		Kind:    q.KindWelcome,
		From:    from,
		To:      []string{to},
		Subject: "Welcome to the troupe!",
		Body: "Thanks for joining us! Come visit the site to learn about what shows " +
			"we have going on, and to audition for shows and programs yourself!",
	}
}

// BookedEvent builds the confirmation mail for a freshly booked slot.
func BookedEvent(from, to, show string, slotAt time.Time) q.EmailEvent {
	return q.EmailEvent{
		Kind:    q.KindAuditionBooked,
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Your audition for %s is booked", show),
		Body: fmt.Sprintf("You are signed up to audition for %s at %s.",
			show, schedule.Label(slotAt)),
		Show:   show,
		SlotAt: slotAt.UTC().Format(time.RFC3339),
	}
}

// ReminderEvent builds the day-of audition reminder mail.
func ReminderEvent(from, to, show string, slotAt time.Time) q.EmailEvent {
	return q.EmailEvent{
		Kind:    q.KindAuditionReminder,
		From:    from,
		To:      []string{to},
		Subject: fmt.Sprintf("Remember: you have an audition for %s today!", show),
		Body: fmt.Sprintf("Friendly reminder that you have an audition for %s!!!\n%s!",
			show, schedule.Label(slotAt)),
		Show:   show,
		SlotAt: slotAt.UTC().Format(time.RFC3339),
	}
}
