package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender is implemented by the mail package; the worker stays
// decoupled from SMTP details.
type NotificationSender interface {
	SendBookingNotification(payload LeadCreatedPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
}

func NewWorker(ch *amqp.Channel, sender NotificationSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[worker] consume failed: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCreatedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] malformed message, rejecting: %s", err)
				// Rotten message; no requeue or it blocks the queue.
				d.Nack(false, false)
				continue
			}

			if err := w.Sender.SendBookingNotification(payload); err != nil {
				log.Printf("[worker] notification failed for lead %s: %s", payload.RecordID, err)
				d.Nack(false, false)
			} else {
				log.Printf("[worker] dealer notified about lead %s (%s %s)", payload.RecordID, payload.FirstName, payload.LastName)
				d.Ack(false)
			}
		}
	}()

	log.Printf("[worker] waiting on queue %q", queueName)
	<-forever
}
