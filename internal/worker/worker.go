package worker

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/infrastructure/messaging"
	"github.com/you/runmate/internal/infrastructure/notifications"
)

// Worker consumes notification events from the broker and pushes them
// through a delivery channel. The HTTP service already persisted the
// notification row; this side handles out-of-band delivery only.
type Worker struct {
	consumer *messaging.Consumer
	notifier notifications.Notifier
}

func New(consumer *messaging.Consumer, notifier notifications.Notifier) *Worker {
	return &Worker{consumer: consumer, notifier: notifier}
}

// Run consumes deliveries until ctx is cancelled. A payload that cannot
// be decoded is dropped; a delivery failure is requeued once.
func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.consumer.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(d)
		}
	}
}

func (w *Worker) handle(d amqp.Delivery) {
	if err := w.dispatch(d.RoutingKey, d.Body); err != nil {
		log.Printf("DELIVERY_FAILED: key=%s redelivered=%t err=%v", d.RoutingKey, d.Redelivered, err)
		_ = d.Nack(false, !d.Redelivered)
		return
	}
	_ = d.Ack(false)
}

func (w *Worker) dispatch(key string, body []byte) error {
	switch key {
	case domain.RKInterestCreated:
		ev, err := domain.DecodeEvent[domain.InterestCreated](body)
		if err != nil {
			log.Printf("DROP_MALFORMED_EVENT: key=%s err=%v", key, err)
			return nil
		}
		subject := fmt.Sprintf("user:%d interest:%s", ev.OwnerID, ev.EventID)
		return w.notifier.Notify(subject, ev.Message)
	case domain.RKRunJoined:
		ev, err := domain.DecodeEvent[domain.RunJoined](body)
		if err != nil {
			log.Printf("DROP_MALFORMED_EVENT: key=%s err=%v", key, err)
			return nil
		}
		subject := fmt.Sprintf("user:%d join:%s", ev.CreatorID, ev.EventID)
		return w.notifier.Notify(subject, ev.Message)
	default:
		log.Printf("DROP_UNKNOWN_EVENT: key=%s", key)
		return nil
	}
}
