package notifications

import "log"

// Notifier delivers a rendered notification through some channel.
// The delivery worker picks the implementation at startup.
type Notifier interface {
	Notify(subject, message string) error
}

// ConsoleNotifier logs deliveries, used when no SMS gateway is configured.
type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier { return &ConsoleNotifier{} }

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s", subject, message)
	return nil
}
