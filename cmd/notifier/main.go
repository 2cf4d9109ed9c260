package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/you/runmate/domain"
	"github.com/you/runmate/internal/config"
	"github.com/you/runmate/internal/infrastructure/messaging"
	"github.com/you/runmate/internal/infrastructure/notifications"
	"github.com/you/runmate/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.RabbitURL == "" {
		log.Fatal("rabbit url is required for the notifier")
	}

	consumer, err := messaging.NewConsumer(cfg.RabbitURL, cfg.RabbitExchange, cfg.RabbitQueue, []string{
		domain.RKInterestCreated,
		domain.RKRunJoined,
	})
	if err != nil {
		log.Fatalf("consumer: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worker.New(consumer, notifications.NewConsole())
	log.Printf("notifier consuming queue %s", cfg.RabbitQueue)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("worker: %v", err)
	}
}
