package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/profast/delivery/internal/logger"
)

const groupID = "delivery-audit-consumer"

func main() {
	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ",")
	topic := getenv("KAFKA_AUDIT_TOPIC", "audit-logs")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("error closing kafka reader", zap.Error(err))
		}
	}()

	log.Info("consumer connected",
		zap.String("topic", topic),
		zap.Strings("brokers", brokers))

	for {
		select {
		case <-ctx.Done():
			log.Info("shutdown signal received, stopping consumer")
			return
		default:
			m, err := r.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("error reading message", zap.Error(err))
				time.Sleep(5 * time.Second)
				continue
			}

			log.Info("audit event",
				zap.String("key", string(m.Key)),
				zap.ByteString("value", m.Value),
				zap.Int64("offset", m.Offset))
		}
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
