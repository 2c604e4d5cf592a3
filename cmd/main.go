package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/profast/delivery/internal/config"
	"github.com/profast/delivery/internal/db"
	"github.com/profast/delivery/internal/gateway"
	"github.com/profast/delivery/internal/kafka"
	"github.com/profast/delivery/internal/logger"
	"github.com/profast/delivery/internal/repository/postgresql"
	"github.com/profast/delivery/internal/server"
	"github.com/profast/delivery/internal/storage"
)

func main() {
	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DSN())
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.GetPool().Close()

	parcelRepo := postgresql.NewParcelRepo(database)
	paymentRepo := postgresql.NewPaymentRepo(database)
	trackingRepo := postgresql.NewTrackingRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	gatewayClient := gateway.NewClient(cfg.PaymentGatewayURL, cfg.PaymentGatewayKey, cfg.Currency)

	parcels := storage.NewParcelStorage(parcelRepo, trackingRepo)
	payments := storage.NewPaymentService(database, parcelRepo, paymentRepo, outboxRepo, gatewayClient, cfg.PaymentTopic, log)

	producer := kafka.NewWriterProducer(cfg.KafkaBrokers, log)
	defer func() {
		if err := producer.Close(); err != nil {
			log.Warn("producer close failed", zap.Error(err))
		}
	}()

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: time.Second,
		BatchSize:    50,
	}, log)

	srv := server.New(parcels, payments, producer, cfg.AuditTopic, log)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gCtx, cfg.HTTPPort)
	})

	g.Go(func() error {
		return publisher.Run(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}

	log.Info("server gracefully stopped")
}
