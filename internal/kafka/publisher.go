package kafka

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/profast/delivery/internal/db"
	"github.com/profast/delivery/internal/repository"
	"github.com/profast/delivery/internal/storage"
)

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// Publisher drains the transactional outbox into Kafka. Tasks are locked with
// SKIP LOCKED, shipped, and marked processed or failed in the same
// transaction that claimed them.
type Publisher struct {
	db       db.DB
	repo     storage.OutboxTaskRepository
	producer Producer
	config   PublisherConfig
	logger   *zap.Logger
}

func NewPublisher(database db.DB, repo storage.OutboxTaskRepository, producer Producer, config PublisherConfig, logger *zap.Logger) *Publisher {
	if config.PollInterval <= 0 {
		config.PollInterval = time.Second
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 50
	}
	return &Publisher{
		db:       database,
		repo:     repo,
		producer: producer,
		config:   config,
		logger:   logger,
	}
}

func (p *Publisher) Run(ctx context.Context) error {
	p.logger.Info("starting outbox publisher",
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("batch_size", p.config.BatchSize))

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil {
				p.logger.Error("outbox publisher batch failed", zap.Error(err))
			}
		case <-ctx.Done():
			p.logger.Info("outbox publisher stopping")
			return nil
		}
	}
}

func (p *Publisher) processBatch(ctx context.Context) error {
	tx, err := p.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tasks, err := p.repo.GetProcessableTasks(ctx, tx, p.config.BatchSize)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return tx.Commit(ctx)
	}

	for _, task := range tasks {
		sendErr := p.producer.SendMessage(ctx, task.Topic, []byte(task.ID.String()), task.Payload)
		if sendErr != nil {
			msg := sendErr.Error()
			if err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusFailed, task.Attempts+1, &msg, nil); err != nil {
				return err
			}
			continue
		}

		now := time.Now().UTC()
		if err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessed, task.Attempts+1, nil, &now); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
