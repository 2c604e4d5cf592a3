package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

type WriterProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewWriterProducer(brokers []string, logger *zap.Logger) Producer {
	return &WriterProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger,
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		p.logger.Error("failed to produce message",
			zap.String("topic", topic),
			zap.ByteString("key", key),
			zap.Error(err))
		return err
	}
	return nil
}

func (p *WriterProducer) Close() error {
	p.logger.Info("closing kafka producer")
	return p.writer.Close()
}
