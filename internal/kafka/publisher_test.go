package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "github.com/profast/delivery/internal/db/mocks"
	"github.com/profast/delivery/internal/repository"
	mock_storage "github.com/profast/delivery/internal/storage/mocks"
)

type recordingProducer struct {
	sent    []string
	failFor map[string]error
}

func (p *recordingProducer) SendMessage(_ context.Context, topic string, key []byte, _ []byte) error {
	if err, ok := p.failFor[string(key)]; ok {
		return err
	}
	p.sent = append(p.sent, topic+"/"+string(key))
	return nil
}

func (p *recordingProducer) Close() error { return nil }

func TestPublisher_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("marks shipped tasks processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := mock_storage.NewMockOutboxTaskRepository(ctrl)
		producer := &recordingProducer{}

		pub := NewPublisher(mockDB, repo, producer, PublisherConfig{}, zap.NewNop())

		task := &repository.OutboxTask{
			ID:      uuid.New(),
			Status:  repository.TaskStatusCreated,
			Topic:   "payment-events",
			Payload: []byte(`{"paymentId":"pay-1"}`),
		}

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		repo.EXPECT().GetProcessableTasks(gomock.Any(), mockTx, gomock.Eq(50)).
			Return([]*repository.OutboxTask{task}, nil)
		repo.EXPECT().UpdateTaskStatusTx(gomock.Any(), mockTx, gomock.Eq(task.ID),
			gomock.Eq(repository.TaskStatusProcessed), gomock.Eq(1), gomock.Nil(), gomock.Not(gomock.Nil())).
			Return(nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

		require.NoError(t, pub.processBatch(ctx))
		assert.Equal(t, []string{"payment-events/" + task.ID.String()}, producer.sent)
	})

	t.Run("marks unshippable tasks failed with the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := mock_storage.NewMockOutboxTaskRepository(ctrl)

		taskID := uuid.New()
		producer := &recordingProducer{
			failFor: map[string]error{taskID.String(): errors.New("broker unavailable")},
		}

		pub := NewPublisher(mockDB, repo, producer, PublisherConfig{}, zap.NewNop())

		task := &repository.OutboxTask{
			ID:       taskID,
			Status:   repository.TaskStatusCreated,
			Topic:    "payment-events",
			Payload:  []byte(`{}`),
			Attempts: 2,
		}

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		repo.EXPECT().GetProcessableTasks(gomock.Any(), mockTx, gomock.Any()).
			Return([]*repository.OutboxTask{task}, nil)
		repo.EXPECT().UpdateTaskStatusTx(gomock.Any(), mockTx, gomock.Eq(taskID),
			gomock.Eq(repository.TaskStatusFailed), gomock.Eq(3), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ uuid.UUID, _ repository.TaskStatus, _ int, lastError *string, _ *time.Time) error {
				require.NotNil(t, lastError)
				assert.Equal(t, "broker unavailable", *lastError)
				return nil
			})
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

		require.NoError(t, pub.processBatch(ctx))
		assert.Empty(t, producer.sent)
	})

	t.Run("empty batch commits without producing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := mock_storage.NewMockOutboxTaskRepository(ctrl)
		producer := &recordingProducer{}

		pub := NewPublisher(mockDB, repo, producer, PublisherConfig{}, zap.NewNop())

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		repo.EXPECT().GetProcessableTasks(gomock.Any(), mockTx, gomock.Any()).Return(nil, nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

		require.NoError(t, pub.processBatch(ctx))
		assert.Empty(t, producer.sent)
	})
}
