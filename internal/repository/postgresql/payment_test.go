package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/profast/delivery/internal/db/mocks"
	"github.com/profast/delivery/internal/repository"
	"github.com/profast/delivery/internal/repository/postgresql"
)

func TestPaymentRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewPaymentRepo(mockDB)

		now := time.Now().UTC()
		payment := &repository.Payment{
			ParcelID:      uuid.New(),
			Email:         "a@x.com",
			Amount:        500,
			PaymentMethod: "card",
			TransactionID: "t1",
			PaidAt:        now,
			PaidAtString:  now.Format(time.RFC3339),
		}

		mockTx.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(payment.ParcelID),
			gomock.Eq(payment.Email),
			gomock.Eq(payment.Amount),
			gomock.Eq(payment.PaymentMethod),
			gomock.Eq(payment.TransactionID),
			gomock.Eq(payment.PaidAt),
			gomock.Eq(payment.PaidAtString),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.CreateTx(ctx, mockTx, payment)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, payment.ID)
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewPaymentRepo(mockDB)

		expectedErr := errors.New("database error")
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag(nil), expectedErr)

		err := repo.CreateTx(ctx, mockTx, &repository.Payment{})
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestPaymentRepo_List(t *testing.T) {
	ctx := context.Background()

	t.Run("all payments newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewPaymentRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, query string, _ ...interface{}) error {
				assert.Contains(t, query, "ORDER BY paid_at DESC")
				assert.NotContains(t, query, "WHERE")
				return nil
			})

		_, err := repo.List(ctx, "")
		assert.NoError(t, err)
	})

	t.Run("filtered by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewPaymentRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("a@x.com")).
			DoAndReturn(func(_ context.Context, _ interface{}, query string, _ ...interface{}) error {
				assert.Contains(t, query, "WHERE email = $1")
				return nil
			})

		_, err := repo.List(ctx, "a@x.com")
		assert.NoError(t, err)
	})
}
