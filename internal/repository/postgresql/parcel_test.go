package postgresql_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/profast/delivery/internal/db/mocks"
	"github.com/profast/delivery/internal/repository"
	"github.com/profast/delivery/internal/repository/postgresql"
)

func TestParcelRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		parcel := &repository.Parcel{
			CreatedBy:     "a@x.com",
			PaymentStatus: repository.PaymentStatusUnpaid,
			Attrs:         json.RawMessage(`{"weight":2}`),
			CreatedAt:     time.Now().UTC(),
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(parcel.CreatedBy),
			gomock.Eq(parcel.PaymentStatus),
			gomock.Eq(parcel.Attrs),
			gomock.Eq(parcel.CreatedAt),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.Create(ctx, parcel)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, parcel.ID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag(nil), expectedErr)

		err := repo.Create(ctx, &repository.Parcel{CreatedBy: "a@x.com"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestParcelRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("parcel found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		want := &repository.Parcel{
			ID:            uuid.New(),
			CreatedBy:     "a@x.com",
			PaymentStatus: repository.PaymentStatusUnpaid,
			CreatedAt:     time.Now().UTC(),
		}

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(want.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Parcel, _ string, _ uuid.UUID) error {
				*dest = *want
				return nil
			})

		got, err := repo.GetByID(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expectedErr := errors.New("connection refused")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.GetByID(ctx, uuid.New())
		assert.Equal(t, expectedErr, err)
	})
}

func TestParcelRepo_List(t *testing.T) {
	ctx := context.Background()

	t.Run("all parcels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, query string, _ ...interface{}) error {
				assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
				assert.NotContains(t, query, "WHERE")
				return nil
			})

		_, err := repo.List(ctx, "")
		assert.NoError(t, err)
	})

	t.Run("filtered by creator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("a@x.com")).
			DoAndReturn(func(_ context.Context, _ interface{}, query string, _ ...interface{}) error {
				assert.Contains(t, query, "WHERE created_by = $1")
				assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
				return nil
			})

		_, err := repo.List(ctx, "a@x.com")
		assert.NoError(t, err)
	})
}

func TestParcelRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes one row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		id := uuid.New()
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(id)).
			Return(pgconn.CommandTag("DELETE 1"), nil)

		count, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing parcel deletes zero rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("DELETE 0"), nil)

		count, err := repo.Delete(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func TestParcelRepo_MarkPaidTx(t *testing.T) {
	ctx := context.Background()

	t.Run("unpaid parcel transitions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		id := uuid.New()
		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq(repository.PaymentStatusPaid), gomock.Eq(id)).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		changed, err := repo.MarkPaidTx(ctx, mockTx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), changed)
	})

	t.Run("already paid parcel changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockTx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		changed, err := repo.MarkPaidTx(ctx, mockTx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(0), changed)
	})
}
