package storage_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/profast/delivery/internal/repository"
	"github.com/profast/delivery/internal/storage"
	mock_storage "github.com/profast/delivery/internal/storage/mocks"
)

func TestParcelStorage_AddParcel(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parcelRepo := mock_storage.NewMockParcelRepository(ctrl)
	trackingRepo := mock_storage.NewMockTrackingRepository(ctrl)
	stg := storage.NewParcelStorage(parcelRepo, trackingRepo)

	parcelRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *repository.Parcel) error {
			assert.Equal(t, "a@x.com", p.CreatedBy)
			assert.Equal(t, repository.PaymentStatusUnpaid, p.PaymentStatus)
			assert.False(t, p.CreatedAt.IsZero())

			var attrs map[string]interface{}
			require.NoError(t, json.Unmarshal(p.Attrs, &attrs))
			assert.Equal(t, float64(2), attrs["weight"])

			p.ID = uuid.New()
			return nil
		})

	parcel, err := stg.AddParcel(ctx, "a@x.com", map[string]interface{}{"weight": 2})
	require.NoError(t, err)
	assert.NotEmpty(t, parcel.ID)
	assert.Equal(t, repository.PaymentStatusUnpaid, parcel.PaymentStatus)
	assert.Equal(t, float64(2), parcel.Attrs["weight"])
}

func TestParcelStorage_GetParcel(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip keeps submitted fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		parcelRepo := mock_storage.NewMockParcelRepository(ctrl)
		stg := storage.NewParcelStorage(parcelRepo, mock_storage.NewMockTrackingRepository(ctrl))

		id := uuid.New()
		parcelRepo.EXPECT().GetByID(gomock.Any(), gomock.Eq(id)).Return(&repository.Parcel{
			ID:            id,
			CreatedBy:     "a@x.com",
			PaymentStatus: repository.PaymentStatusUnpaid,
			Attrs:         json.RawMessage(`{"weight":2,"address":"12 Main St"}`),
		}, nil)

		parcel, err := stg.GetParcel(ctx, id.String())
		require.NoError(t, err)

		rendered, err := json.Marshal(parcel)
		require.NoError(t, err)

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(rendered, &out))
		assert.Equal(t, id.String(), out["id"])
		assert.Equal(t, "a@x.com", out["createdBy"])
		assert.Equal(t, "unpaid", out["paymentStatus"])
		assert.Equal(t, float64(2), out["weight"])
		assert.Equal(t, "12 Main St", out["address"])
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		parcelRepo := mock_storage.NewMockParcelRepository(ctrl)
		stg := storage.NewParcelStorage(parcelRepo, mock_storage.NewMockTrackingRepository(ctrl))

		_, err := stg.GetParcel(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, repository.ErrInvalidID)
	})

	t.Run("missing parcel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		parcelRepo := mock_storage.NewMockParcelRepository(ctrl)
		stg := storage.NewParcelStorage(parcelRepo, mock_storage.NewMockTrackingRepository(ctrl))

		parcelRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, repository.ErrObjectNotFound)

		_, err := stg.GetParcel(ctx, uuid.NewString())
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestParcelStorage_DeleteParcel(t *testing.T) {
	ctx := context.Background()

	t.Run("missing parcel yields zero count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		parcelRepo := mock_storage.NewMockParcelRepository(ctrl)
		stg := storage.NewParcelStorage(parcelRepo, mock_storage.NewMockTrackingRepository(ctrl))

		parcelRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		count, err := stg.DeleteParcel(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		parcelRepo := mock_storage.NewMockParcelRepository(ctrl)
		stg := storage.NewParcelStorage(parcelRepo, mock_storage.NewMockTrackingRepository(ctrl))

		_, err := stg.DeleteParcel(ctx, "???")
		assert.ErrorIs(t, err, repository.ErrInvalidID)
	})
}

func TestParcelStorage_Tracking(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parcelRepo := mock_storage.NewMockParcelRepository(ctrl)
	trackingRepo := mock_storage.NewMockTrackingRepository(ctrl)
	stg := storage.NewParcelStorage(parcelRepo, trackingRepo)

	parcelID := uuid.New()
	trackingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *repository.TrackingEvent) (int64, error) {
			assert.Equal(t, parcelID, e.ParcelID)
			assert.Equal(t, "delivered", e.Status)
			assert.False(t, e.CreatedAt.IsZero())
			return 7, nil
		})

	id, err := stg.RecordTrackingEvent(ctx, "TRK-1", parcelID.String(), "delivered", "handed over", "courier@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	trackingRepo.EXPECT().GetByParcelID(gomock.Any(), gomock.Eq(parcelID)).
		Return([]*repository.TrackingEvent{{ID: 7, ParcelID: parcelID, Status: "delivered"}}, nil)

	events, err := stg.ParcelTrackingEvents(ctx, parcelID.String())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "delivered", events[0].Status)
}
