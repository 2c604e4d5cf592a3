package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profast/delivery/internal/db"
	"github.com/profast/delivery/internal/repository"
	"github.com/profast/delivery/internal/storage"
)

type TrackingRepo struct {
	db db.DB
}

func NewTrackingRepo(db db.DB) storage.TrackingRepository {
	return &TrackingRepo{db: db}
}

func (r *TrackingRepo) Create(ctx context.Context, event *repository.TrackingEvent) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO tracking_events (
            tracking_id, parcel_id, status, message, updated_by, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, event.TrackingID, event.ParcelID, event.Status, event.Message,
		event.UpdatedBy, event.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert tracking event: %w", err)
	}
	return id, nil
}

func (r *TrackingRepo) GetByParcelID(ctx context.Context, parcelID uuid.UUID) ([]*repository.TrackingEvent, error) {
	var events []*repository.TrackingEvent
	err := r.db.Select(ctx, &events, `
        SELECT * FROM tracking_events
        WHERE parcel_id = $1
        ORDER BY created_at DESC, id DESC
    `, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking events: %w", err)
	}
	return events, nil
}
