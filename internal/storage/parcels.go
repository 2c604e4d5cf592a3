package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/profast/delivery/internal/metrics"
	"github.com/profast/delivery/internal/repository"
)

// ParcelStorage owns parcel CRUD and the tracking log.
type ParcelStorage struct {
	parcelRepo   ParcelRepository
	trackingRepo TrackingRepository
}

func NewParcelStorage(parcelRepo ParcelRepository, trackingRepo TrackingRepository) *ParcelStorage {
	return &ParcelStorage{
		parcelRepo:   parcelRepo,
		trackingRepo: trackingRepo,
	}
}

// AddParcel stores the submitted payload. createdBy is the only required
// field; everything else rides along in the attribute bag.
func (s *ParcelStorage) AddParcel(ctx context.Context, createdBy string, attrs map[string]interface{}) (*Parcel, error) {
	rawAttrs, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parcel attributes: %w", err)
	}

	repoParcel := &repository.Parcel{
		CreatedBy:     createdBy,
		PaymentStatus: repository.PaymentStatusUnpaid,
		Attrs:         rawAttrs,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.parcelRepo.Create(ctx, repoParcel); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("add_parcel").Inc()
		return nil, fmt.Errorf("failed to add parcel: %w", err)
	}
	metrics.ParcelsCreatedTotal.Inc()

	return toParcel(repoParcel)
}

func (s *ParcelStorage) GetParcel(ctx context.Context, id string) (*Parcel, error) {
	parcelID, err := parseParcelID(id)
	if err != nil {
		return nil, err
	}

	repoParcel, err := s.parcelRepo.GetByID(ctx, parcelID)
	if err != nil {
		return nil, err
	}
	return toParcel(repoParcel)
}

func (s *ParcelStorage) ListParcels(ctx context.Context, createdBy string) ([]*Parcel, error) {
	repoParcels, err := s.parcelRepo.List(ctx, createdBy)
	if err != nil {
		return nil, err
	}

	parcels := make([]*Parcel, 0, len(repoParcels))
	for _, p := range repoParcels {
		parcel, err := toParcel(p)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, parcel)
	}
	return parcels, nil
}

// DeleteParcel removes the parcel and reports how many rows went away, zero
// included. A missing parcel is not an error.
func (s *ParcelStorage) DeleteParcel(ctx context.Context, id string) (int64, error) {
	parcelID, err := parseParcelID(id)
	if err != nil {
		return 0, err
	}
	return s.parcelRepo.Delete(ctx, parcelID)
}

func (s *ParcelStorage) RecordTrackingEvent(ctx context.Context, trackingID, parcelID, status, message, updatedBy string) (int64, error) {
	pid, err := parseParcelID(parcelID)
	if err != nil {
		return 0, err
	}

	event := &repository.TrackingEvent{
		TrackingID: trackingID,
		ParcelID:   pid,
		Status:     status,
		Message:    message,
		UpdatedBy:  updatedBy,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.trackingRepo.Create(ctx, event)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("record_tracking_event").Inc()
		return 0, err
	}
	metrics.TrackingEventsTotal.Inc()
	return id, nil
}

func (s *ParcelStorage) ParcelTrackingEvents(ctx context.Context, parcelID string) ([]*TrackingEvent, error) {
	pid, err := parseParcelID(parcelID)
	if err != nil {
		return nil, err
	}

	repoEvents, err := s.trackingRepo.GetByParcelID(ctx, pid)
	if err != nil {
		return nil, err
	}

	events := make([]*TrackingEvent, 0, len(repoEvents))
	for _, e := range repoEvents {
		events = append(events, toTrackingEvent(e))
	}
	return events, nil
}
