package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/profast/delivery/internal/db"
	"github.com/profast/delivery/internal/repository"
	"github.com/profast/delivery/internal/storage"
)

type ParcelRepo struct {
	db db.DB
}

func NewParcelRepo(db db.DB) storage.ParcelRepository {
	return &ParcelRepo{db: db}
}

func (r *ParcelRepo) Create(ctx context.Context, parcel *repository.Parcel) error {
	if parcel.ID == uuid.Nil {
		parcel.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO parcels (
            id, created_by, payment_status, attrs, created_at
        ) VALUES ($1, $2, $3, $4, $5)
    `, parcel.ID, parcel.CreatedBy, parcel.PaymentStatus, parcel.Attrs, parcel.CreatedAt)
	return err
}

func (r *ParcelRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Parcel, error) {
	var parcel repository.Parcel
	err := r.db.Get(ctx, &parcel, "SELECT * FROM parcels WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &parcel, nil
}

func (r *ParcelRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Parcel, error) {
	var parcel repository.Parcel
	err := tx.Get(ctx, &parcel, "SELECT * FROM parcels WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &parcel, nil
}

// List returns parcels newest first. The id tiebreak keeps the order stable
// when two rows share a created_at.
func (r *ParcelRepo) List(ctx context.Context, createdBy string) ([]*repository.Parcel, error) {
	query := "SELECT * FROM parcels"
	args := []interface{}{}

	if createdBy != "" {
		query += " WHERE created_by = $1"
		args = append(args, createdBy)
	}
	query += " ORDER BY created_at DESC, id DESC"

	var parcels []*repository.Parcel
	err := r.db.Select(ctx, &parcels, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}
	return parcels, nil
}

func (r *ParcelRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM parcels WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkPaidTx flips payment_status to paid if the parcel is still unpaid.
// Returns the number of rows changed (0 or 1); concurrent confirmations for
// the same parcel are arbitrated here.
func (r *ParcelRepo) MarkPaidTx(ctx context.Context, tx db.Tx, id uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE parcels
        SET payment_status = $1
        WHERE id = $2 AND payment_status <> $1
    `, repository.PaymentStatusPaid, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
