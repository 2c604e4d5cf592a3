package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrInvalidID      = errors.New("invalid identifier")
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

type Parcel struct {
	ID            uuid.UUID       `db:"id"`
	CreatedBy     string          `db:"created_by"`
	PaymentStatus string          `db:"payment_status"`
	Attrs         json.RawMessage `db:"attrs"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Payment struct {
	ID            uuid.UUID `db:"id"`
	ParcelID      uuid.UUID `db:"parcel_id"`
	Email         string    `db:"email"`
	Amount        int64     `db:"amount"`
	PaymentMethod string    `db:"payment_method"`
	TransactionID string    `db:"transaction_id"`
	PaidAt        time.Time `db:"paid_at"`
	PaidAtString  string    `db:"paid_at_string"`
}

type TrackingEvent struct {
	ID         int64     `db:"id"`
	TrackingID string    `db:"tracking_id"`
	ParcelID   uuid.UUID `db:"parcel_id"`
	Status     string    `db:"status"`
	Message    string    `db:"message"`
	UpdatedBy  string    `db:"updated_by"`
	CreatedAt  time.Time `db:"created_at"`
}

type TaskStatus string

const (
	TaskStatusCreated   TaskStatus = "CREATED"
	TaskStatusProcessed TaskStatus = "PROCESSED"
	TaskStatusFailed    TaskStatus = "FAILED"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// PaymentConfirmedPayload is the event body shipped through the outbox
// when a parcel payment is confirmed.
type PaymentConfirmedPayload struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	ParcelID      uuid.UUID `json:"parcel_id"`
	Email         string    `json:"email"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	PaidAt        time.Time `json:"paid_at"`
}
