//go:generate mockgen -source ./types.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/profast/delivery/internal/db"
	"github.com/profast/delivery/internal/gateway"
	"github.com/profast/delivery/internal/repository"
)

var (
	ErrInvalidAmount     = errors.New("amount must be a positive integer")
	ErrParcelNotFound    = errors.New("parcel not found")
	ErrParcelAlreadyPaid = errors.New("parcel already paid")
)

type ParcelRepository interface {
	Create(ctx context.Context, parcel *repository.Parcel) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Parcel, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Parcel, error)
	List(ctx context.Context, createdBy string) ([]*repository.Parcel, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	MarkPaidTx(ctx context.Context, tx db.Tx, id uuid.UUID) (int64, error)
}

type PaymentRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, payment *repository.Payment) error
	List(ctx context.Context, email string) ([]*repository.Payment, error)
}

type TrackingRepository interface {
	Create(ctx context.Context, event *repository.TrackingEvent) (int64, error)
	GetByParcelID(ctx context.Context, parcelID uuid.UUID) ([]*repository.TrackingEvent, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, tx db.Tx, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (*gateway.PaymentIntent, error)
	RetrieveSession(ctx context.Context, sessionID string) (*gateway.Session, error)
}

// Parcel is the client-facing view. Attrs carries whatever the client
// submitted beyond the fields the system itself reads; rendering flattens it
// back into the top-level object.
type Parcel struct {
	ID            string                 `json:"id"`
	CreatedBy     string                 `json:"createdBy"`
	PaymentStatus string                 `json:"paymentStatus"`
	CreatedAt     time.Time              `json:"createdAt"`
	Attrs         map[string]interface{} `json:"-"`
}

func (p Parcel) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Attrs)+4)
	for k, v := range p.Attrs {
		out[k] = v
	}
	out["id"] = p.ID
	out["createdBy"] = p.CreatedBy
	out["paymentStatus"] = p.PaymentStatus
	out["createdAt"] = p.CreatedAt
	return json.Marshal(out)
}

type Payment struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	Email         string    `json:"email"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paidAt"`
	PaidAtString  string    `json:"paidAtString"`
}

type TrackingEvent struct {
	ID         int64     `json:"id"`
	TrackingID string    `json:"trackingId"`
	ParcelID   string    `json:"parcelId"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	UpdatedBy  string    `json:"updatedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SessionStatus is the composed checkout-session view returned to clients.
type SessionStatus struct {
	Status              string `json:"status"`
	PaymentStatus       string `json:"payment_status"`
	PaymentIntentID     string `json:"payment_intent_id"`
	PaymentIntentStatus string `json:"payment_intent_status"`
}

func toParcel(p *repository.Parcel) (*Parcel, error) {
	attrs := map[string]interface{}{}
	if len(p.Attrs) > 0 {
		if err := json.Unmarshal(p.Attrs, &attrs); err != nil {
			return nil, err
		}
	}
	return &Parcel{
		ID:            p.ID.String(),
		CreatedBy:     p.CreatedBy,
		PaymentStatus: p.PaymentStatus,
		CreatedAt:     p.CreatedAt,
		Attrs:         attrs,
	}, nil
}

func toPayment(p *repository.Payment) *Payment {
	return &Payment{
		ID:            p.ID.String(),
		ParcelID:      p.ParcelID.String(),
		Email:         p.Email,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
		PaidAtString:  p.PaidAtString,
	}
}

func toTrackingEvent(e *repository.TrackingEvent) *TrackingEvent {
	return &TrackingEvent{
		ID:         e.ID,
		TrackingID: e.TrackingID,
		ParcelID:   e.ParcelID.String(),
		Status:     e.Status,
		Message:    e.Message,
		UpdatedBy:  e.UpdatedBy,
		CreatedAt:  e.CreatedAt,
	}
}

func parseParcelID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repository.ErrInvalidID
	}
	return parsed, nil
}
