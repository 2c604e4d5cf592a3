package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/profast/delivery/internal/db"
	"github.com/profast/delivery/internal/metrics"
	"github.com/profast/delivery/internal/repository"
)

// PaymentService bridges the payment gateway and parcel/payment state. The
// confirmation transition is the one place where two rows must stay
// consistent, so it runs inside a single transaction.
type PaymentService struct {
	db          db.DB
	parcelRepo  ParcelRepository
	paymentRepo PaymentRepository
	outboxRepo  OutboxTaskRepository
	gateway     PaymentGateway
	eventTopic  string
	logger      *zap.Logger
}

func NewPaymentService(
	database db.DB,
	parcelRepo ParcelRepository,
	paymentRepo PaymentRepository,
	outboxRepo OutboxTaskRepository,
	gw PaymentGateway,
	eventTopic string,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		db:          database,
		parcelRepo:  parcelRepo,
		paymentRepo: paymentRepo,
		outboxRepo:  outboxRepo,
		gateway:     gw,
		eventTopic:  eventTopic,
		logger:      logger,
	}
}

// CreatePaymentIntent asks the gateway for a card payment intent and returns
// the client secret. The gateway is never contacted for a non-positive amount.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", ErrInvalidAmount
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, amountCents)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_payment_intent").Inc()
		return "", err
	}
	metrics.PaymentIntentsCreatedTotal.Inc()

	return intent.ClientSecret, nil
}

type ConfirmPaymentInput struct {
	ParcelID      string
	Email         string
	Amount        int64
	PaymentMethod string
	TransactionID string
}

// ConfirmPayment transitions the parcel to paid and records the payment in
// one transaction. The conditional update arbitrates concurrent attempts:
// whichever lands second sees zero rows changed and fails without side
// effects. A zero-row outcome is disambiguated with a pre-read so callers can
// tell a missing parcel from one already paid.
func (s *PaymentService) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (string, error) {
	parcelID, err := parseParcelID(in.ParcelID)
	if err != nil {
		return "", err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	changed, err := s.parcelRepo.MarkPaidTx(ctx, tx, parcelID)
	if err != nil {
		return "", fmt.Errorf("failed to update parcel status: %w", err)
	}
	if changed == 0 {
		if _, err := s.parcelRepo.GetByIDTx(ctx, tx, parcelID); err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return "", ErrParcelNotFound
			}
			return "", err
		}
		return "", ErrParcelAlreadyPaid
	}

	now := time.Now().UTC()
	payment := &repository.Payment{
		ParcelID:      parcelID,
		Email:         in.Email,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		TransactionID: in.TransactionID,
		PaidAt:        now,
		PaidAtString:  now.Format(time.RFC3339),
	}
	if err := s.paymentRepo.CreateTx(ctx, tx, payment); err != nil {
		return "", fmt.Errorf("failed to record payment: %w", err)
	}

	payload, err := json.Marshal(repository.PaymentConfirmedPayload{
		PaymentID:     payment.ID,
		ParcelID:      parcelID,
		Email:         in.Email,
		Amount:        in.Amount,
		TransactionID: in.TransactionID,
		PaidAt:        now,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode payment event: %w", err)
	}
	task := &repository.OutboxTask{
		Payload: payload,
		Topic:   s.eventTopic,
	}
	if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
		return "", fmt.Errorf("failed to enqueue payment event: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit payment: %w", err)
	}

	metrics.PaymentsConfirmedTotal.Inc()
	s.logger.Info("payment confirmed",
		zap.String("parcel_id", in.ParcelID),
		zap.String("payment_id", payment.ID.String()),
		zap.Int64("amount", in.Amount))

	return payment.ID.String(), nil
}

// GetSessionStatus composes the checkout-session view out of the gateway
// session and its expanded payment intent.
func (s *PaymentService) GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error) {
	session, err := s.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("get_session_status").Inc()
		return nil, err
	}

	status := &SessionStatus{
		Status:        session.Status,
		PaymentStatus: session.PaymentStatus,
	}
	if session.PaymentIntent != nil {
		status.PaymentIntentID = session.PaymentIntent.ID
		status.PaymentIntentStatus = session.PaymentIntent.Status
	}
	return status, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, email string) ([]*Payment, error) {
	repoPayments, err := s.paymentRepo.List(ctx, email)
	if err != nil {
		return nil, err
	}

	payments := make([]*Payment, 0, len(repoPayments))
	for _, p := range repoPayments {
		payments = append(payments, toPayment(p))
	}
	return payments, nil
}
