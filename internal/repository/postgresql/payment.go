package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/profast/delivery/internal/db"
	"github.com/profast/delivery/internal/repository"
	"github.com/profast/delivery/internal/storage"
)

type PaymentRepo struct {
	db db.DB
}

func NewPaymentRepo(db db.DB) storage.PaymentRepository {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) CreateTx(ctx context.Context, tx db.Tx, payment *repository.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	_, err := tx.Exec(ctx, `
        INSERT INTO payments (
            id, parcel_id, email, amount, payment_method, transaction_id, paid_at, paid_at_string
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, payment.ID, payment.ParcelID, payment.Email, payment.Amount,
		payment.PaymentMethod, payment.TransactionID, payment.PaidAt, payment.PaidAtString)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) List(ctx context.Context, email string) ([]*repository.Payment, error) {
	query := "SELECT * FROM payments"
	args := []interface{}{}

	if email != "" {
		query += " WHERE email = $1"
		args = append(args, email)
	}
	query += " ORDER BY paid_at DESC, id DESC"

	var payments []*repository.Payment
	err := r.db.Select(ctx, &payments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
