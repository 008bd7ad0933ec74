package repository

import (
	"context"

	"linkpay/internal/domain/payment"
	"linkpay/internal/infra"

	"github.com/google/uuid"
)

// LegacyPaymentRepository maintains the backward-compatible payments table.
// It is write-only from the pipeline's point of view; nothing here gates
// fulfillment.
type LegacyPaymentRepository struct {
	db DBTX
}

func NewLegacyPaymentRepository(db DBTX) *LegacyPaymentRepository {
	return &LegacyPaymentRepository{db: db}
}

func (r *LegacyPaymentRepository) RecordCheckout(ctx context.Context, rec *payment.LegacyRecord) error {
	query := `
		INSERT INTO payments (id, payment_id, preference_id, quantity, created_at, updated_at)
		VALUES ($1, NULL, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, rec.ID, rec.PreferenceID, rec.Quantity, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record legacy checkout", err)
	}
	return nil
}

func (r *LegacyPaymentRepository) UpsertFromNotification(ctx context.Context, paymentID, status string, merchantOrderID *string) error {
	query := `
		INSERT INTO payments (id, payment_id, preference_id, status, merchant_order_id, quantity, created_at, updated_at)
		VALUES ($1, $2, '', $3, $4, 1, now(), now())
		ON CONFLICT (payment_id) DO UPDATE
		SET status = EXCLUDED.status,
		    merchant_order_id = COALESCE(EXCLUDED.merchant_order_id, payments.merchant_order_id),
		    updated_at = now()
	`
	_, err := r.db.Exec(ctx, query, uuid.New(), paymentID, status, merchantOrderID)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert legacy payment", err)
	}
	return nil
}
