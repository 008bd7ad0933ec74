package repository

import (
	"context"
	"time"

	"linkpay/internal/domain/payment"
	"linkpay/internal/infra"

	"github.com/google/uuid"
)

type PendingPaymentRepository struct {
	db DBTX
}

func NewPendingPaymentRepository(db DBTX) *PendingPaymentRepository {
	return &PendingPaymentRepository{db: db}
}

func (r *PendingPaymentRepository) Create(ctx context.Context, p *payment.PendingPayment) error {
	query := `
		INSERT INTO pending_payments (
			session_id, preference_id, original_url, custom_alias, expiry_date,
			quantity, amount_cents, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		p.SessionID(), p.PreferenceID(), p.OriginalURL(), p.CustomAlias(), p.ExpiryDate(),
		p.Quantity(), p.AmountCents(), p.Status().String(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pending payment", err)
	}
	return nil
}

func (r *PendingPaymentRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*payment.PendingPayment, error) {
	query := `
		SELECT session_id, preference_id, original_url, custom_alias, expiry_date,
		       quantity, amount_cents, status, short_url, created_at, updated_at
		FROM pending_payments
		WHERE session_id = $1
	`
	row := r.db.QueryRow(ctx, query, sessionID)
	return scanPendingPayment(row)
}

// ClaimProcessing is the single synchronization primitive of the fulfillment
// pipeline: the conditional update succeeds for exactly one caller while the
// record is still pending.
func (r *PendingPaymentRepository) ClaimProcessing(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	query := `
		UPDATE pending_payments
		SET status = $2, updated_at = now()
		WHERE session_id = $1 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, sessionID, payment.StatusProcessing.String(), payment.StatusPending.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim pending payment", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PendingPaymentRepository) MarkCompleted(ctx context.Context, sessionID uuid.UUID, shortURL string) error {
	query := `
		UPDATE pending_payments
		SET status = $2, short_url = $3, updated_at = now()
		WHERE session_id = $1 AND status = $4
	`
	tag, err := r.db.Exec(ctx, query, sessionID, payment.StatusCompleted.String(), shortURL, payment.StatusProcessing.String())
	if err != nil {
		return infra.WrapRepoErr("failed to complete pending payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending payment not in processing state", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PendingPaymentRepository) MarkFailed(ctx context.Context, sessionID uuid.UUID) error {
	query := `
		UPDATE pending_payments
		SET status = $2, updated_at = now()
		WHERE session_id = $1 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, sessionID, payment.StatusFailed.String(), payment.StatusProcessing.String())
	if err != nil {
		return infra.WrapRepoErr("failed to fail pending payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending payment not in processing state", nil, infra.KindNotFound)
	}
	return nil
}

func scanPendingPayment(row rowScanner) (*payment.PendingPayment, error) {
	var (
		sessionID            uuid.UUID
		preferenceID         string
		originalURL          string
		customAlias          *string
		expiryDate           *time.Time
		quantity             int
		amountCents          int64
		status               string
		shortURL             *string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&sessionID, &preferenceID, &originalURL, &customAlias, &expiryDate,
		&quantity, &amountCents, &status, &shortURL, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load pending payment", err)
	}

	return payment.ReconstructPendingPayment(
		sessionID, preferenceID, originalURL, customAlias, expiryDate,
		quantity, amountCents, payment.Status(status), shortURL,
		createdAt, updatedAt,
	), nil
}
