package commands

import (
	"context"

	"github.com/google/uuid"

	"linkpay/internal/domain/payment"
	"linkpay/internal/domain/shorturl"
	"linkpay/internal/infra/gateway"
)

// Consumer-side ports. Concrete implementations live under internal/infra;
// tests substitute generated mocks or in-memory fakes.

type PendingPaymentRepository interface {
	Create(ctx context.Context, p *payment.PendingPayment) error
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*payment.PendingPayment, error)
	ClaimProcessing(ctx context.Context, sessionID uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, sessionID uuid.UUID, shortURL string) error
	MarkFailed(ctx context.Context, sessionID uuid.UUID) error
}

type UrlRepository interface {
	Create(ctx context.Context, u *shorturl.Url) error
	FindByShortCode(ctx context.Context, shortCode string) (*shorturl.Url, error)
}

type LegacyPaymentRepository interface {
	RecordCheckout(ctx context.Context, rec *payment.LegacyRecord) error
	UpsertFromNotification(ctx context.Context, paymentID, status string, merchantOrderID *string) error
}

type PaymentGateway interface {
	CreatePreference(ctx context.Context, req gateway.PreferenceRequest) (*gateway.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*gateway.Payment, error)
	SearchPaymentsByReference(ctx context.Context, externalReference string) ([]gateway.Payment, error)
	GetMerchantOrder(ctx context.Context, orderID string) (*gateway.MerchantOrder, error)
}

type QRCodeEncoder interface {
	DataURL(content string) (string, error)
}

type IdempotencyGuard interface {
	Acquire(ctx context.Context, paymentID string) (bool, error)
	Release(ctx context.Context, paymentID string) error
}
