package queries

import (
	"context"

	"github.com/google/uuid"

	"linkpay/internal/domain/payment"
	"linkpay/internal/domain/shorturl"
)

type PendingPaymentReader interface {
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*payment.PendingPayment, error)
}

type UrlReader interface {
	FindByShortCode(ctx context.Context, shortCode string) (*shorturl.Url, error)
}

type QRCodeEncoder interface {
	DataURL(content string) (string, error)
}
