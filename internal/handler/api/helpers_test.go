//go:build unit

package api_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"linkpay/internal/domain/payment"
	"linkpay/internal/domain/shorturl"
)

func existingURL(t *testing.T, code string) *shorturl.Url {
	t.Helper()
	u, err := shorturl.NewUrl(code, "https://example.com", nil, nil, "data:image/png;base64,x", time.Now())
	require.NoError(t, err)
	return u
}

func pendingRecord(sessionID uuid.UUID, status payment.Status, shortURL *string) *payment.PendingPayment {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return payment.ReconstructPendingPayment(
		sessionID, "pref-123", "https://example.com/landing", nil, nil,
		1, 990, status, shortURL, now, now,
	)
}
