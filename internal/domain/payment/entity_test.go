//go:build unit

package payment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpay/internal/domain/payment"
)

func strPtr(s string) *string { return &s }

func TestNewPendingPayment(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name        string
		originalURL string
		customAlias *string
		expiryDate  *time.Time
		quantity    int
		amountCents int64
		wantErr     error
	}{
		{name: "valid minimal", originalURL: "https://example.com", quantity: 1, amountCents: 990},
		{name: "valid with alias and expiry", originalURL: "https://example.com/page", customAlias: strPtr("my-link"), expiryDate: &future, quantity: 2, amountCents: 990},
		{name: "relative url rejected", originalURL: "/relative", quantity: 1, amountCents: 990, wantErr: payment.ErrInvalidOriginalURL},
		{name: "non-http scheme rejected", originalURL: "ftp://example.com", quantity: 1, amountCents: 990, wantErr: payment.ErrInvalidOriginalURL},
		{name: "missing host rejected", originalURL: "https://", quantity: 1, amountCents: 990, wantErr: payment.ErrInvalidOriginalURL},
		{name: "zero quantity rejected", originalURL: "https://example.com", quantity: 0, amountCents: 990, wantErr: payment.ErrInvalidQuantity},
		{name: "zero amount rejected", originalURL: "https://example.com", quantity: 1, amountCents: 0, wantErr: payment.ErrInvalidAmount},
		{name: "past expiry rejected", originalURL: "https://example.com", expiryDate: &past, quantity: 1, amountCents: 990, wantErr: payment.ErrExpiryInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := payment.NewPendingPayment(tt.originalURL, tt.customAlias, tt.expiryDate, tt.quantity, tt.amountCents, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payment.StatusPending, p.Status())
			assert.NotEqual(t, "", p.SessionID().String())
			assert.Nil(t, p.ShortURL())
		})
	}
}

func TestNewPendingPayment_NormalizesAlias(t *testing.T) {
	now := time.Now()

	p, err := payment.NewPendingPayment("https://example.com", strPtr("  spaced  "), nil, 1, 990, now)
	require.NoError(t, err)
	require.NotNil(t, p.CustomAlias())
	assert.Equal(t, "spaced", *p.CustomAlias())

	p, err = payment.NewPendingPayment("https://example.com", strPtr("   "), nil, 1, 990, now)
	require.NoError(t, err)
	assert.Nil(t, p.CustomAlias(), "whitespace-only alias should collapse to nil")
}

func TestPendingPayment_Transition(t *testing.T) {
	now := time.Now()

	newPending := func(t *testing.T) *payment.PendingPayment {
		t.Helper()
		p, err := payment.NewPendingPayment("https://example.com", nil, nil, 1, 990, now)
		require.NoError(t, err)
		return p
	}

	t.Run("pending to processing to completed", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.Transition(payment.StatusProcessing))
		require.NoError(t, p.Complete("https://sho.rt/abc123"))
		assert.True(t, p.IsCompleted())
		require.NotNil(t, p.ShortURL())
		assert.Equal(t, "https://sho.rt/abc123", *p.ShortURL())
	})

	t.Run("pending to processing to failed", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.Transition(payment.StatusProcessing))
		require.NoError(t, p.Transition(payment.StatusFailed))
	})

	t.Run("pending cannot complete directly", func(t *testing.T) {
		p := newPending(t)
		assert.ErrorIs(t, p.Transition(payment.StatusCompleted), payment.ErrInvalidTransition)
	})

	t.Run("terminal states never revisit pending", func(t *testing.T) {
		p := newPending(t)
		require.NoError(t, p.Transition(payment.StatusProcessing))
		require.NoError(t, p.Transition(payment.StatusCompleted))
		assert.ErrorIs(t, p.Transition(payment.StatusPending), payment.ErrInvalidTransition)
		assert.ErrorIs(t, p.Transition(payment.StatusProcessing), payment.ErrInvalidTransition)

		p = newPending(t)
		require.NoError(t, p.Transition(payment.StatusProcessing))
		require.NoError(t, p.Transition(payment.StatusFailed))
		assert.ErrorIs(t, p.Transition(payment.StatusPending), payment.ErrInvalidTransition)
		assert.ErrorIs(t, p.Transition(payment.StatusCompleted), payment.ErrInvalidTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, payment.StatusPending.IsTerminal())
	assert.False(t, payment.StatusProcessing.IsTerminal())
	assert.True(t, payment.StatusCompleted.IsTerminal())
	assert.True(t, payment.StatusFailed.IsTerminal())
}
